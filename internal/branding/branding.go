// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	AliasScope  string `yaml:"alias_scope"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "kitn-registry",
			DisplayName: "Kitn Registry",
			Description: "Static component-registry builder for kitn components",
			EnvPrefix:   "KITN_REGISTRY",
			AliasScope:  "@kitn",
			GoModule:    "github.com/kitn-dev/kitn-registry",
			GitHubRepo:  "kitn-dev/kitn-registry",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "kitn-registry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "KITN_REGISTRY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// AliasScope returns the import-alias scope components use for cross-type
// references (e.g., "@kitn").
func AliasScope() string { load(); return defaults.AliasScope }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("ROOT") → "KITN_REGISTRY_ROOT".
func EnvVar(suffix string) string {
	return EnvPrefix() + "_" + strings.ToUpper(suffix)
}

package cli

import (
	"fmt"
	"os"

	"github.com/kitn-dev/kitn-registry/internal/branding"
	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds and validates a static registry of versioned
components (agents, tools, skills, storage providers). It bundles each
component's source files into self-contained JSON documents, maintains
write-once version snapshots, and checks that cross-component imports will
still resolve after components are relocated into a consumer's project tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("root", "", `components corpus root (default "components")`)
	flags.String("output", "", `registry output directory (default "registry")`)
	flags.String("staging", "", `staging directory (default ".kitn-staging")`)
	config.BindFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

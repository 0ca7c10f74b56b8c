package config

import (
	"github.com/kitn-dev/kitn-registry/internal/branding"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	fileName = "kitn-registry"
	fileType = "yaml"
)

// Load initializes Viper to read an optional kitn-registry.yaml from the
// working directory plus the environment. Flags bound via BindFlags take
// precedence over both.
func Load() {
	viper.SetConfigName(fileName)
	viper.SetConfigType(fileType)
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault("root", "components")
	viper.SetDefault("output", "registry")
	viper.SetDefault("staging", ".kitn-staging")

	// Ignore error if no config file is present.
	_ = viper.ReadInConfig()
}

// BindFlags binds the root command's persistent flags to config keys.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	_ = viper.BindPFlag("root", flags.Lookup("root"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("staging", flags.Lookup("staging"))
}

// Root returns the components corpus root directory.
func Root() string {
	return viper.GetString("root")
}

// Output returns the registry output directory.
func Output() string {
	return viper.GetString("output")
}

// Staging returns the staging directory used by the stage command.
func Staging() string {
	return viper.GetString("staging")
}

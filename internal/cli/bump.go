package cli

import (
	"github.com/kitn-dev/kitn-registry/internal/bump"
	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/spf13/cobra"
)

var bumpCmd = &cobra.Command{
	Use:   "bump",
	Short: "Interactively bump a component version",
	Long: `Pick a component, choose a patch/minor/major bump, and describe the change.
The manifest is rewritten with the new version and a prepended changelog
entry. Run build afterwards to publish the new snapshot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return bump.Run(config.Root(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(bumpCmd)
}

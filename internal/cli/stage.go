package cli

import (
	"fmt"

	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/kitn-dev/kitn-registry/internal/stage"
	"github.com/spf13/cobra"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Symlink-mirror the installed layout for external type-checking",
	Long: `Rebuild the staging directory as a symlink mirror of the installed layout
so an external type-checker can run over components arranged the way an
installer would place them.`,
	Args: cobra.NoArgs,
	RunE: runStage,
}

func init() {
	rootCmd.AddCommand(stageCmd)
}

func runStage(cmd *cobra.Command, args []string) error {
	scan, err := manifest.Scan(config.Root())
	if err != nil {
		return err
	}
	for _, w := range scan.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	staged, err := stage.Mirror(scan.Components, config.Staging())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Staged %d files → %s\n", staged, config.Staging())
	return nil
}

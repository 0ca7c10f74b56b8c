package cli

import (
	"fmt"

	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/kitn-dev/kitn-registry/internal/registry"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build registry items and the index from the component corpus",
	Long: `Read every component manifest, bundle the declared source files into a
registry item, write the latest pointer and the write-once version snapshot,
and emit registry.json. A component that fails to read or validate is skipped;
the exit status is nonzero when any component failed.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	result, err := registry.Build(config.Root(), config.Output(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	for _, item := range result.Items {
		fmt.Fprintf(out, "  ✓ %s: %s@%s (%d files)\n", item.Type, item.Name, item.Version, len(item.Files))
	}

	fmt.Fprintf(out, "✓ Built %d items → %s/%s\n", len(result.Items), config.Output(), registry.IndexFileName)

	if len(result.Failed) > 0 {
		return fmt.Errorf("%d component(s) failed to build", len(result.Failed))
	}
	return nil
}

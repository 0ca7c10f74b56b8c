package cli

import (
	"fmt"

	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/kitn-dev/kitn-registry/internal/imports"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that component imports resolve in the installed layout",
	Long: `Simulate the relocation of every component file into the installed layout
and verify that all alias and relative imports still resolve there. Reports
cross-type relative imports, unresolved references, and registryDependencies
entries naming absent components. Never writes files; exit status is 1 when
any finding is reported.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	scan, err := manifest.Scan(config.Root())
	if err != nil {
		return err
	}

	rep := imports.Validate(scan.Components)
	rep.Print(cmd.OutOrStdout())

	if rep.HasErrors() {
		return fmt.Errorf("validation failed with %d finding(s)", len(rep.Findings))
	}
	return nil
}

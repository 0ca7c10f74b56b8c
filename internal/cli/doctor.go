package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that env vars declared by components are set",
	Long: `Collect every envVars declaration across the corpus and verify the variable
is present in the environment. A local .env file is loaded first when present.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Best effort: a missing .env just means the plain environment is checked.
	_ = godotenv.Load()

	scan, err := manifest.Scan(config.Root())
	if err != nil {
		return err
	}

	missing := 0
	checked := 0
	for _, c := range scan.Components {
		if c.Manifest == nil || len(c.Manifest.EnvVars) == 0 {
			continue
		}

		names := make([]string, 0, len(c.Manifest.EnvVars))
		for name := range c.Manifest.EnvVars {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			checked++
			if os.Getenv(name) == "" {
				fmt.Fprintf(out, "  ✗ %s: %s is not set (%s)\n", c.Name(), name, c.Manifest.EnvVars[name])
				missing++
			} else {
				fmt.Fprintf(out, "  ✓ %s: %s\n", c.Name(), name)
			}
		}
	}

	if checked == 0 {
		fmt.Fprintln(out, "No env vars declared by any component.")
		return nil
	}
	if missing > 0 {
		return fmt.Errorf("%d declared env var(s) missing", missing)
	}
	fmt.Fprintf(out, "✓ All %d declared env vars are set.\n", checked)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/kitn-dev/kitn-registry/internal/config"
	"github.com/kitn-dev/kitn-registry/internal/manifest"
	"github.com/kitn-dev/kitn-registry/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listTypeFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List components in the corpus",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by type directory (agents, tools, skills, storage)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a scanned component for display.
type listEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

func runList(cmd *cobra.Command, args []string) error {
	scan, err := manifest.Scan(config.Root())
	if err != nil {
		return err
	}

	var components []*manifest.Component
	for _, c := range scan.Components {
		if c.Manifest == nil {
			continue
		}
		if listTypeFilter != "" && c.TypeDir != listTypeFilter {
			continue
		}
		components = append(components, c)
	}
	manifest.SortByName(components)

	if len(components) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components found.")
		return nil
	}

	var entries []listEntry
	for _, c := range components {
		version := c.Manifest.Version
		if version == "" {
			version = registry.DefaultVersion
		}
		entries = append(entries, listEntry{
			Name:        c.Name(),
			Type:        c.Manifest.Type,
			Version:     version,
			Description: c.Manifest.Description,
		})
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Type, e.Version, e.Description)
	}
	return w.Flush()
}

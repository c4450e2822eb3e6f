package cmd

import (
	"fmt"

	"github.com/ahmed6ww/apm/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents available in the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		registry, err := resolveRegistry(cmd, d)
		if err != nil {
			return err
		}

		summaries := registry.List()

		fmt.Println(ui.Header("Available agents"))
		if settings, err := d.settings.Load(); err == nil && settings.Verbose {
			fmt.Println(ui.Muted("  registry: " + registry.BaseURL()))
		}
		fmt.Println()
		for _, s := range summaries {
			fmt.Println(ui.ListRow(s.Name, s.Version, s.Description))
		}
		fmt.Println()
		fmt.Println(ui.Muted(fmt.Sprintf("%d agent(s) • install with: apm install <name>", len(summaries))))
		return nil
	},
}

func init() {
	listCmd.Flags().String("registry", "", "Registry base URL (overrides settings)")
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"

	"github.com/ahmed6ww/apm/internal/ui"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <agent>",
	Short: "Remove an installed agent from a target editor",
	Long: `Remove an agent's identity document and skill files from a target.

MCP tool entries are left in place: they live in a shared config document
and may be used by other agents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		installer, err := resolveInstaller(cmd, d)
		if err != nil {
			return err
		}

		name := args[0]
		if err := installer.Uninstall(name); err != nil {
			return err
		}

		fmt.Println(ui.Success(fmt.Sprintf("%s removed from %s", name, installer.DisplayName())))
		fmt.Println(ui.Muted("  MCP tool entries were left untouched"))
		return nil
	},
}

func init() {
	addTargetFlags(uninstallCmd)
	rootCmd.AddCommand(uninstallCmd)
}

package cmd

import (
	"fmt"

	"github.com/ahmed6ww/apm/internal/core"
	"github.com/ahmed6ww/apm/internal/core/target"
	"github.com/ahmed6ww/apm/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Detect installed editors and write default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		fmt.Println(ui.Header("Detecting editors"))
		fmt.Println()

		detections := target.DetectAll()
		defaultTarget := ""
		for _, det := range detections {
			if det.Installed {
				fmt.Println(ui.Success(fmt.Sprintf("%s %s", det.DisplayName, ui.Muted("("+det.Path+")"))))
				if defaultTarget == "" {
					defaultTarget = det.Name
				}
			} else {
				fmt.Println(ui.Muted("  " + det.DisplayName + " not found"))
			}
		}

		settings := core.DefaultSettings()
		if defaultTarget != "" {
			settings.DefaultTarget = defaultTarget
		}
		if err := d.settings.Save(settings); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(ui.Success(fmt.Sprintf("Settings written to %s", d.settings.Path())))
		fmt.Println(ui.Muted(fmt.Sprintf("  default target: %s", settings.DefaultTarget)))
		fmt.Println(ui.Muted(fmt.Sprintf("  registry:       %s", settings.RegistryURL)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

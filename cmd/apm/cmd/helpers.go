package cmd

import (
	"github.com/ahmed6ww/apm/internal/core"
	"github.com/ahmed6ww/apm/internal/core/target"
	"github.com/spf13/cobra"
)

// resolveRegistry builds a Registry from the --registry flag, falling back to
// the settings file, falling back to the default URL.
func resolveRegistry(cmd *cobra.Command, d *deps) (*core.Registry, error) {
	url, _ := cmd.Flags().GetString("registry")
	if url == "" {
		settings, err := d.settings.Load()
		if err != nil {
			return nil, err
		}
		url = settings.RegistryURL
	}
	return core.NewRegistry(url, nil), nil
}

// resolveInstaller builds the installer from the --target flag, falling back
// to the settings default.
func resolveInstaller(cmd *cobra.Command, d *deps) (core.Installer, error) {
	name, _ := cmd.Flags().GetString("target")
	if name == "" {
		settings, err := d.settings.Load()
		if err != nil {
			return nil, err
		}
		name = settings.DefaultTarget
	}

	global, _ := cmd.Flags().GetBool("global")
	return target.ForName(name, target.Options{Global: global})
}

// addTargetFlags adds the flags shared by install and uninstall.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "", "Target editor (claude, cursor, codex); defaults to the configured default")
	cmd.Flags().BoolP("global", "g", false, "Install into the editor's global config instead of the current project")
}

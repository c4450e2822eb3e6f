package cmd

import (
	"fmt"

	"github.com/ahmed6ww/apm/internal/core"
	"github.com/ahmed6ww/apm/internal/ui"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install <agent>",
	Short: "Install an agent into a target editor",
	Long: `Install an agent bundle into a target editor.

The name resolves against the registry in three tiers: a full agent
descriptor, a standalone skill (wrapped into a minimal agent), then the
built-in agents. Missing MCP tool commands are reported as warnings but
never block the install.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		registry, err := resolveRegistry(cmd, d)
		if err != nil {
			return err
		}

		installer, err := resolveInstaller(cmd, d)
		if err != nil {
			return err
		}

		name := args[0]
		fmt.Println(ui.Header(fmt.Sprintf("Installing %s → %s", name, installer.DisplayName())))

		agent, err := registry.Resolve(name)
		if err != nil {
			return err
		}

		for _, tool := range core.CheckAgentDependencies(agent) {
			warning := fmt.Sprintf("%s not found on PATH", tool)
			if hint := core.InstallHint(tool); hint != "" {
				warning += " — " + hint
			}
			fmt.Println(ui.Warning(warning))
		}

		notify := func(step core.InstallStep) {
			switch step {
			case core.StepIdentity:
				if installer.Capabilities().SupportsIdentity {
					fmt.Println(ui.Muted("  writing identity..."))
				}
			case core.StepSkills:
				fmt.Println(ui.Muted(fmt.Sprintf("  writing %d skill(s)...", len(agent.Skills))))
			case core.StepTools:
				fmt.Println(ui.Muted(fmt.Sprintf("  configuring %d tool(s)...", len(agent.MCP))))
			}
		}

		outcome, err := core.InstallAgent(agent, installer, notify)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(ui.Success(fmt.Sprintf("%s installed", agent.Name)))
		if outcome.SkillsInstalled > 0 {
			fmt.Println(ui.Bullet(fmt.Sprintf("%d skill(s)", outcome.SkillsInstalled)))
		}
		if outcome.ToolsConfigured > 0 {
			fmt.Println(ui.Bullet(fmt.Sprintf("%d MCP tool(s)", outcome.ToolsConfigured)))
		}
		for _, tool := range outcome.SetupTools {
			fmt.Println(ui.Muted(fmt.Sprintf("  %s needs setup: %s", tool.Name, tool.SetupURL)))
		}
		return nil
	},
}

func init() {
	addTargetFlags(installCmd)
	installCmd.Flags().String("registry", "", "Registry base URL (overrides settings)")
	rootCmd.AddCommand(installCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/ahmed6ww/apm/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <agent>",
	Short: "Show an agent's details without installing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		registry, err := resolveRegistry(cmd, d)
		if err != nil {
			return err
		}

		agent, err := registry.Resolve(args[0])
		if err != nil {
			return err
		}

		icon := agent.Identity.Icon
		if icon != "" {
			icon += " "
		}
		fmt.Println(ui.Header(icon + agent.Name))
		fmt.Println()
		fmt.Println(ui.KeyValue("version", agent.Version, 12))
		fmt.Println(ui.KeyValue("author", agent.Author, 12))
		fmt.Println(ui.KeyValue("description", agent.Description, 12))
		if agent.Identity.Model != "" {
			fmt.Println(ui.KeyValue("model", agent.Identity.Model, 12))
		}

		if len(agent.Skills) > 0 {
			names := make([]string, len(agent.Skills))
			for i, skill := range agent.Skills {
				names[i] = skill.Name
			}
			fmt.Println(ui.KeyValue("skills", strings.Join(names, ", "), 12))
		}
		if len(agent.MCP) > 0 {
			names := make([]string, len(agent.MCP))
			for i, tool := range agent.MCP {
				names[i] = tool.Name
			}
			fmt.Println(ui.KeyValue("tools", strings.Join(names, ", "), 12))
		}

		if agent.Identity.SystemPrompt != "" {
			fmt.Println()
			fmt.Println(ui.Header("System prompt"))
			fmt.Println(ui.RenderMarkdown(agent.Identity.SystemPrompt, 80))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().String("registry", "", "Registry base URL (overrides settings)")
	rootCmd.AddCommand(showCmd)
}

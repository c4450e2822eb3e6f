package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "apm",
	Short: "Agent Package Manager - install AI agents into your editor",
	Long: `apm installs declarative agent bundles into coding editors.

An agent bundle carries a system prompt, a set of skills, and MCP tool
entries. Agents resolve from an HTTP registry with a built-in fallback,
so listing and installing the bundled agents works offline.

Supported targets: claude (Claude Code), cursor, codex.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("apm %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

package target

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
)

func init() {
	register(definition{
		name:        "cursor",
		displayName: "Cursor",
		factory: func(opts Options) (core.Installer, error) {
			return newCursorInstaller(opts)
		},
		detect: func() (string, bool) {
			root, err := userConfigSubdir("Cursor")
			if err != nil {
				return "", false
			}
			return root, dirExists(root)
		},
	})
}

// cursorInstaller renders agents as Cursor rules: MDC documents under rules/
// plus MCP entries in mcp.json. Cursor has no skill concept of its own, so
// each skill becomes its own rule.
type cursorInstaller struct {
	root           string
	toolConfigPath string
}

func newCursorInstaller(opts Options) (*cursorInstaller, error) {
	root := opts.Root
	if root == "" {
		if opts.Global {
			var err error
			root, err = userConfigSubdir("Cursor")
			if err != nil {
				return nil, err
			}
		} else {
			root = filepath.Join(".", ".cursor")
		}
	}

	toolConfigPath := opts.ToolConfigPath
	if toolConfigPath == "" {
		toolConfigPath = filepath.Join(root, "mcp.json")
	}

	return &cursorInstaller{
		root:           root,
		toolConfigPath: toolConfigPath,
	}, nil
}

func (c *cursorInstaller) Name() string        { return "cursor" }
func (c *cursorInstaller) DisplayName() string { return "Cursor" }

func (c *cursorInstaller) Capabilities() core.Capabilities {
	return core.Capabilities{
		SupportsSeparateSkillFiles: true,
		SupportsIdentity:           true,
		SupportsTools:              true,
	}
}

func (c *cursorInstaller) InstallIdentity(agent *core.Agent) error {
	path := filepath.Join(c.root, "rules", agent.Name+"-identity.mdc")
	doc := renderMDC(
		fmt.Sprintf("%s agent identity", agent.Name),
		fmt.Sprintf("%s Agent", agent.Name),
		agent.Identity.SystemPrompt,
	)
	return writeConfigFile(path, doc)
}

func (c *cursorInstaller) InstallSkills(agent *core.Agent) error {
	for _, skill := range agent.Skills {
		path := filepath.Join(c.root, "rules", fmt.Sprintf("%s-%s.mdc", agent.Name, skill.Name))
		description := skill.Description
		if description == "" {
			description = fmt.Sprintf("%s skill", skill.Name)
		}
		doc := renderMDC(description, fmt.Sprintf("Skill: %s", skill.Name), skill.Content)
		if err := writeConfigFile(path, doc); err != nil {
			return fmt.Errorf("installing skill %s: %w", skill.Name, err)
		}
	}
	return nil
}

// InstallTools merges entries into mcp.json. Cursor users hand-edit this
// file, so comments and formatting are preserved.
func (c *cursorInstaller) InstallTools(agent *core.Agent) error {
	for _, tool := range agent.MCP {
		entry := cursorServerEntry{
			Command: tool.Command,
			Args:    tool.Args,
			Env:     tool.Env,
		}
		if err := mergeJSONConfig(c.toolConfigPath, "mcpServers", tool.Name, entry, true); err != nil {
			return fmt.Errorf("configuring tool %s: %w", tool.Name, err)
		}
	}
	return nil
}

type cursorServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Uninstall removes every rule file the agent produced: the identity rule
// plus all {agent}-{skill}.mdc files.
func (c *cursorInstaller) Uninstall(agentName string) error {
	rulesDir := filepath.Join(c.root, "rules")
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	prefix := agentName + "-"
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".mdc") {
			continue
		}
		if err := os.Remove(filepath.Join(rulesDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// renderMDC produces a Cursor rule document: MDC frontmatter, a title
// heading, and the body.
func renderMDC(description, title, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "description: %s\n", description)
	b.WriteString("globs:\n")
	b.WriteString("alwaysApply: false\n")
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString(body)
	return b.String()
}

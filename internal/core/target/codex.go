package target

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
)

func init() {
	register(definition{
		name:        "codex",
		displayName: "Codex",
		factory: func(opts Options) (core.Installer, error) {
			return newCodexInstaller(opts)
		},
		detect: func() (string, bool) {
			root, err := homeSubdir(".codex")
			if err != nil {
				return "", false
			}
			return root, dirExists(root)
		},
	})
}

// codexInstaller writes skills into ~/.codex/skills and appends MCP server
// sections to config.toml. Codex has no agent identity concept, so identity
// installation is a no-op.
type codexInstaller struct {
	root           string
	toolConfigPath string
	client         *http.Client
}

func newCodexInstaller(opts Options) (*codexInstaller, error) {
	root := opts.Root
	if root == "" {
		var err error
		root, err = homeSubdir(".codex")
		if err != nil {
			return nil, err
		}
	}

	toolConfigPath := opts.ToolConfigPath
	if toolConfigPath == "" {
		toolConfigPath = filepath.Join(root, "config.toml")
	}

	return &codexInstaller{
		root:           root,
		toolConfigPath: toolConfigPath,
		client:         opts.httpClient(),
	}, nil
}

func (c *codexInstaller) Name() string        { return "codex" }
func (c *codexInstaller) DisplayName() string { return "Codex" }

func (c *codexInstaller) Capabilities() core.Capabilities {
	return core.Capabilities{
		SupportsSeparateSkillFiles: true,
		SupportsIdentity:           false,
		SupportsTools:              true,
	}
}

func (c *codexInstaller) InstallIdentity(agent *core.Agent) error {
	// Codex has no identity document; skills carry the agent's knowledge.
	return nil
}

func (c *codexInstaller) InstallSkills(agent *core.Agent) error {
	for _, skill := range agent.Skills {
		dir := filepath.Join(c.root, "skills", skill.Name)
		fallback := fmt.Sprintf("Skill from the %s agent", agent.Name)
		if err := writeSkillTree(dir, skill, fallback, c.client); err != nil {
			return fmt.Errorf("installing skill %s: %w", skill.Name, err)
		}
	}
	return nil
}

// InstallTools appends [mcp_servers.{name}] sections to config.toml. A
// section whose header already exists is skipped untouched, even when the
// in-memory definition differs: config.toml is hand-edited and a rewrite
// would clobber the user's tuning.
func (c *codexInstaller) InstallTools(agent *core.Agent) error {
	content, err := readConfigFile(c.toolConfigPath)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	changed := false
	for _, tool := range agent.MCP {
		header := fmt.Sprintf("[mcp_servers.%s]", tool.Name)
		if strings.Contains(content, header) {
			continue
		}

		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if content != "" {
			content += "\n"
		}
		content += renderCodexServerSection(tool)
		changed = true
	}

	if !changed {
		return nil
	}
	return writeConfigFile(c.toolConfigPath, content)
}

// renderCodexServerSection produces one [mcp_servers.{name}] TOML section.
func renderCodexServerSection(tool core.MCPTool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[mcp_servers.%s]\n", tool.Name)
	fmt.Fprintf(&b, "command = %q\n", tool.Command)

	if len(tool.Args) > 0 {
		quoted := make([]string, len(tool.Args))
		for i, arg := range tool.Args {
			quoted[i] = fmt.Sprintf("%q", arg)
		}
		fmt.Fprintf(&b, "args = [%s]\n", strings.Join(quoted, ", "))
	}

	if len(tool.Env) > 0 {
		keys := make([]string, 0, len(tool.Env))
		for k := range tool.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(&b, "\n[mcp_servers.%s.env]\n", tool.Name)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s = %q\n", k, tool.Env[k])
		}
	}
	return b.String()
}

// Uninstall removes skills/{agentName} when such a directory exists. Skill
// directories are keyed by skill name and there is no identity document to
// recover the skill list from, so skills named differently from the agent
// are left behind.
func (c *codexInstaller) Uninstall(agentName string) error {
	dir := filepath.Join(c.root, "skills", agentName)
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return nil
}

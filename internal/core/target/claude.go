package target

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
)

func init() {
	register(definition{
		name:        "claude",
		displayName: "Claude Code",
		factory: func(opts Options) (core.Installer, error) {
			return newClaudeInstaller(opts)
		},
		detect: func() (string, bool) {
			root, err := homeSubdir(".claude")
			if err != nil {
				return "", false
			}
			return root, dirExists(root)
		},
	})
}

// claudeInstaller writes agents into the Claude Code layout: an identity
// document under agents/, skill directories under skills/, and MCP entries
// merged into the desktop config.
type claudeInstaller struct {
	root           string // ~/.claude
	toolConfigPath string
	client         *http.Client
}

func newClaudeInstaller(opts Options) (*claudeInstaller, error) {
	root := opts.Root
	if root == "" {
		var err error
		root, err = homeSubdir(".claude")
		if err != nil {
			return nil, err
		}
	}

	toolConfigPath := opts.ToolConfigPath
	if toolConfigPath == "" {
		if opts.Root != "" {
			toolConfigPath = filepath.Join(opts.Root, "config.json")
		} else {
			var err error
			toolConfigPath, err = claudeToolConfigPath()
			if err != nil {
				return nil, err
			}
		}
	}

	return &claudeInstaller{
		root:           root,
		toolConfigPath: toolConfigPath,
		client:         opts.httpClient(),
	}, nil
}

// claudeToolConfigPath locates the Claude MCP config document under the
// platform config root.
func claudeToolConfigPath() (string, error) {
	dir := "claude"
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		dir = "Claude"
	}
	return userConfigSubdir(dir, "config.json")
}

func (c *claudeInstaller) Name() string        { return "claude" }
func (c *claudeInstaller) DisplayName() string { return "Claude Code" }

func (c *claudeInstaller) Capabilities() core.Capabilities {
	return core.Capabilities{
		SupportsSeparateSkillFiles: true,
		SupportsIdentity:           true,
		SupportsTools:              true,
	}
}

// InstallIdentity writes agents/{name}.md as a full overwrite, so reinstalls
// are byte-identical.
func (c *claudeInstaller) InstallIdentity(agent *core.Agent) error {
	path := filepath.Join(c.root, "agents", agent.Name+".md")
	return writeConfigFile(path, renderAgentMarkdown(agent))
}

func (c *claudeInstaller) InstallSkills(agent *core.Agent) error {
	for _, skill := range agent.Skills {
		dir := filepath.Join(c.root, "skills", skill.Name)
		fallback := fmt.Sprintf("Skill from the %s agent", agent.Name)
		if err := writeSkillTree(dir, skill, fallback, c.client); err != nil {
			return fmt.Errorf("installing skill %s: %w", skill.Name, err)
		}
	}
	return nil
}

func (c *claudeInstaller) InstallTools(agent *core.Agent) error {
	for _, tool := range agent.MCP {
		entry := claudeServerEntry{
			Type:    "stdio",
			Command: tool.Command,
			Args:    tool.Args,
			Env:     tool.Env,
		}
		if err := mergeJSONConfig(c.toolConfigPath, "mcpServers", tool.Name, entry, false); err != nil {
			return fmt.Errorf("configuring tool %s: %w", tool.Name, err)
		}
	}
	return nil
}

type claudeServerEntry struct {
	Type    string            `json:"type"`
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Uninstall removes the identity document and the agent's skill directories.
// The skill list is recovered from the identity frontmatter, since skill
// directories are keyed by skill name rather than agent name. Tool entries
// stay: they may be shared with other agents.
func (c *claudeInstaller) Uninstall(agentName string) error {
	identityPath := filepath.Join(c.root, "agents", agentName+".md")

	content, err := readConfigFile(identityPath)
	if err != nil {
		return err
	}
	for _, skillName := range parseFrontmatterSkills(content) {
		dir := filepath.Join(c.root, "skills", skillName)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing skill %s: %w", skillName, err)
		}
	}

	if err := os.Remove(identityPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// renderAgentMarkdown produces the identity document: frontmatter with the
// agent's display fields plus its skill names, then the system prompt.
func renderAgentMarkdown(agent *core.Agent) string {
	model := normalizeClaudeModel(agent.Identity.Model)
	icon := agent.Identity.Icon
	if icon == "" {
		icon = "🤖"
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "name: %s\n", agent.Name)
	fmt.Fprintf(&b, "description: %s\n", agent.Description)
	fmt.Fprintf(&b, "model: %s\n", model)
	fmt.Fprintf(&b, "icon: %s\n", icon)
	if len(agent.Skills) > 0 {
		names := make([]string, len(agent.Skills))
		for i, skill := range agent.Skills {
			names[i] = skill.Name
		}
		fmt.Fprintf(&b, "skills: [%s]\n", strings.Join(names, ", "))
	}
	b.WriteString("---\n\n")
	b.WriteString(agent.Identity.SystemPrompt)
	return b.String()
}

// claudeModelFamilies is checked in order; the first substring match wins.
var claudeModelFamilies = []string{"sonnet", "opus", "haiku"}

// normalizeClaudeModel maps a descriptor model string onto a Claude model
// family. Unrecognized values pass through unchanged; empty defaults to
// sonnet.
func normalizeClaudeModel(model string) string {
	if model == "" {
		return "sonnet"
	}
	lower := strings.ToLower(model)
	for _, family := range claudeModelFamilies {
		if strings.Contains(lower, family) {
			return family
		}
	}
	return model
}

// parseFrontmatterSkills extracts the skill names from an identity document's
// "skills: [a, b]" frontmatter line. Missing or malformed frontmatter yields
// no names.
func parseFrontmatterSkills(document string) []string {
	if !strings.HasPrefix(document, "---") {
		return nil
	}
	rest := document[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil
	}

	for _, line := range strings.Split(rest[:end], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "skills:") {
			continue
		}
		list := strings.TrimSpace(strings.TrimPrefix(line, "skills:"))
		list = strings.TrimPrefix(list, "[")
		list = strings.TrimSuffix(list, "]")

		var names []string
		for _, name := range strings.Split(list, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return names
	}
	return nil
}

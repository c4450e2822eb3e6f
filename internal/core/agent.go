// Package core provides the business logic for apm: the agent model, the
// registry resolver, settings, and install orchestration. It has zero UI
// dependencies and is independently testable.
package core

// Agent is the canonical in-memory representation of an agent bundle as
// described by an agent.yaml descriptor. It is constructed once per
// resolution, immutable afterwards, and consumed by exactly one installer.
type Agent struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version"`
	Description string    `yaml:"description"`
	Author      string    `yaml:"author"`
	Identity    Identity  `yaml:"identity"`
	Skills      []Skill   `yaml:"skills,omitempty"`
	MCP         []MCPTool `yaml:"mcp,omitempty"`
}

// Identity defines the agent's behavior: the system prompt plus display hints.
type Identity struct {
	Model        string `yaml:"model,omitempty"`
	Icon         string `yaml:"icon,omitempty"`
	SystemPrompt string `yaml:"system_prompt"`
}

// Skill is a self-contained knowledge unit. Name doubles as the file and
// directory stem, so it must be filesystem-safe.
type Skill struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description,omitempty"`
	Content       string            `yaml:"content,omitempty"`
	AllowedTools  string            `yaml:"allowed-tools,omitempty"`
	License       string            `yaml:"license,omitempty"`
	Compatibility string            `yaml:"compatibility,omitempty"`
	Dependencies  string            `yaml:"dependencies,omitempty"`
	Metadata      map[string]string `yaml:"metadata,omitempty"`

	// Source locates auxiliary skill files (scripts/, references/, assets/)
	// during installation only. It is never serialized into a descriptor.
	Source SkillSource `yaml:"-" json:"-"`
}

// MCPTool is an external tool entry registered into a target's tool config.
// Name must be unique within an agent since it becomes a map key in every
// target format.
type MCPTool struct {
	Name     string            `yaml:"name"`
	Command  string            `yaml:"command"`
	Args     []string          `yaml:"args,omitempty"`
	Env      map[string]string `yaml:"env,omitempty"`
	SetupURL string            `yaml:"setup_url,omitempty"`
}

// AgentSummary is the minimal agent info shown in registry listings.
type AgentSummary struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Author      string `json:"author"`
}

// Summary projects an Agent down to its listing row.
func (a *Agent) Summary() AgentSummary {
	return AgentSummary{
		Name:        a.Name,
		Version:     a.Version,
		Description: a.Description,
		Author:      a.Author,
	}
}

// SourceKind discriminates the skill source variants.
type SourceKind int

const (
	// SourceNone means the skill has no auxiliary files to mirror.
	SourceNone SourceKind = iota
	// SourceLocal points at a directory on the local filesystem.
	SourceLocal
	// SourceRemote points at a registry base URL for the skill.
	SourceRemote
)

// SkillSource is a tagged variant locating a skill's auxiliary subdirectories
// during installation. Modeling it as kind+location (rather than two optional
// fields) rules out the invalid local-and-remote state.
type SkillSource struct {
	Kind     SourceKind
	Location string // directory path for SourceLocal, base URL for SourceRemote
}

// LocalSource returns a SkillSource for a local skill directory.
func LocalSource(dir string) SkillSource {
	return SkillSource{Kind: SourceLocal, Location: dir}
}

// RemoteSource returns a SkillSource for a remote registry subdirectory.
func RemoteSource(baseURL string) SkillSource {
	return SkillSource{Kind: SourceRemote, Location: baseURL}
}

package core

// Capabilities describes what a target editor can natively represent.
type Capabilities struct {
	// SupportsSeparateSkillFiles is true when skills are written as
	// standalone files or directories rather than inlined into the
	// identity document.
	SupportsSeparateSkillFiles bool
	// SupportsIdentity is false for targets with no agent concept;
	// their InstallIdentity is a documented no-op.
	SupportsIdentity bool
	// SupportsTools is false for targets with no tool-invocation config.
	SupportsTools bool
}

// Installer adapts the canonical agent model to one editor's native layout.
// Each operation is independently idempotent. Identity and skill files are
// full overwrites; only the tool-config document merges with existing
// content. Uninstall never touches tool-config entries, which may be shared
// across agents.
type Installer interface {
	Name() string
	DisplayName() string
	Capabilities() Capabilities

	InstallIdentity(agent *Agent) error
	InstallSkills(agent *Agent) error
	InstallTools(agent *Agent) error
	Uninstall(agentName string) error
}

// InstallStep identifies a phase of the install sequence, for progress
// reporting.
type InstallStep int

const (
	StepIdentity InstallStep = iota
	StepSkills
	StepTools
)

// InstallOutcome summarizes a completed installation.
type InstallOutcome struct {
	MissingTools    []string  // MCP commands not found on PATH
	SkillsInstalled int
	ToolsConfigured int
	SetupTools      []MCPTool // tools with a setup URL to surface to the user
}

// InstallAgent runs the install sequence against one target: dependency
// check, identity, skills, tools. Steps run sequentially; the first error
// aborts the rest of the sequence and already-written artifacts remain in
// place. notify, when non-nil, is called before each write phase.
func InstallAgent(agent *Agent, installer Installer, notify func(InstallStep)) (*InstallOutcome, error) {
	outcome := &InstallOutcome{
		MissingTools: CheckAgentDependencies(agent),
	}

	step := func(s InstallStep) {
		if notify != nil {
			notify(s)
		}
	}

	step(StepIdentity)
	if err := installer.InstallIdentity(agent); err != nil {
		return outcome, err
	}

	if len(agent.Skills) > 0 {
		step(StepSkills)
		if err := installer.InstallSkills(agent); err != nil {
			return outcome, err
		}
		outcome.SkillsInstalled = len(agent.Skills)
	}

	if len(agent.MCP) > 0 {
		step(StepTools)
		if err := installer.InstallTools(agent); err != nil {
			return outcome, err
		}
		outcome.ToolsConfigured = len(agent.MCP)
		for _, tool := range agent.MCP {
			if tool.SetupURL != "" {
				outcome.SetupTools = append(outcome.SetupTools, tool)
			}
		}
	}

	return outcome, nil
}

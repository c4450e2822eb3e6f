package core

import "testing"

func TestBuiltinAgents(t *testing.T) {
	agents := BuiltinAgents()
	if len(agents) < 1 {
		t.Fatal("expected at least one built-in agent")
	}

	for i := 1; i < len(agents); i++ {
		if agents[i-1].Name >= agents[i].Name {
			t.Errorf("built-ins not sorted: %q before %q", agents[i-1].Name, agents[i].Name)
		}
	}

	for _, a := range agents {
		if a.Name == "" || a.Version == "" || a.Identity.SystemPrompt == "" {
			t.Errorf("built-in %q missing required fields", a.Name)
		}
	}
}

func TestBuiltinAgent_RustArchitect(t *testing.T) {
	agent, ok := BuiltinAgent("rust-architect")
	if !ok {
		t.Fatal("rust-architect built-in missing")
	}

	if len(agent.Skills) != 2 {
		t.Errorf("expected 2 skills, got %d", len(agent.Skills))
	}
	if len(agent.MCP) != 1 {
		t.Fatalf("expected 1 MCP tool, got %d", len(agent.MCP))
	}

	tool := agent.MCP[0]
	if tool.Name != "context7" {
		t.Errorf("expected context7 tool, got %q", tool.Name)
	}
	if tool.Command != "npx" {
		t.Errorf("expected npx command, got %q", tool.Command)
	}
	if tool.SetupURL == "" {
		t.Error("context7 should carry a setup URL")
	}
}

func TestBuiltinAgent_Unknown(t *testing.T) {
	if _, ok := BuiltinAgent("nope"); ok {
		t.Error("expected lookup miss for unknown name")
	}
}

func TestBuiltinSummaries(t *testing.T) {
	summaries := BuiltinSummaries()
	if len(summaries) != len(BuiltinAgents()) {
		t.Fatal("summaries should cover every built-in")
	}
	for _, s := range summaries {
		if s.Name == "" || s.Description == "" {
			t.Errorf("summary missing fields: %+v", s)
		}
	}
}

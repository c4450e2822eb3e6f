package core

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/yaml.v3"
)

const testAgentYAML = `name: test-agent
version: 2.1.0
description: A test agent
author: tester
identity:
  model: claude-sonnet-4
  icon: "🧪"
  system_prompt: You are a test agent.
skills:
  - name: testing
    description: Write tests
    content: Always write table tests.
mcp:
  - name: context7
    command: npx
    args: ["-y", "@upstash/context7-mcp"]
    env:
      CONTEXT7_API_KEY: YOUR_KEY
    setup_url: https://context7.com/dashboard
`

func newTestRegistry(handler http.Handler) (*Registry, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewRegistry(srv.URL, srv.Client()), srv
}

func TestRegistry_ResolveAgentDescriptor(t *testing.T) {
	reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/agents/test-agent.yaml" {
			fmt.Fprint(w, testAgentYAML)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	agent, err := reg.Resolve("test-agent")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if agent.Name != "test-agent" {
		t.Errorf("expected name test-agent, got %q", agent.Name)
	}
	if agent.Version != "2.1.0" {
		t.Errorf("expected version 2.1.0, got %q", agent.Version)
	}
	if agent.Identity.SystemPrompt != "You are a test agent." {
		t.Errorf("unexpected system prompt: %q", agent.Identity.SystemPrompt)
	}
	if len(agent.Skills) != 1 || agent.Skills[0].Name != "testing" {
		t.Fatalf("expected 1 skill named testing, got %+v", agent.Skills)
	}
	if len(agent.MCP) != 1 || agent.MCP[0].Command != "npx" {
		t.Fatalf("expected 1 MCP tool using npx, got %+v", agent.MCP)
	}
	if agent.MCP[0].Env["CONTEXT7_API_KEY"] != "YOUR_KEY" {
		t.Errorf("expected env to survive, got %v", agent.MCP[0].Env)
	}
}

func TestRegistry_ResolveDescriptorRoundTrip(t *testing.T) {
	original := Agent{
		Name:        "round-trip",
		Version:     "1.2.3",
		Description: "desc",
		Author:      "author",
		Identity:    Identity{Model: "opus", Icon: "🔁", SystemPrompt: "prompt"},
		Skills:      []Skill{{Name: "s1", Description: "d1", Content: "c1"}},
		MCP:         []MCPTool{{Name: "t1", Command: "docker", Args: []string{"run"}}},
	}
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/agents/round-trip.yaml" {
			_, _ = w.Write(data)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	agent, err := reg.Resolve("round-trip")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if agent.Name != original.Name || agent.Version != original.Version ||
		agent.Description != original.Description || agent.Author != original.Author {
		t.Errorf("header fields changed in round trip: %+v", agent)
	}
	if agent.Identity != original.Identity {
		t.Errorf("identity changed: %+v vs %+v", agent.Identity, original.Identity)
	}
	if len(agent.Skills) != 1 || agent.Skills[0].Name != "s1" || agent.Skills[0].Content != "c1" {
		t.Errorf("skills changed: %+v", agent.Skills)
	}
	if len(agent.MCP) != 1 || agent.MCP[0].Command != "docker" {
		t.Errorf("mcp changed: %+v", agent.MCP)
	}
}

func TestRegistry_ResolveFallsThroughToSkill(t *testing.T) {
	reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/code-cleanup/SKILL.md" {
			fmt.Fprint(w, "---\nname: code-cleanup\ndescription: Clean code\n---\nRemove dead code.")
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	agent, err := reg.Resolve("code-cleanup")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if agent.Name != "code-cleanup" {
		t.Errorf("expected synthetic agent named code-cleanup, got %q", agent.Name)
	}
	if agent.Author != "community" {
		t.Errorf("expected community author, got %q", agent.Author)
	}
	if len(agent.Skills) != 1 {
		t.Fatalf("expected exactly 1 skill, got %d", len(agent.Skills))
	}
	skill := agent.Skills[0]
	if skill.Content != "Remove dead code." {
		t.Errorf("unexpected skill content: %q", skill.Content)
	}
	if skill.Source.Kind != SourceRemote {
		t.Errorf("expected remote source, got %v", skill.Source.Kind)
	}
	if skill.Source.Location != srv.URL+"/code-cleanup" {
		t.Errorf("unexpected source location: %q", skill.Source.Location)
	}
}

func TestRegistry_ResolveFallsThroughToBuiltin(t *testing.T) {
	reg, srv := newTestRegistry(http.NotFoundHandler())
	defer srv.Close()

	agent, err := reg.Resolve("rust-architect")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if agent.Name != "rust-architect" {
		t.Errorf("expected built-in rust-architect, got %q", agent.Name)
	}
}

func TestRegistry_ResolveBuiltinOnTransportFailure(t *testing.T) {
	// Nothing listens here; every fetch is a connection failure.
	reg := NewRegistry("http://127.0.0.1:1", nil)

	agent, err := reg.Resolve("rust-architect")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if agent.Name != "rust-architect" {
		t.Errorf("expected built-in fallback, got %q", agent.Name)
	}
}

func TestRegistry_ResolveNotFound(t *testing.T) {
	reg, srv := newTestRegistry(http.NotFoundHandler())
	defer srv.Close()

	_, err := reg.Resolve("does-not-exist")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "does-not-exist" {
		t.Errorf("error should name the requested agent, got %q", notFound.Name)
	}
}

func TestRegistry_ResolveMalformedDescriptorFallsThrough(t *testing.T) {
	reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/agents/rust-architect.yaml" {
			fmt.Fprint(w, "{{{ not yaml")
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	// Malformed tier-1 descriptor must not block the built-in tier.
	agent, err := reg.Resolve("rust-architect")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if agent.Name != "rust-architect" {
		t.Errorf("expected built-in fallback, got %q", agent.Name)
	}
}

func TestRegistry_ListNeverFails(t *testing.T) {
	tests := []struct {
		name string
		reg  func(t *testing.T) *Registry
	}{
		{
			name: "transport failure",
			reg: func(t *testing.T) *Registry {
				return NewRegistry("http://127.0.0.1:1", nil)
			},
		},
		{
			name: "not found",
			reg: func(t *testing.T) *Registry {
				reg, srv := newTestRegistry(http.NotFoundHandler())
				t.Cleanup(srv.Close)
				return reg
			},
		},
		{
			name: "malformed manifest",
			reg: func(t *testing.T) *Registry {
				reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					fmt.Fprint(w, "not json")
				}))
				t.Cleanup(srv.Close)
				return reg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := tt.reg(t).List()
			if len(summaries) < 1 {
				t.Fatal("List() must fall back to built-ins, got empty list")
			}
		})
	}
}

func TestRegistry_ListFromManifest(t *testing.T) {
	reg, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/registry.json" {
			fmt.Fprint(w, `[{"name":"remote-agent","version":"0.1.0","description":"from registry","author":"someone"}]`)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	summaries := reg.List()
	if len(summaries) != 1 || summaries[0].Name != "remote-agent" {
		t.Fatalf("expected the remote manifest, got %+v", summaries)
	}
}

func TestParseSkillDocument(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     Skill
	}{
		{
			name:     "no frontmatter",
			document: "Just markdown content.",
			want:     Skill{Name: "req", Content: "Just markdown content."},
		},
		{
			name:     "full frontmatter",
			document: "---\nname: X\ndescription: Y\n---\nBODY",
			want:     Skill{Name: "X", Description: "Y", Content: "BODY"},
		},
		{
			name:     "missing closing delimiter",
			document: "---\nname: X\nBODY",
			want:     Skill{Name: "req", Content: "---\nname: X\nBODY"},
		},
		{
			name:     "malformed frontmatter degrades to content only",
			document: "---\n{{{ not yaml\n---\nBODY",
			want:     Skill{Name: "req", Content: "BODY"},
		},
		{
			name:     "name defaults to requested identifier",
			document: "---\ndescription: no name here\n---\nBODY",
			want:     Skill{Name: "req", Description: "no name here", Content: "BODY"},
		},
		{
			name:     "leading newlines trimmed from body",
			document: "---\nname: X\n---\n\n\nBODY",
			want:     Skill{Name: "X", Content: "BODY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkillDocument("req", tt.document)
			if got.Name != tt.want.Name {
				t.Errorf("name: got %q, want %q", got.Name, tt.want.Name)
			}
			if got.Description != tt.want.Description {
				t.Errorf("description: got %q, want %q", got.Description, tt.want.Description)
			}
			if got.Content != tt.want.Content {
				t.Errorf("content: got %q, want %q", got.Content, tt.want.Content)
			}
		})
	}
}

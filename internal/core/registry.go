package core

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultRegistryURL is the registry used when no settings file overrides it.
const DefaultRegistryURL = "https://raw.githubusercontent.com/ahmed6ww/ax-agents/main"

// Registry fetches agent and skill descriptors over HTTP. The registry is a
// plain static-file host, so every operation is a single GET against a fixed
// path convention:
//
//	{base}/registry.json          agent summaries
//	{base}/agents/{name}.yaml     agent descriptor
//	{base}/{name}/SKILL.md        standalone skill document
type Registry struct {
	baseURL string
	client  *http.Client
}

// NewRegistry creates a Registry for the given base URL. A nil client uses
// http.DefaultClient.
func NewRegistry(baseURL string, client *http.Client) *Registry {
	if client == nil {
		client = http.DefaultClient
	}
	return &Registry{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// BaseURL returns the registry base URL.
func (r *Registry) BaseURL() string { return r.baseURL }

// Resolve produces an Agent for the given name by trying, in order: an agent
// descriptor, a standalone skill wrapped into a synthetic agent, and the
// built-in table. Tier failures (absent, transport, malformed) all fall
// through to the next tier; only exhausting every tier is an error.
func (r *Registry) Resolve(name string) (*Agent, error) {
	if agent, err := r.fetchAgent(name); err == nil {
		return agent, nil
	}

	if agent, err := r.fetchSkillAsAgent(name); err == nil {
		return agent, nil
	}

	if agent, ok := BuiltinAgent(name); ok {
		return agent, nil
	}

	return nil, &NotFoundError{Name: name}
}

// List fetches the registry manifest. On any network or parse failure it
// returns the built-in summaries instead; a disconnected user always gets a
// usable listing.
func (r *Registry) List() []AgentSummary {
	url := r.baseURL + "/registry.json"

	data, found, err := r.get(url)
	if err != nil || !found {
		return BuiltinSummaries()
	}

	var summaries []AgentSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return BuiltinSummaries()
	}
	if len(summaries) == 0 {
		return BuiltinSummaries()
	}
	return summaries
}

// fetchAgent retrieves and parses an agent descriptor (tier 1).
func (r *Registry) fetchAgent(name string) (*Agent, error) {
	url := fmt.Sprintf("%s/agents/%s.yaml", r.baseURL, name)

	data, found, err := r.get(url)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Name: name}
	}

	var agent Agent
	if err := yaml.Unmarshal(data, &agent); err != nil {
		return nil, &ParseError{Resource: url, Err: err}
	}
	return &agent, nil
}

// fetchSkillAsAgent retrieves a standalone SKILL.md and wraps it into a
// minimal synthetic agent (tier 2).
func (r *Registry) fetchSkillAsAgent(name string) (*Agent, error) {
	url := fmt.Sprintf("%s/%s/SKILL.md", r.baseURL, name)

	data, found, err := r.get(url)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Name: name}
	}

	skill := ParseSkillDocument(name, string(data))

	// Remember where the skill came from so installers can fetch its
	// scripts/, references/ and assets/ subdirectories.
	skill.Source = RemoteSource(fmt.Sprintf("%s/%s", r.baseURL, name))

	description := skill.Description
	if description == "" {
		description = fmt.Sprintf("Skill: %s", name)
	}

	return &Agent{
		Name:        name,
		Version:     "1.0.0",
		Description: description,
		Author:      "community",
		Identity: Identity{
			Icon:         "📚",
			SystemPrompt: fmt.Sprintf("You have the %s skill installed.", name),
		},
		Skills: []Skill{skill},
	}, nil
}

// ParseSkillDocument parses a SKILL.md document: an optional YAML frontmatter
// block delimited by a leading "---" line and a closing "---" line, followed
// by the markdown body. Documents without a well-formed frontmatter block are
// treated as pure content with all other fields empty. The skill name
// defaults to the requested identifier when the frontmatter omits it.
func ParseSkillDocument(name, document string) Skill {
	if !strings.HasPrefix(document, "---") {
		return Skill{Name: name, Content: document}
	}

	rest := document[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		// No closing delimiter: treat as no frontmatter at all.
		return Skill{Name: name, Content: document}
	}

	frontmatter := strings.TrimSpace(rest[:idx])
	body := rest[idx+4:]
	body = strings.TrimLeft(body, "\r\n")

	var skill Skill
	if err := yaml.Unmarshal([]byte(frontmatter), &skill); err != nil {
		skill = Skill{Name: name}
	}
	skill.Content = body

	if skill.Name == "" {
		skill.Name = name
	}
	return skill
}

// get performs a single GET. A non-2xx response is reported as not found;
// only connection-level failures produce an error.
func (r *Registry) get(url string) (data []byte, found bool, err error) {
	resp, err := r.client.Get(url)
	if err != nil {
		return nil, false, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, nil
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, &TransportError{URL: url, Err: err}
	}
	return data, true, nil
}

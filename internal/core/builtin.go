package core

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Built-in demo agents, available without network access. They use the same
// descriptor format as the registry so resolution is uniform across tiers.
//
//go:embed builtins/*.yaml
var builtinFS embed.FS

var loadBuiltins = sync.OnceValue(func() []Agent {
	entries, err := builtinFS.ReadDir("builtins")
	if err != nil {
		panic(fmt.Sprintf("reading embedded agents: %v", err))
	}

	agents := make([]Agent, 0, len(entries))
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("builtins/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("reading embedded agent %s: %v", entry.Name(), err))
		}
		var agent Agent
		if err := yaml.Unmarshal(data, &agent); err != nil {
			panic(fmt.Sprintf("parsing embedded agent %s: %v", entry.Name(), err))
		}
		agents = append(agents, agent)
	}

	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return agents
})

// BuiltinAgents returns all built-in demo agents, sorted by name.
func BuiltinAgents() []Agent {
	return loadBuiltins()
}

// BuiltinAgent looks up a built-in agent by exact name.
func BuiltinAgent(name string) (*Agent, bool) {
	for _, a := range loadBuiltins() {
		if a.Name == name {
			agent := a
			return &agent, true
		}
	}
	return nil, false
}

// BuiltinSummaries returns listing rows for the built-in agents.
func BuiltinSummaries() []AgentSummary {
	agents := loadBuiltins()
	summaries := make([]AgentSummary, len(agents))
	for i := range agents {
		summaries[i] = agents[i].Summary()
	}
	return summaries
}

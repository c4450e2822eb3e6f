package core

import "os/exec"

// CheckAgentDependencies returns the commands referenced by the agent's MCP
// tools that are not available on PATH. Missing dependencies are reported,
// never enforced: the install proceeds regardless.
func CheckAgentDependencies(agent *Agent) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, tool := range agent.MCP {
		if tool.Command == "" || seen[tool.Command] {
			continue
		}
		seen[tool.Command] = true
		if _, err := exec.LookPath(tool.Command); err != nil {
			missing = append(missing, tool.Command)
		}
	}
	return missing
}

// installHints maps common tool commands to installation pointers.
var installHints = map[string]string{
	"docker":  "Install Docker: https://docs.docker.com/get-docker/",
	"cargo":   "Install Rust: https://rustup.rs/",
	"npm":     "Install Node.js: https://nodejs.org/",
	"npx":     "Install Node.js: https://nodejs.org/",
	"python":  "Install Python: https://www.python.org/downloads/",
	"python3": "Install Python: https://www.python.org/downloads/",
	"go":      "Install Go: https://go.dev/dl/",
	"uv":      "Install uv: pip install uv",
}

// InstallHint returns an installation pointer for a missing tool command,
// or "" if none is known.
func InstallHint(tool string) string {
	return installHints[tool]
}

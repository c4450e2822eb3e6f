// Package target implements the installer adapter layer: one implementation
// of core.Installer per supported editor. Each target knows its own paths
// and native config formats; the orchestrator selects one by name.
package target

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ahmed6ww/apm/internal/core"
)

// Options configures how a target resolves its filesystem locations.
type Options struct {
	// Global installs into the editor's machine-wide config location
	// instead of the current project, for targets that distinguish them.
	Global bool
	// Root overrides the target's base config directory. Used by tests.
	Root string
	// ToolConfigPath overrides the tool-config document path. Used by
	// tests; defaults to a path under Root when Root is set.
	ToolConfigPath string
	// Client is used for remote skill asset fetches. Defaults to
	// http.DefaultClient.
	Client *http.Client
}

func (o Options) httpClient() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return http.DefaultClient
}

// definition ties a target name to its constructor and detection probe.
type definition struct {
	name        string
	displayName string
	factory     func(Options) (core.Installer, error)
	detect      func() (path string, installed bool)
}

var definitions []definition

func register(d definition) { definitions = append(definitions, d) }

// ForName constructs the installer for the named target.
func ForName(name string, opts Options) (core.Installer, error) {
	for _, d := range definitions {
		if d.name == name {
			return d.factory(opts)
		}
	}
	return nil, fmt.Errorf("unknown target %q; available: %s", name, strings.Join(Names(), ", "))
}

// Names returns the machine names of all registered targets.
func Names() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.name
	}
	return names
}

// Detection reports whether an editor appears installed on this machine.
type Detection struct {
	Name        string
	DisplayName string
	Path        string // probed location, for display
	Installed   bool
}

// DetectAll probes every registered target.
func DetectAll() []Detection {
	result := make([]Detection, 0, len(definitions))
	for _, d := range definitions {
		path, installed := d.detect()
		result = append(result, Detection{
			Name:        d.name,
			DisplayName: d.displayName,
			Path:        path,
			Installed:   installed,
		})
	}
	return result
}

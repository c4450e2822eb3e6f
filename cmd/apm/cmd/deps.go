package cmd

import (
	"fmt"

	"github.com/ahmed6ww/apm/internal/core"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	settings *core.SettingsManager
}

// newDeps creates shared dependencies. Called lazily by commands that need them.
func newDeps() (*deps, error) {
	settings, err := core.NewSettingsManager()
	if err != nil {
		return nil, fmt.Errorf("initializing settings: %w", err)
	}

	return &deps{
		settings: settings,
	}, nil
}

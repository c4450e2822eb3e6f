package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	settingsDirName  = ".apm"
	settingsFileName = "config.toml"
)

// Settings is the apm configuration stored at ~/.apm/config.toml.
type Settings struct {
	DefaultTarget string `toml:"default_target"`
	RegistryURL   string `toml:"registry_url"`
	Verbose       bool   `toml:"verbose"`
}

// SettingsManager reads and writes the settings file.
type SettingsManager struct {
	dir string
}

// NewSettingsManager creates a manager rooted at ~/.apm.
func NewSettingsManager() (*SettingsManager, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, &PreconditionError{Reason: "resolving home directory", Err: err}
	}
	return &SettingsManager{dir: filepath.Join(home, settingsDirName)}, nil
}

// NewSettingsManagerWithDir creates a manager with a custom directory.
// Useful for testing.
func NewSettingsManagerWithDir(dir string) *SettingsManager {
	return &SettingsManager{dir: dir}
}

// Path returns the full path to the settings file.
func (m *SettingsManager) Path() string {
	return filepath.Join(m.dir, settingsFileName)
}

// Load reads the settings from disk, returning defaults if the file does not
// exist yet.
func (m *SettingsManager) Load() (*Settings, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Resource: m.Path(), Err: err}
	}
	if s.RegistryURL == "" {
		s.RegistryURL = DefaultRegistryURL
	}
	if s.DefaultTarget == "" {
		s.DefaultTarget = "claude"
	}
	return &s, nil
}

// Save writes the settings to disk, creating the directory if needed.
func (m *SettingsManager) Save(s *Settings) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	// Atomic write: temp file + rename.
	tmpPath := m.Path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmpPath, m.Path()); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// DefaultSettings returns the settings used before `apm init` has run.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultTarget: "claude",
		RegistryURL:   DefaultRegistryURL,
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads configuration from JSON files using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads and validates settings.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &cfg, nil
}

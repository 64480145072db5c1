package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/smoothpath/smooth"
	"gopkg.in/yaml.v3"
)

// SettingsStore keeps the last used settings of a procedure between runs.
type SettingsStore interface {
	// Get returns the settings stored for procedure, or the defaults.
	Get(procedure string) (smooth.Config, error)
	// Set stores the settings for procedure.
	Set(procedure string, cfg smooth.Config) error
}

// FileSettings stores settings in a YAML file, one entry per procedure:
//
//	plug-in-smooth-path:
//	  smooth-specified: true
//	  angle-min: 60
//	  angle-max: 120
//
// A missing file or entry yields smooth.DefaultConfig(). Fields missing from
// an entry keep their default.
type FileSettings struct {
	Path string
}

// NewFileSettings creates a settings store backed by the file at path.
func NewFileSettings(path string) *FileSettings {
	return &FileSettings{Path: path}
}

func (fs *FileSettings) read() (map[string]yaml.Node, error) {
	entries := map[string]yaml.Node{}
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", fs.Path, err)
	}
	return entries, nil
}

// Get is part of interface SettingsStore.
func (fs *FileSettings) Get(procedure string) (smooth.Config, error) {
	cfg := smooth.DefaultConfig()
	entries, err := fs.read()
	if err != nil {
		return cfg, err
	}
	node, ok := entries[procedure]
	if !ok {
		tracer().Debugf("no settings for %s, using defaults", procedure)
		return cfg, nil
	}
	if err := node.Decode(&cfg); err != nil {
		return smooth.DefaultConfig(), fmt.Errorf("failed to parse settings for %s: %w", procedure, err)
	}
	if err := cfg.Validate(); err != nil {
		return smooth.DefaultConfig(), err
	}
	return cfg, nil
}

// Set is part of interface SettingsStore. Entries of other procedures are
// preserved.
func (fs *FileSettings) Set(procedure string, cfg smooth.Config) error {
	entries, err := fs.read()
	if err != nil {
		return err
	}
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return err
	}
	entries[procedure] = node
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fs.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// MemorySettings keeps settings in memory, for the lifetime of the process.
type MemorySettings map[string]smooth.Config

// Get is part of interface SettingsStore.
func (ms MemorySettings) Get(procedure string) (smooth.Config, error) {
	if cfg, ok := ms[procedure]; ok {
		return cfg, nil
	}
	return smooth.DefaultConfig(), nil
}

// Set is part of interface SettingsStore.
func (ms MemorySettings) Set(procedure string, cfg smooth.Config) error {
	ms[procedure] = cfg
	return nil
}

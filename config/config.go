// Package config loads and saves gameplay tuning files. The engine ships
// with compiled-in defaults; a YAML file beside the binary can override any
// constant, which is how the collision band and jump window get retuned
// without a rebuild.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/motionrush/engine"
)

// File is the on-disk tuning document, one block per game mode.
type File struct {
	Dash  engine.Tuning `yaml:"dash"`
	River engine.Tuning `yaml:"river"`
}

// Default returns the compiled-in tuning for both modes.
func Default() File {
	return File{
		Dash:  engine.DashTuning(),
		River: engine.RiverTuning(),
	}
}

// For returns the tuning block for a mode.
func (f File) For(mode engine.Mode) engine.Tuning {
	if mode == engine.ModeRiver {
		return f.River
	}
	return f.Dash
}

// Load reads a tuning file. A missing file is not an error; the defaults
// simply apply.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}

	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return f, nil
}

// Save writes the tuning document, creating parent directories as needed.
func Save(path string, f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

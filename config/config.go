package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Rename holds the static option set for a rename run. It is loaded once at
// process start and passed into the plan builder; there is no runtime reload.
type Rename struct {
	InputDir   string `toml:"input_dir"`
	Prefix     string `toml:"prefix"`
	StartIndex int    `toml:"start_index"`
	DryRun     bool   `toml:"dry_run"`
	PadWidth   int    `toml:"pad_width"`
}

// DefaultRename returns the renamer defaults. Dry-run is the default mode so
// a bare invocation never mutates anything.
func DefaultRename() Rename {
	return Rename{
		InputDir:   "input_audio",
		StartIndex: 1,
		DryRun:     true,
		PadWidth:   3,
	}
}

// LoadRename reads a TOML config file over the defaults. Validation happens
// separately so callers can apply flag overrides first.
func LoadRename(path string) (Rename, error) {
	cfg := DefaultRename()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the merged option set before any work begins.
func (c Rename) Validate() error {
	if c.InputDir == "" {
		return errors.New("input directory must not be empty")
	}
	if c.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	if c.StartIndex < 0 {
		return fmt.Errorf("start index must be >= 0, got %d", c.StartIndex)
	}
	if c.PadWidth < 0 {
		return fmt.Errorf("pad width must be >= 0, got %d", c.PadWidth)
	}
	return nil
}

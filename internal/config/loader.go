package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/input"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "atom.yaml"

// LoadAtom loads the atom viewer configuration.
// Search order: customPath -> ~/.atomviz/configs/atom.yaml -> ./configs/atom.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it sets.
func LoadAtom(customPath string) (AtomConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AtomConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AtomConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAtomYAML)
	if err != nil {
		return DefaultAtomConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (AtomConfig, error) {
	cfg := DefaultAtomConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AtomConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AtomConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c AtomConfig) Validate() error {
	v := c.Visual
	if v.NucleusRadius <= 0 || v.ElectronRadius <= 0 {
		return fmt.Errorf("config: nucleus and electron radius must be positive")
	}
	if v.BaseOrbit <= v.NucleusRadius {
		return fmt.Errorf("config: base_orbit %.2f must exceed nucleus_radius %.2f", v.BaseOrbit, v.NucleusRadius)
	}
	if v.OrbitStep <= 0 {
		return fmt.Errorf("config: orbit_step must be positive")
	}
	if v.Extent <= 0 {
		return fmt.Errorf("config: extent must be positive")
	}
	if _, err := atom.ParseMotionMode(c.Motion.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Motion.Speed < 0 {
		return fmt.Errorf("config: motion speed must not be negative")
	}
	if c.Input.DebounceMS <= 0 {
		return fmt.Errorf("config: debounce_ms must be positive")
	}
	if _, err := input.ParsePolicy(c.Input.InvalidPolicy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !atom.Valid(c.Input.DefaultElement) {
		return fmt.Errorf("config: default_element %d out of range 1-%d", c.Input.DefaultElement, atom.MaxAtomicNumber)
	}
	if c.Sound.Enabled && (c.Sound.SampleRate <= 0 || c.Sound.DurationMS <= 0) {
		return fmt.Errorf("config: sound needs a positive sample_rate and duration_ms")
	}
	return nil
}

// MotionMode returns the configured initial motion mode.
func (c AtomConfig) MotionMode() atom.MotionMode {
	m, _ := atom.ParseMotionMode(c.Motion.Mode)
	return m
}

// InputConfig returns the digit accumulator settings.
func (c AtomConfig) InputConfig() input.Config {
	p, _ := input.ParsePolicy(c.Input.InvalidPolicy)
	return input.Config{
		Window: time.Duration(c.Input.DebounceMS) * time.Millisecond,
		Policy: p,
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".atomviz", "configs", filename)
}

// Package config provides YAML-based configuration loading and speed
// presets for the atom viewer.
package config

// AtomConfig contains all configuration for the atom viewer.
type AtomConfig struct {
	Visual VisualConfig `yaml:"visual"`
	Motion MotionConfig `yaml:"motion"`
	Input  InputConfig  `yaml:"input"`
	Sound  SoundConfig  `yaml:"sound"`
}

// VisualConfig defines sizes (in world units) and colours of the model.
// The window maps the world square [-Extent, Extent] onto the view.
type VisualConfig struct {
	NucleusRadius  float64 `yaml:"nucleus_radius"`
	ElectronRadius float64 `yaml:"electron_radius"`
	BaseOrbit      float64 `yaml:"base_orbit"`
	OrbitStep      float64 `yaml:"orbit_step"`
	Extent         float64 `yaml:"extent"`
	ShowOrbits     bool    `yaml:"show_orbits"`
	NucleusColor   string  `yaml:"nucleus_color"`
	ElectronColor  string  `yaml:"electron_color"`
	OrbitColor     string  `yaml:"orbit_color"`
	ShellHueStart  float64 `yaml:"shell_hue_start"`
	ShellHueSpan   float64 `yaml:"shell_hue_span"`
}

// MotionConfig defines electron rotation.
type MotionConfig struct {
	Mode  string  `yaml:"mode"`  // "stationary" or "rotating"
	Speed float64 `yaml:"speed"` // radians per second
}

// InputConfig defines digit entry behaviour.
type InputConfig struct {
	DebounceMS     int    `yaml:"debounce_ms"`
	InvalidPolicy  string `yaml:"invalid_policy"` // "clamp" or "reject"
	DefaultElement int    `yaml:"default_element"`
}

// SoundConfig defines the selection chime.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	DurationMS int     `yaml:"duration_ms"`
	BaseFreq   float64 `yaml:"base_freq"`
	Volume     float64 `yaml:"volume"`
}

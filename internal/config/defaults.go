package config

import (
	_ "embed"
)

//go:embed defaults/atom.yaml
var defaultAtomYAML []byte

// DefaultAtomConfig returns the default atom viewer configuration.
func DefaultAtomConfig() AtomConfig {
	return AtomConfig{
		Visual: VisualConfig{
			NucleusRadius:  0.1,
			ElectronRadius: 0.05,
			BaseOrbit:      1.0,
			OrbitStep:      0.5,
			Extent:         2.0,
			ShowOrbits:     true,
			NucleusColor:   "#ff0000",
			ElectronColor:  "#ffff00",
			OrbitColor:     "#5a5a5a",
			ShellHueStart:  60,
			ShellHueSpan:   240,
		},
		Motion: MotionConfig{
			Mode:  "rotating",
			Speed: 0.9,
		},
		Input: InputConfig{
			DebounceMS:     2000,
			InvalidPolicy:  "clamp",
			DefaultElement: 1,
		},
		Sound: SoundConfig{
			Enabled:    false,
			SampleRate: 44100,
			DurationMS: 120,
			BaseFreq:   220,
			Volume:     0.25,
		},
	}
}

package config

import (
	"fmt"
	"strings"
)

// SpeedPreset is a named rotation speed.
type SpeedPreset string

const (
	SpeedDefault SpeedPreset = ""
	SpeedFrozen  SpeedPreset = "frozen"
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
)

// presetSpeeds maps presets to radians per second.
var presetSpeeds = map[SpeedPreset]float64{
	SpeedSlow:   0.3,
	SpeedNormal: 0.9,
	SpeedFast:   2.4,
}

// ParseSpeedPreset converts a preset name. Empty selects SpeedDefault,
// which leaves the configuration untouched.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	p := SpeedPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case SpeedDefault, SpeedFrozen, SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return SpeedDefault, fmt.Errorf("config: unknown speed preset %q (frozen, slow, normal, fast)", s)
	}
}

// ApplySpeedPreset modifies the motion section based on a preset.
// Frozen starts stationary; the others start rotating at the preset speed.
func ApplySpeedPreset(cfg *AtomConfig, preset SpeedPreset) {
	switch preset {
	case SpeedDefault:
		return
	case SpeedFrozen:
		cfg.Motion.Mode = "stationary"
	default:
		cfg.Motion.Mode = "rotating"
		cfg.Motion.Speed = presetSpeeds[preset]
	}
}

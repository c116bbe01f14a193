package atom

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/atomviz/internal/core"
)

// MotionMode selects whether electrons rotate around their shell.
type MotionMode int

const (
	Stationary MotionMode = iota
	Rotating
)

// String returns the mode name used in config files and flags.
func (m MotionMode) String() string {
	switch m {
	case Stationary:
		return "stationary"
	case Rotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m MotionMode) Toggle() MotionMode {
	if m == Rotating {
		return Stationary
	}
	return Rotating
}

// ParseMotionMode converts a mode name to a MotionMode.
func ParseMotionMode(s string) (MotionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stationary", "static", "off":
		return Stationary, nil
	case "rotating", "rotate", "on":
		return Rotating, nil
	default:
		return Stationary, fmt.Errorf("atom: unknown motion mode %q", s)
	}
}

// OrbitRadius returns the radius of shell i: base for the innermost shell,
// growing by step per shell outward.
func OrbitRadius(i int, base, step float64) float64 {
	return base + float64(i)*step
}

// Angles returns the angle (radians) of each of k electrons on one shell.
// Electron i sits at 2π/k·i; in Rotating mode every angle is offset by
// t·speed, so the shell turns rigidly and spacing never changes.
func Angles(k int, mode MotionMode, t, speed float64) []float64 {
	if k <= 0 {
		return nil
	}
	offset := 0.0
	if mode == Rotating {
		offset = t * speed
	}
	step := 2 * math.Pi / float64(k)
	angles := make([]float64, k)
	for i := range angles {
		angles[i] = offset + step*float64(i)
	}
	return angles
}

// Positions returns the world position of each of k electrons on a shell of
// the given radius, centred on the nucleus.
func Positions(radius float64, k int, mode MotionMode, t, speed float64) []core.Vec2 {
	angles := Angles(k, mode, t, speed)
	pts := make([]core.Vec2, len(angles))
	for i, a := range angles {
		pts[i] = core.Polar(radius, a)
	}
	return pts
}

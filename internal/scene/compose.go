// Package scene turns the atom state into a render-ready description and
// draws that description onto a terminal screen buffer.
package scene

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/config"
	"github.com/vovakirdan/atomviz/internal/core"
)

// Params are the fixed visual constants of the model, in world units.
type Params struct {
	NucleusRadius  float64
	ElectronRadius float64
	BaseOrbit      float64
	OrbitStep      float64
	Extent         float64 // minimum half-size of the visible square
	Speed          float64 // rotation speed in radians per second
	ShowOrbits     bool
	Palette        Palette
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultAtomConfig())
}

// ParamsFromConfig extracts scene parameters from the viewer configuration.
func ParamsFromConfig(cfg config.AtomConfig) Params {
	def := DefaultPalette()
	v := cfg.Visual
	return Params{
		NucleusRadius:  v.NucleusRadius,
		ElectronRadius: v.ElectronRadius,
		BaseOrbit:      v.BaseOrbit,
		OrbitStep:      v.OrbitStep,
		Extent:         v.Extent,
		Speed:          cfg.Motion.Speed,
		ShowOrbits:     v.ShowOrbits,
		Palette: Palette{
			Nucleus:  ParseColor(v.NucleusColor, def.Nucleus),
			Electron: ParseColor(v.ElectronColor, def.Electron),
			Orbit:    ParseColor(v.OrbitColor, def.Orbit),
			HueStart: v.ShellHueStart,
			HueSpan:  v.ShellHueSpan,
		},
	}
}

// Shell is one occupied electron shell.
type Shell struct {
	Index     int
	Radius    float64
	Capacity  int
	Electrons []core.Vec2
	Color     color.RGBA
	TermColor core.Color
}

// Full reports whether the shell holds its maximum number of electrons.
func (s Shell) Full() bool {
	return len(s.Electrons) == s.Capacity
}

// Scene is everything a renderer needs to draw one frame.
type Scene struct {
	NucleusRadius  float64
	NucleusColor   color.RGBA
	ElectronRadius float64
	Shells         []Shell
	Orbits         []float64 // ring radii, empty when orbit lines are hidden
	OrbitColor     color.RGBA
	Extent         float64 // half-size of the square that fits the whole atom

	Label         string // element name or error text
	Err           bool
	AtomicNumber  int
	Symbol        string
	Configuration string
	Motion        atom.MotionMode
	Elapsed       float64
}

// Compose builds the frame for st at elapsed seconds. It has no side effects.
func Compose(st atom.State, mode atom.MotionMode, elapsed float64, p Params) Scene {
	occupancy := st.Shells()
	sc := Scene{
		NucleusRadius:  p.NucleusRadius,
		NucleusColor:   p.Palette.Nucleus,
		ElectronRadius: p.ElectronRadius,
		Shells:         make([]Shell, 0, len(occupancy)),
		OrbitColor:     p.Palette.Orbit,
		Label:          st.Name,
		Err:            st.Err,
		AtomicNumber:   st.ElectronCount,
		Configuration:  atom.Configuration(st.ElectronCount),
		Motion:         mode,
		Elapsed:        elapsed,
	}
	if e, ok := st.Element(); ok {
		sc.Symbol = e.Symbol
	}

	outer := p.NucleusRadius
	for i, k := range occupancy {
		r := atom.OrbitRadius(i, p.BaseOrbit, p.OrbitStep)
		electrons := atom.Positions(r, k, mode, elapsed, p.Speed)
		sc.Shells = append(sc.Shells, Shell{
			Index:     i,
			Radius:    r,
			Capacity:  atom.Capacity(i),
			Electrons: electrons,
			Color:     p.Palette.ShellColor(i),
			TermColor: core.ShellColor(i),
		})
		if p.ShowOrbits {
			sc.Orbits = append(sc.Orbits, r)
		}
		for _, e := range electrons {
			outer = max(outer, e.Len()+p.ElectronRadius)
		}
	}
	sc.Extent = max(p.Extent, outer*1.1)
	return sc
}

// Title returns the heading line, e.g. "Sodium (Na) Z=11".
func (s Scene) Title() string {
	if s.Err {
		return s.Label
	}
	return fmt.Sprintf("%s (%s) Z=%d", s.Label, s.Symbol, s.AtomicNumber)
}

// ElectronCount returns the number of electrons drawn in the scene.
func (s Scene) ElectronCount() int {
	n := 0
	for _, sh := range s.Shells {
		n += len(sh.Electrons)
	}
	return n
}

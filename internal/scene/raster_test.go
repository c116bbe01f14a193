package scene

import (
	"testing"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/core"
)

func count(s *core.Screen, r rune) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestRasterizeNucleusCentered(t *testing.T) {
	s := core.NewScreen(80, 24)
	sc := Compose(atom.FromNumber(1), atom.Stationary, 0, DefaultParams())
	Rasterize(sc, s, core.NewRect(0, 0, 80, 24))

	if s.Get(40, 12) != NucleusCoreChar {
		t.Errorf("centre cell = %q, expected nucleus", s.Get(40, 12))
	}
	if s.GetCell(40, 12).Color != core.ColorBrightRed {
		t.Error("nucleus should be red")
	}
}

func TestRasterizeDrawsEveryElectronOfSmallAtoms(t *testing.T) {
	p := DefaultParams()
	p.ShowOrbits = false
	s := core.NewScreen(120, 40)

	for _, n := range []int{1, 2, 3, 6, 10} {
		s.Clear()
		sc := Compose(atom.FromNumber(n), atom.Stationary, 0, p)
		Rasterize(sc, s, core.NewRect(0, 0, 120, 40))
		if got := count(s, ElectronChar); got != n {
			t.Errorf("Z=%d: drew %d electrons", n, got)
		}
	}
}

func TestRasterizeHydrogenElectronPosition(t *testing.T) {
	p := DefaultParams()
	p.ShowOrbits = false
	s := core.NewScreen(80, 40)
	area := core.NewRect(0, 0, 80, 40)
	sc := Compose(atom.FromNumber(1), atom.Stationary, 0, p)
	Rasterize(sc, s, area)

	// Stationary hydrogen puts its electron at angle 0, right of the nucleus
	vp := FitViewport(area, sc.Extent)
	x, y := vp.Project(core.Vec2{X: 1})
	if s.Get(x, y) != ElectronChar {
		t.Errorf("cell (%d, %d) = %q, expected electron", x, y, s.Get(x, y))
	}
	if x <= 40 || y != 20 {
		t.Errorf("electron projected to (%d, %d), expected right of centre on row 20", x, y)
	}
}

func TestRasterizeOrbitRings(t *testing.T) {
	s := core.NewScreen(80, 24)
	sc := Compose(atom.FromNumber(11), atom.Stationary, 0, DefaultParams())
	Rasterize(sc, s, core.NewRect(0, 0, 80, 24))
	if count(s, OrbitChar) == 0 {
		t.Error("orbit rings should be drawn")
	}

	p := DefaultParams()
	p.ShowOrbits = false
	s.Clear()
	Rasterize(Compose(atom.FromNumber(11), atom.Stationary, 0, p), s, core.NewRect(0, 0, 80, 24))
	if count(s, OrbitChar) != 0 {
		t.Error("hidden rings should not be drawn")
	}
}

func TestRasterizeStaysInsideArea(t *testing.T) {
	s := core.NewScreen(60, 20)
	area := core.NewRect(10, 2, 30, 12)
	sc := Compose(atom.FromNumber(118), atom.Rotating, 0.7, DefaultParams())
	Rasterize(sc, s, area)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' && !area.Contains(x, y) {
				t.Fatalf("drew %q outside the area at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestRasterizeEmptyArea(t *testing.T) {
	s := core.NewScreen(10, 10)
	Rasterize(Compose(atom.FromNumber(5), atom.Stationary, 0, DefaultParams()), s, core.NewRect(0, 0, 0, 0))
	if s.String() != core.NewScreen(10, 10).String() {
		t.Error("empty area should draw nothing")
	}
}

func TestFitViewportAspect(t *testing.T) {
	vp := FitViewport(core.NewRect(0, 0, 80, 24), 2)
	if vp.ScaleX != 2*vp.ScaleY {
		t.Errorf("ScaleX %v should be twice ScaleY %v", vp.ScaleX, vp.ScaleY)
	}
	if vp.ScaleX*4 > 80 || vp.ScaleY*4 > 24 {
		t.Error("viewport overflows the area")
	}
}

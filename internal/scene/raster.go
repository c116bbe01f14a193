package scene

import (
	"math"

	"github.com/vovakirdan/atomviz/internal/core"
)

// Glyphs used by the terminal rasteriser.
const (
	NucleusCoreChar = '◉'
	NucleusFillChar = '█'
	ElectronChar    = '●'
	OrbitChar       = '·'
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps world coordinates onto a rectangle of screen cells.
type Viewport struct {
	Area   core.Rect
	ScaleX float64 // cells per world unit, horizontally
	ScaleY float64 // cells per world unit, vertically
}

// FitViewport returns the largest viewport that shows [-extent, extent] in
// both axes inside area, correcting for the cell aspect ratio.
func FitViewport(area core.Rect, extent float64) Viewport {
	if extent <= 0 {
		extent = 1
	}
	sx := math.Min(float64(area.W)/(2*extent), CellAspect*float64(area.H)/(2*extent))
	return Viewport{Area: area, ScaleX: sx, ScaleY: sx / CellAspect}
}

// Project converts a world point to a cell. World y points up.
func (v Viewport) Project(p core.Vec2) (int, int) {
	cx := float64(v.Area.X) + float64(v.Area.W)/2
	cy := float64(v.Area.Y) + float64(v.Area.H)/2
	return int(math.Floor(cx + p.X*v.ScaleX)), int(math.Floor(cy - p.Y*v.ScaleY))
}

// Rasterize draws the atom of sc centred in area. Orbit rings go down first,
// then the nucleus, then electrons, so electrons stay visible on top.
func Rasterize(sc Scene, dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}
	vp := FitViewport(area, sc.Extent)

	for _, r := range sc.Orbits {
		drawRing(dst, vp, r)
	}
	drawNucleus(dst, vp, sc.NucleusRadius)

	for _, sh := range sc.Shells {
		for _, e := range sh.Electrons {
			x, y := vp.Project(e)
			if area.Contains(x, y) {
				dst.SetCell(x, y, ElectronChar, sh.TermColor)
			}
		}
	}
}

// drawRing plots a dotted circle, sampling densely enough to leave no gaps.
func drawRing(dst *core.Screen, vp Viewport, radius float64) {
	steps := max(24, int(2*math.Pi*radius*vp.ScaleX*1.5))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := vp.Project(core.Polar(radius, a))
		if vp.Area.Contains(x, y) {
			dst.SetCell(x, y, OrbitChar, core.ColorGray)
		}
	}
}

// drawNucleus fills every cell whose centre lies inside the nucleus, and
// always marks the centre cell so tiny nuclei remain visible.
func drawNucleus(dst *core.Screen, vp Viewport, radius float64) {
	rx := int(math.Ceil(radius * vp.ScaleX))
	ry := int(math.Ceil(radius * vp.ScaleY))
	cx, cy := vp.Project(core.Vec2{})
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			wx := float64(dx) / vp.ScaleX
			wy := float64(dy) / vp.ScaleY
			if math.Hypot(wx, wy) <= radius && vp.Area.Contains(cx+dx, cy+dy) {
				dst.SetCell(cx+dx, cy+dy, NucleusFillChar, core.ColorRed)
			}
		}
	}
	if vp.Area.Contains(cx, cy) {
		dst.SetCell(cx, cy, NucleusCoreChar, core.ColorBrightRed)
	}
}

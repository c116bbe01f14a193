package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/atomviz/internal/atom"
)

// Palette holds the colours used by pixel renderers.
type Palette struct {
	Nucleus  color.RGBA
	Electron color.RGBA
	Orbit    color.RGBA
	HueStart float64 // hue of the innermost shell, degrees
	HueSpan  float64 // hue distance to the outermost shell, degrees
}

// DefaultPalette mirrors the red nucleus and yellow electrons of the classic view.
func DefaultPalette() Palette {
	return Palette{
		Nucleus:  color.RGBA{R: 255, A: 255},
		Electron: color.RGBA{R: 255, G: 255, A: 255},
		Orbit:    color.RGBA{R: 90, G: 90, B: 90, A: 255},
		HueStart: 60,
		HueSpan:  240,
	}
}

// ShellColor returns the electron colour for shell i. Shells are spread
// along the hue wheel from HueStart; a zero span keeps every shell at the
// plain electron colour.
func (p Palette) ShellColor(i int) color.RGBA {
	if p.HueSpan == 0 {
		return p.Electron
	}
	h := p.HueStart + p.HueSpan*float64(i)/float64(atom.ShellCount-1)
	return toRGBA(colorful.Hsv(normHue(h), 0.8, 1))
}

// ParseColor parses "#rrggbb", falling back to def when s is empty or malformed.
func ParseColor(s string, def color.RGBA) color.RGBA {
	if s == "" {
		return def
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def
	}
	return toRGBA(c)
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func normHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

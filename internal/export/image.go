package export

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/vovakirdan/atomviz/internal/scene"
)

// circleSegments is the polygon resolution used for discs and rings.
const circleSegments = 96

// RenderImage draws sc onto a new w x h image with a black background.
func RenderImage(sc scene.Scene, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	v := newPixelView(w, h, sc.Extent)
	for _, r := range sc.Orbits {
		ring(img, v.cx, v.cy, v.length(r), 1, sc.OrbitColor)
	}

	disc(img, v.cx, v.cy, math.Max(1, v.length(sc.NucleusRadius)), sc.NucleusColor)

	er := math.Max(1, v.length(sc.ElectronRadius))
	for _, sh := range sc.Shells {
		for _, e := range sh.Electrons {
			x, y := v.point(e)
			disc(img, x, y, er, sh.Color)
		}
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 18),
	}
	d.DrawString(sc.Title())
	return img
}

// disc fills a circle of radius r centred on (x, y).
func disc(dst draw.Image, x, y, r float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	circlePath(z, x, y, r, false)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// ring strokes a circle of radius r with the given line width by filling
// the annulus between two opposite-winding polygons.
func ring(dst draw.Image, x, y, r, width float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	circlePath(z, x, y, r+width/2, false)
	circlePath(z, x, y, math.Max(0, r-width/2), true)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func circlePath(z *vector.Rasterizer, x, y, r float64, reverse bool) {
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			a = -a
		}
		px := float32(x + r*math.Cos(a))
		py := float32(y + r*math.Sin(a))
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()
}

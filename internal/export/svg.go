package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/vovakirdan/atomviz/internal/registry"
	"github.com/vovakirdan/atomviz/internal/scene"
)

func init() {
	registry.Register("svg", func() registry.Exporter { return SVG{} })
}

// SVG writes one frame as a scalable vector drawing.
type SVG struct{}

func (SVG) ID() string        { return "svg" }
func (SVG) Title() string     { return "SVG drawing of one frame" }
func (SVG) Extension() string { return ".svg" }

// Export writes the frame at job.Elapsed.
func (SVG) Export(w io.Writer, job registry.Job) error {
	width, height := imageSize(job)
	sc := frame(job)
	v := newPixelView(width, height, sc.Extent)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(sc.Title())
	canvas.Rect(0, 0, width, height, "fill:black")

	if len(sc.Orbits) > 0 {
		canvas.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", scene.Hex(sc.OrbitColor)))
		for _, r := range sc.Orbits {
			canvas.Circle(round(v.cx), round(v.cy), round(v.length(r)))
		}
		canvas.Gend()
	}

	canvas.Circle(round(v.cx), round(v.cy), max(1, round(v.length(sc.NucleusRadius))),
		"fill:"+scene.Hex(sc.NucleusColor))

	er := max(1, round(v.length(sc.ElectronRadius)))
	for _, sh := range sc.Shells {
		canvas.Gstyle("fill:" + scene.Hex(sh.Color))
		for _, e := range sh.Electrons {
			x, y := v.point(e)
			canvas.Circle(round(x), round(y), er)
		}
		canvas.Gend()
	}

	canvas.Text(10, 20, sc.Title(), "fill:white;font-family:monospace;font-size:14px")
	if sc.Configuration != "-" {
		canvas.Text(10, height-10, sc.Configuration, "fill:gray;font-family:monospace;font-size:12px")
	}
	canvas.End()
	return nil
}

func round(f float64) int {
	return int(math.Round(f))
}

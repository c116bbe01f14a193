package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/vovakirdan/atomviz/internal/registry"
)

func init() {
	registry.Register("gif", func() registry.Exporter { return GIF{} })
}

// GIF writes one full rotation as a looping animation.
type GIF struct{}

func (GIF) ID() string        { return "gif" }
func (GIF) Title() string     { return "Animated GIF of one rotation" }
func (GIF) Extension() string { return ".gif" }

// Export renders job.Frames frames at job.FPS.
func (GIF) Export(w io.Writer, job registry.Job) error {
	width, height := imageSize(job)
	frames := job.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}
	fps := job.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	times := AnimationTimes(job.Motion, job.Params.Speed, frames)
	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(times)),
		Delay:     make([]int, 0, len(times)),
		LoopCount: 0, // Infinite loop.
	}

	for _, t := range times {
		job.Elapsed = t
		img := RenderImage(frame(job), width, height)
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.Draw(pal, pal.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, max(1, 100/fps)) // 10ms units
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: cannot encode GIF: %w", err)
	}
	return nil
}

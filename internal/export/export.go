// Package export renders atoms to files. Each format registers itself with
// the exporter registry in init().
package export

import (
	"math"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/registry"
	"github.com/vovakirdan/atomviz/internal/scene"
)

// Default output sizes.
const (
	DefaultImageSize  = 480
	DefaultTextWidth  = 80
	DefaultTextHeight = 24
	DefaultFrames     = 36
	DefaultFPS        = 12
)

// frame composes the single scene of a job.
func frame(job registry.Job) scene.Scene {
	return scene.Compose(job.Atom, job.Motion, job.Elapsed, job.Params)
}

// imageSize returns the job's pixel size with defaults applied.
func imageSize(job registry.Job) (int, int) {
	w, h := job.Width, job.Height
	if w <= 0 {
		w = DefaultImageSize
	}
	if h <= 0 {
		h = w
	}
	return w, h
}

// pixelView maps world coordinates onto a w x h image with y pointing up.
type pixelView struct {
	cx, cy, scale float64
}

func newPixelView(w, h int, extent float64) pixelView {
	return pixelView{
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		scale: math.Min(float64(w), float64(h)) / (2 * extent),
	}
}

func (v pixelView) point(p core.Vec2) (float64, float64) {
	return v.cx + p.X*v.scale, v.cy - p.Y*v.scale
}

func (v pixelView) length(l float64) float64 {
	return l * v.scale
}

// AnimationTimes returns the elapsed instants of an animated export: one
// full turn of the rotation split into frames. A stationary atom or a zero
// speed yields a single frame.
func AnimationTimes(mode atom.MotionMode, speed float64, frames int) []float64 {
	if mode == atom.Stationary || speed <= 0 || frames <= 1 {
		return []float64{0}
	}
	period := 2 * math.Pi / speed
	times := make([]float64, frames)
	for i := range times {
		times[i] = period * float64(i) / float64(frames)
	}
	return times
}

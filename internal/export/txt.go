package export

import (
	"fmt"
	"io"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/registry"
	"github.com/vovakirdan/atomviz/internal/scene"
)

func init() {
	registry.Register("txt", func() registry.Exporter { return Text{} })
}

// Text writes the terminal rendering of one frame as plain text.
type Text struct{}

func (Text) ID() string        { return "txt" }
func (Text) Title() string     { return "Plain text terminal frame" }
func (Text) Extension() string { return ".txt" }

// Export draws the frame into a Width x Height character grid.
func (Text) Export(w io.Writer, job registry.Job) error {
	cols, rows := job.Width, job.Height
	if cols <= 0 {
		cols = DefaultTextWidth
	}
	if rows <= 0 {
		rows = DefaultTextHeight
	}

	sc := frame(job)
	s := core.NewScreen(cols, rows)
	scene.Rasterize(sc, s, core.NewRect(0, 1, cols, rows-1))
	s.DrawText(0, 0, sc.Title())

	if _, err := fmt.Fprintln(w, s.String()); err != nil {
		return fmt.Errorf("export: cannot write text: %w", err)
	}
	return nil
}

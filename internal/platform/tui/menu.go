package tui

import (
	"strings"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/session"
)

// drawMenu draws the context menu as a box in the middle of the screen.
func drawMenu(s *core.Screen, menu session.Menu) {
	width := 0
	for _, it := range menu.Items {
		width = max(width, len(it.Label()))
	}
	width += 6 // borders, padding and cursor
	height := len(menu.Items) + 2

	x := (s.Width() - width) / 2
	y := (s.Height() - height) / 2
	box := core.NewRect(x, y, width, height)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	for i, it := range menu.Items {
		line := "  " + it.Label()
		c := core.ColorWhite
		if i == menu.Cursor {
			line = "> " + it.Label()
			c = core.ColorBrightYellow
		}
		s.DrawTextColor(x+2, y+1+i, line, c)
	}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

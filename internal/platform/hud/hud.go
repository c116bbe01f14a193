// Package hud holds the toolkit-independent parts of the desktop window:
// character mapping, menu geometry and entry parsing.
package hud

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/atomviz/internal/core"
)

// Menu geometry in pixels.
const (
	MenuWidth   = 200
	ItemHeight  = 22
	MenuPadding = 4
)

// CharEvent maps a typed character to a key event. Characters without a
// binding map to ActionNone.
func CharEvent(r rune) core.KeyEvent {
	if d, ok := core.ParseDigit(r); ok {
		return core.DigitEvent(d)
	}
	switch r {
	case 'a', 'A':
		return core.ActionEvent(core.ActionRestoreDefault)
	case 'm', 'M':
		return core.ActionEvent(core.ActionToggleMotion)
	case 'o', 'O':
		return core.ActionEvent(core.ActionToggleOrbits)
	case 'q', 'Q':
		return core.ActionEvent(core.ActionQuit)
	}
	return core.ActionEvent(core.ActionNone)
}

// LayoutMenu places a menu of n items with its top-left corner at (x, y),
// shifted so that it stays inside a screenW x screenH view. It returns the
// menu frame and one rectangle per item.
func LayoutMenu(n, x, y, screenW, screenH int) (core.Rect, []core.Rect) {
	h := n*ItemHeight + 2*MenuPadding
	x = core.Clamp(x, 0, max(screenW-MenuWidth, 0))
	y = core.Clamp(y, 0, max(screenH-h, 0))

	items := make([]core.Rect, n)
	for i := range items {
		items[i] = core.NewRect(x, y+MenuPadding+i*ItemHeight, MenuWidth, ItemHeight)
	}
	return core.NewRect(x, y, MenuWidth, h), items
}

// HitTest returns the index of the item containing (x, y), or -1.
func HitTest(items []core.Rect, x, y int) int {
	for i, r := range items {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// ParseEntry reads the atomic number typed into the entry dialog.
func ParseEntry(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("hud: empty atomic number")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("hud: %q is not a number", s)
	}
	return n, nil
}

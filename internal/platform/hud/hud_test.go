package hud

import (
	"testing"

	"github.com/vovakirdan/atomviz/internal/core"
)

func TestCharEvent(t *testing.T) {
	tests := []struct {
		r    rune
		want core.Action
	}{
		{'a', core.ActionRestoreDefault},
		{'A', core.ActionRestoreDefault},
		{'m', core.ActionToggleMotion},
		{'o', core.ActionToggleOrbits},
		{'q', core.ActionQuit},
		{'x', core.ActionNone},
	}
	for _, tt := range tests {
		if got := CharEvent(tt.r); got.Action != tt.want {
			t.Errorf("CharEvent(%q) = %s, expected %s", tt.r, got.Action, tt.want)
		}
	}

	if ev := CharEvent('7'); ev.Action != core.ActionDigit || ev.Digit != 7 {
		t.Errorf("CharEvent('7') = %+v", ev)
	}
}

func TestLayoutMenu(t *testing.T) {
	frame, items := LayoutMenu(4, 100, 50, 800, 600)

	if len(items) != 4 {
		t.Fatalf("got %d items", len(items))
	}
	if frame.X != 100 || frame.Y != 50 || frame.H != 4*ItemHeight+2*MenuPadding {
		t.Errorf("frame = %+v", frame)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Y != items[i-1].Bottom() {
			t.Errorf("item %d does not follow item %d", i, i-1)
		}
	}
}

func TestLayoutMenuStaysOnScreen(t *testing.T) {
	frame, _ := LayoutMenu(4, 790, 590, 800, 600)
	if frame.Right() > 800 || frame.Bottom() > 600 {
		t.Errorf("frame %+v leaves the 800x600 view", frame)
	}
}

func TestHitTest(t *testing.T) {
	_, items := LayoutMenu(3, 0, 0, 800, 600)

	if got := HitTest(items, 10, MenuPadding+ItemHeight+1); got != 1 {
		t.Errorf("HitTest() = %d, expected 1", got)
	}
	if got := HitTest(items, MenuWidth+5, MenuPadding+1); got != -1 {
		t.Errorf("HitTest() outside = %d, expected -1", got)
	}
}

func TestParseEntry(t *testing.T) {
	if n, err := ParseEntry(" 26 "); err != nil || n != 26 {
		t.Errorf("ParseEntry(26) = %d, %v", n, err)
	}
	if _, err := ParseEntry(""); err == nil {
		t.Error("empty entry should fail")
	}
	if _, err := ParseEntry("iron"); err == nil {
		t.Error("non-numeric entry should fail")
	}
}

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/scene"
	"github.com/vovakirdan/atomviz/internal/session"
)

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewModel(Options{
		Session:       session.DefaultOptions(),
		Params:        scene.DefaultParams(),
		Clock:         clock,
		Config:        core.DefaultConfig(),
		ScreenshotDir: t.TempDir(),
	})
	return m, clock
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelTypesAtomicNumber(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runeKey('1'), runeKey('1'))

	if got := m.Driver().State().Atom.Name; got != "Sodium" {
		t.Errorf("atom = %q, expected Sodium", got)
	}

	view := m.View()
	if !strings.Contains(view, "Sodium (Na) Z=11") {
		t.Error("view should show the element title")
	}
	if !strings.Contains(view, "input 11") {
		t.Error("view should show the pending number")
	}
}

func TestModelTickSettlesInput(t *testing.T) {
	m, clock := newTestModel(t)
	m = send(m, runeKey('7'))

	clock.Advance(2 * time.Second)
	m = send(m, TickMsg(clock.Now()))

	if m.Driver().State().Acc.Accumulating {
		t.Error("tick after the window should settle the input")
	}
	if strings.Contains(m.View(), "input 7") {
		t.Error("settled input should leave the status line")
	}
}

func TestModelMenuOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})

	view := m.View()
	for _, label := range []string{"Toggle motion", "Toggle orbit lines", "Exit"} {
		if !strings.Contains(view, label) {
			t.Errorf("menu should list %q", label)
		}
	}
	if strings.Contains(view, "Enter atomic number") {
		t.Error("the terminal menu has no entry dialog")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Driver().State().Motion != atom.Stationary {
		t.Error("first item should toggle motion")
	}
	if strings.Contains(m.View(), "Toggle orbit lines") {
		t.Error("menu should close after selecting")
	}
}

func TestModelRightClickOpensMenu(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	if !m.Driver().State().Menu.Open {
		t.Error("right click should open the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runeKey('8'), tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "oxygen_") {
		t.Fatalf("screenshots = %v, expected one oxygen_*.txt", entries)
	}
	if !strings.Contains(m.View(), "saved oxygen_") {
		t.Error("status line should report the screenshot")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q lost text", out)
	}
}

func TestDefaultScreenshotDirWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	dir := defaultScreenshotDir()
	if !strings.HasPrefix(dir, os.TempDir()) {
		t.Errorf("defaultScreenshotDir() = %q, expected a path under %q", dir, os.TempDir())
	}
}

func TestDefaultScreenshotDirUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".atomviz", "screenshots")
	if got := defaultScreenshotDir(); got != want {
		t.Errorf("defaultScreenshotDir() = %q, expected %q", got, want)
	}
}

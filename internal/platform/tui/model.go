package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/scene"
	"github.com/vovakirdan/atomviz/internal/session"
)

// Options configure the terminal view.
type Options struct {
	Session  session.Options
	Params   scene.Params
	Recorder session.Recorder
	Chime    session.Chimer
	Logger   *log.Logger
	Clock    core.Clock
	Config   core.RuntimeConfig
	// ScreenshotDir defaults to ~/.atomviz/screenshots.
	ScreenshotDir string
	// DisableScreenshots unbinds Ctrl+S, for viewers that do not own the
	// machine the model runs on.
	DisableScreenshots bool
}

// Model is the Bubble Tea model for the atom view.
type Model struct {
	driver        *session.Driver
	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	keys          KeyMap
	help          help.Model
	screenshotDir string
	screenshots   bool
	notice        string // last screenshot result
	logger        *log.Logger
	quitting      bool
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	driverOpts := []session.DriverOption{session.WithLogger(logger)}
	if opts.Clock != nil {
		driverOpts = append(driverOpts, session.WithClock(opts.Clock))
	}
	if opts.Recorder != nil {
		driverOpts = append(driverOpts, session.WithRecorder(opts.Recorder))
	}
	if opts.Chime != nil {
		driverOpts = append(driverOpts, session.WithChime(opts.Chime))
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = defaultScreenshotDir()
	}

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(!opts.DisableScreenshots)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		driver:        session.NewDriver(opts.Session, opts.Params, driverOpts...),
		screen:        core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:        cfg,
		keyMapper:     NewKeyMapper(keys),
		keys:          keys,
		help:          h,
		screenshotDir: dir,
		screenshots:   !opts.DisableScreenshots,
		logger:        logger,
	}
}

// defaultScreenshotDir is ~/.atomviz/screenshots, or the temp directory
// when there is no home.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "atomviz-screenshots")
	}
	return filepath.Join(home, ".atomviz", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleEvent(m.keyMapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleEvent(m.keyMapper.MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleEvent feeds one key event to the session.
func (m Model) handleEvent(ev core.KeyEvent) (tea.Model, tea.Cmd) {
	if ev.Action == core.ActionNone {
		return m, nil
	}

	eff := m.driver.Key(ev)
	if eff.Screenshot && m.screenshots {
		m.notice = m.saveScreenshot()
	}

	st := m.driver.State()
	m.help.ShowAll = st.ShowHelp
	if st.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick settles pending input and schedules the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.driver.Tick()
	return m, tickCmd(m.config.TickRate)
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	st := m.driver.State()
	sc := m.driver.Scene()
	s := m.screen
	s.Clear()

	titleColor := core.ColorBrightWhite
	if sc.Err {
		titleColor = core.ColorBrightRed
	}
	s.DrawTextColor(1, 0, sc.Title(), titleColor)
	if sc.Configuration != "-" {
		cfgText := "shells " + sc.Configuration
		s.DrawTextColor(s.Width()-len(cfgText)-1, 0, cfgText, core.ColorGray)
	}

	scene.Rasterize(sc, s, core.NewRect(0, 1, s.Width(), s.Height()-2))
	s.DrawTextColor(1, s.Height()-1, m.statusLine(st), core.ColorGray)

	if st.Menu.Open {
		drawMenu(s, st.Menu)
	}
}

// statusLine describes motion, rings and the number being typed.
func (m Model) statusLine(st session.State) string {
	parts := []string{
		st.Motion.String(),
		"orbits " + onOff(st.ShowOrbits),
	}

	now := m.driver.Now()
	if n, ok := st.Pending(now); ok {
		left := st.Acc.Remaining(now, st.Options().Input)
		parts = append(parts, fmt.Sprintf("input %d (%.1fs)", n, left.Seconds()))
	}
	if st.LastErr != nil {
		parts = append(parts, st.LastErr.Error())
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return strings.Join(parts, " | ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// saveScreenshot writes the current frame to a text file and returns a
// short notice for the status line.
func (m Model) saveScreenshot() string {
	m.draw()

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return "screenshot failed"
	}

	name := strings.ToLower(m.driver.State().Atom.Name)
	name = strings.ReplaceAll(name, " ", "_")
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Driver exposes the session driver, mainly for tests.
func (m Model) Driver() *session.Driver {
	return m.driver
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Right click opens the menu
	)

	_, err := p.Run()
	return err
}

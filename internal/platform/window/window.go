// Package window is the desktop frontend of the atom viewer, drawn with
// Ebitengine. The native entry dialog comes from zenity.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/platform/hud"
	"github.com/vovakirdan/atomviz/internal/scene"
	"github.com/vovakirdan/atomviz/internal/session"
)

// Default window geometry.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "2D Atom Simulator"
)

var (
	background = color.RGBA{A: 255}
	menuFill   = color.RGBA{R: 30, G: 30, B: 40, A: 235}
	menuBorder = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	menuHover  = color.RGBA{R: 60, G: 60, B: 110, A: 255}
	textColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	errorColor = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	dimColor   = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

// uiFace is the bitmap font of every label.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawLabel draws s with its baseline at (x, y).
func drawLabel(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-uiFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

// Options configure the window.
type Options struct {
	Session  session.Options
	Params   scene.Params
	Recorder session.Recorder
	Chime    session.Chimer
	Logger   *log.Logger
	Width    int
	Height   int
	Title    string
}

// entryResult is what the dialog goroutine hands back to Update.
type entryResult struct {
	n   int
	err error
}

// Game implements ebiten.Game for one atom session.
type Game struct {
	driver *session.Driver
	logger *log.Logger
	width  int
	height int

	chars   []rune
	entryCh chan entryResult
	waiting bool // dialog open

	menuX, menuY int
	hover        int
}

// NewGame creates the window state. The entry dialog is always offered.
func NewGame(opts Options) *Game {
	opts.Session.AllowEntry = true
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	driverOpts := []session.DriverOption{session.WithLogger(opts.Logger)}
	if opts.Recorder != nil {
		driverOpts = append(driverOpts, session.WithRecorder(opts.Recorder))
	}
	if opts.Chime != nil {
		driverOpts = append(driverOpts, session.WithChime(opts.Chime))
	}

	return &Game{
		driver:  session.NewDriver(opts.Session, opts.Params, driverOpts...),
		logger:  opts.Logger,
		width:   max(opts.Width, 1),
		height:  max(opts.Height, 1),
		entryCh: make(chan entryResult, 1),
		hover:   -1,
	}
}

// Update advances the session by one frame.
func (g *Game) Update() error {
	g.collectEntry()

	for _, ev := range g.events() {
		g.handle(g.driver.Key(ev))
	}
	g.handleMouse()
	g.driver.Tick()

	if g.driver.State().Quit {
		return ebiten.Termination
	}
	return nil
}

// events gathers this frame's key events: typed characters first, then
// special keys.
func (g *Game) events() []core.KeyEvent {
	var evs []core.KeyEvent

	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if ev := hud.CharEvent(r); ev.Action != core.ActionNone {
			evs = append(evs, ev)
		}
	}

	special := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyEscape, core.ActionResetInput},
		{ebiten.KeyTab, core.ActionMenu},
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyEnter, core.ActionConfirm},
	}
	for _, s := range special {
		if inpututil.IsKeyJustPressed(s.key) {
			if s.action == core.ActionMenu {
				g.menuX, g.menuY = g.width/2-hud.MenuWidth/2, g.height/3
			}
			evs = append(evs, core.ActionEvent(s.action))
		}
	}
	return evs
}

// handleMouse opens the menu on right click and selects items on left click.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	st := g.driver.State()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !st.Menu.Open {
		g.menuX, g.menuY = x, y
		g.driver.Key(core.ActionEvent(core.ActionMenu))
		return
	}
	if !st.Menu.Open {
		g.hover = -1
		return
	}

	_, items := hud.LayoutMenu(len(st.Menu.Items), g.menuX, g.menuY, g.width, g.height)
	g.hover = hud.HitTest(items, x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.hover < 0 {
			g.driver.Key(core.ActionEvent(core.ActionBack))
			return
		}
		g.handle(g.driver.Select(st.Menu.Items[g.hover]))
	}
}

// handle performs the window-side part of an effect.
func (g *Game) handle(eff session.Effect) {
	if eff.OpenEntry && !g.waiting {
		g.waiting = true
		go g.askNumber()
	}
}

// askNumber runs the native dialog off the game loop.
func (g *Game) askNumber() {
	s, err := zenity.Entry("Atomic number (1-118):",
		zenity.Title(DefaultTitle),
		zenity.EntryText(""),
	)
	if err != nil {
		g.entryCh <- entryResult{err: err}
		return
	}
	n, err := hud.ParseEntry(s)
	g.entryCh <- entryResult{n: n, err: err}
}

// collectEntry applies a finished dialog, if any.
func (g *Game) collectEntry() {
	select {
	case res := <-g.entryCh:
		g.waiting = false
		switch {
		case errors.Is(res.err, zenity.ErrCanceled):
		case res.err != nil:
			g.logger.Warn("entry dialog", "error", res.err)
		default:
			g.driver.Enter(res.n)
		}
	default:
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	sc := g.driver.Scene()
	st := g.driver.State()

	cx, cy := float32(g.width)/2, float32(g.height)/2
	scale := float32(math.Min(float64(g.width), float64(g.height)) / (2 * sc.Extent))
	project := func(p core.Vec2) (float32, float32) {
		return cx + float32(p.X)*scale, cy - float32(p.Y)*scale
	}

	for _, r := range sc.Orbits {
		vector.StrokeCircle(screen, cx, cy, float32(r)*scale, 1, sc.OrbitColor, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, max(2, float32(sc.NucleusRadius)*scale), sc.NucleusColor, true)

	er := max(2, float32(sc.ElectronRadius)*scale)
	for _, sh := range sc.Shells {
		for _, e := range sh.Electrons {
			x, y := project(e)
			vector.DrawFilledCircle(screen, x, y, er, sh.Color, true)
		}
	}

	titleColor := textColor
	if sc.Err {
		titleColor = errorColor
	}
	drawLabel(screen, sc.Title(), 10, 20, titleColor)
	if sc.Configuration != "-" {
		drawLabel(screen, "shells "+sc.Configuration, 10, 38, dimColor)
	}
	drawLabel(screen, g.statusLine(st), 10, g.height-12, dimColor)

	if st.Menu.Open {
		g.drawMenu(screen, st.Menu)
	}
}

// statusLine mirrors the terminal status bar.
func (g *Game) statusLine(st session.State) string {
	parts := []string{st.Motion.String()}
	now := g.driver.Now()
	if n, ok := st.Pending(now); ok {
		left := st.Acc.Remaining(now, st.Options().Input)
		parts = append(parts, fmt.Sprintf("input %d (%.1fs)", n, left.Seconds()))
	}
	if st.LastErr != nil {
		parts = append(parts, st.LastErr.Error())
	}
	if g.waiting {
		parts = append(parts, "waiting for dialog")
	}
	parts = append(parts, "right click: menu")
	return strings.Join(parts, " | ")
}

func (g *Game) drawMenu(screen *ebiten.Image, menu session.Menu) {
	frame, items := hud.LayoutMenu(len(menu.Items), g.menuX, g.menuY, g.width, g.height)
	vector.DrawFilledRect(screen, float32(frame.X), float32(frame.Y), float32(frame.W), float32(frame.H), menuFill, false)
	vector.StrokeRect(screen, float32(frame.X), float32(frame.Y), float32(frame.W), float32(frame.H), 1, menuBorder, false)

	for i, r := range items {
		if i == g.hover || (g.hover < 0 && i == menu.Cursor) {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), menuHover, false)
		}
		drawLabel(screen, menu.Items[i].Label(), r.X+10, r.Y+15, textColor)
	}
}

// Layout tracks the window size so the atom stays centred after a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/platform/tui"
)

var viewFlags viewerFlags

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the atom in the terminal",
	Long: `Draw the atom in the terminal and switch elements by typing.

Controls:
  0-9         - Type an atomic number (digits within 2s form one number)
  Esc         - Discard the number being typed
  A           - Back to Hydrogen
  M           - Toggle rotation
  O           - Toggle orbit rings
  Tab / right click - Menu
  Ctrl+S      - Save a text screenshot
  ?           - Help
  Q/Ctrl+C    - Quit

Examples:
  atomviz view
  atomviz view --element Na
  atomviz view --element 26 --motion stationary
  atomviz view --policy reject --speed slow`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewFlags.register(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	setup, err := viewFlags.resolve()
	if err != nil {
		return err
	}

	// Log to a file; stderr belongs to the alternate screen
	f, err := logFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger, err := newLogger(f, "atomviz")
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	chime := startChime(setup.cfg, logger)
	if chime != nil {
		defer chime.Close()
	}

	logger.Info("terminal view", "element", setup.session.DefaultElement, "motion", setup.session.Motion)
	return tui.Run(tui.Options{
		Session:  setup.session,
		Params:   setup.params,
		Recorder: recorder(store),
		Chime:    chimer(chime),
		Logger:   logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	})
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/platform/window"
)

var (
	windowFlags  viewerFlags
	windowWidth  int
	windowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the atom in a desktop window",
	Long: `Open an 800x600 window titled "2D Atom Simulator".

Controls are those of the terminal view. Right click opens the menu, which
also offers a dialog to type an atomic number directly.

Examples:
  atomviz window
  atomviz window --sound
  atomviz window --element Au --width 1024 --height 768`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowFlags.register(windowCmd)
	windowCmd.Flags().IntVar(&windowWidth, "width", window.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&windowHeight, "height", window.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) error {
	setup, err := windowFlags.resolve()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "atomviz")
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	chime := startChime(setup.cfg, logger)
	if chime != nil {
		defer chime.Close()
	}

	return window.Run(window.Options{
		Session:  setup.session,
		Params:   setup.params,
		Recorder: recorder(store),
		Chime:    chimer(chime),
		Logger:   logger,
		Width:    windowWidth,
		Height:   windowHeight,
	})
}

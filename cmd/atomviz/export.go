package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/registry"

	// Import exporters to register them
	_ "github.com/vovakirdan/atomviz/internal/export"
)

var (
	flagFormat    string
	flagOutput    string
	flagWidth     int
	flagHeight    int
	flagFrames    int
	flagMotion    string
	flagSpeed     string
	flagElapsed   float64
	flagExportFPS int
)

var exportCmd = &cobra.Command{
	Use:   "export <element>",
	Short: "Render an element to a file",
	Long: `Render an element as SVG, an animated GIF of one full rotation,
or the text frame the terminal view would draw.

Without -o the file is named after the element, e.g. sodium.svg.
Use -o - to write to standard output.

Examples:
  atomviz export Na
  atomviz export 26 --format gif -o iron.gif
  atomviz export gold --format txt --width 100 --height 40 -o -`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "svg", "Output format: "+formatList())
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (- for stdout)")
	exportCmd.Flags().IntVar(&flagWidth, "width", 0, "Width in pixels, or columns for txt")
	exportCmd.Flags().IntVar(&flagHeight, "height", 0, "Height in pixels, or rows for txt")
	exportCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames per rotation (gif)")
	exportCmd.Flags().IntVar(&flagExportFPS, "gif-fps", 0, "Playback rate of the gif")
	exportCmd.Flags().StringVar(&flagMotion, "motion", "", "Electron motion: rotating or stationary")
	exportCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: frozen, slow, normal, fast")
	exportCmd.Flags().Float64Var(&flagElapsed, "at", 0, "Instant of a still frame, in seconds")
}

// formatList returns the registered format ids, e.g. "gif, svg, txt".
func formatList() string {
	var ids []string
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	return strings.Join(ids, ", ")
}

func runExport(_ *cobra.Command, args []string) error {
	e, err := atom.Find(args[0])
	if err != nil {
		return err
	}

	// Check if format exists
	if !registry.Exists(flagFormat) {
		return fmt.Errorf("unknown format %q (available: %s)", flagFormat, formatList())
	}
	exporter, err := registry.Create(flagFormat)
	if err != nil {
		return err
	}

	flags := viewerFlags{motion: flagMotion, speed: flagSpeed}
	setup, err := flags.resolve()
	if err != nil {
		return err
	}

	job := registry.Job{
		Atom:    atom.FromNumber(e.Number),
		Motion:  setup.session.Motion,
		Params:  setup.params,
		Width:   flagWidth,
		Height:  flagHeight,
		Elapsed: flagElapsed,
		Frames:  flagFrames,
		FPS:     flagExportFPS,
	}

	path := flagOutput
	if path == "" {
		path = strings.ToLower(e.Name) + exporter.Extension()
	}
	if path == "-" {
		return exporter.Export(os.Stdout, job)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := exporter.Export(f, job); err != nil {
		f.Close()
		return fmt.Errorf("exporting %s: %w", exporter.Title(), err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%s)\n", path, exporter.Title())
	return nil
}

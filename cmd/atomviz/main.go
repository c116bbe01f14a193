// atomviz draws a 2D Bohr-style model of a chemical element: the nucleus,
// its electron shells and the electrons orbiting on them.
//
// Usage:
//
//	atomviz view             - Terminal view
//	atomviz window           - Desktop window
//	atomviz serve            - SSH server with the terminal view
//	atomviz elements         - List the element catalogue
//	atomviz shells <element> - Show the shell occupancy of an element
//	atomviz history          - Show selection history
//	atomviz export <element> - Write an SVG, GIF or text rendering
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.atomviz/history.db)
//	--config <path>      - Use a custom atom.yaml
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "atomviz",
	Short: "atomviz - 2D atom model viewer",
	Long: `atomviz shows a chemical element as a nucleus with electrons
orbiting on concentric shells. Type an atomic number to switch elements:
digits typed within two seconds of each other form one number.

Available commands:
  view      - Terminal view
  window    - Desktop window
  serve     - SSH server for remote viewers
  elements  - Element catalogue
  shells    - Shell occupancy of one element
  history   - Recently and most viewed elements
  export    - Render an element to SVG, GIF or text

Examples:
  atomviz view
  atomviz view --element Na --motion stationary
  atomviz window --sound
  atomviz serve --ssh :2222
  atomviz export Fe --format gif -o iron.gif`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom atom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(shellsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger, nil
}

// logFile opens ~/.atomviz/atomviz.log for appending. The terminal view
// logs there so that log lines do not tear the alternate screen.
func logFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".atomviz")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "atomviz.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// openStore opens the history database. A failure is reported and the
// caller continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("history disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// dash renders an empty string as "-" in tables.
func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/platform/tui"
	"github.com/vovakirdan/atomviz/internal/session"
)

var (
	serveFlags      viewerFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the atomviz SSH server",
	Long: `Start an SSH server that shows the terminal view to every connection.

Each SSH connection gets its own viewer. Selections from all connections
go to the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.atomviz/host_key

Examples:
  atomviz serve                           # Listen on :23235 with auto-generated key
  atomviz serve --ssh :2222               # Listen on port 2222
  atomviz serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	setup, err := serveFlags.resolve()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "atomviz-ssh")
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = min(flagFPS, cfg.TickRate)
	cfg.Session = setup.session
	cfg.Session.Source = session.SourceSSH
	cfg.Params = setup.params

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	return server.ListenAndServe(context.Background())
}

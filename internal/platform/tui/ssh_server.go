package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/atomviz/internal/core"
	"github.com/vovakirdan/atomviz/internal/scene"
	"github.com/vovakirdan/atomviz/internal/session"
	"github.com/vovakirdan/atomviz/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.atomviz/host_key.
	HostKeyPath string

	// DBPath is the history database shared by all connections.
	// Empty disables history.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate of every remote view.
	TickRate int

	// Session and Params configure each remote viewer.
	Session session.Options
	Params  scene.Params
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	opts := session.DefaultOptions()
	opts.Source = session.SourceSSH
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		Session:     opts,
		Params:      scene.DefaultParams(),
	}
}

// SSHServer serves one independent atom view per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer prepares the server. A history database that cannot be
// opened is logged and the server runs without history.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "atomviz-ssh",
		})
	}

	hostKey, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if cfg.DBPath != "" {
		if srv.store, err = storage.Open(cfg.DBPath); err != nil {
			logger.Warn("history disabled", "db", cfg.DBPath, "error", err)
		}
	}

	// Middlewares run last to first: count, log, require a PTY, then serve.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
			srv.countMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("ssh: create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey returns the host key location, defaulting to
// ~/.atomviz/host_key, and makes sure its directory exists. Wish generates
// the key on first start.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: home directory: %w", err)
		}
		path = filepath.Join(home, ".atomviz", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates the viewer of one connection. activeterm guarantees
// a PTY.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	return NewModel(s.viewerOptions(sshSession.User(), pty.Window.Width, pty.Window.Height)), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// viewerOptions configures the model of one remote viewer.
func (s *SSHServer) viewerOptions(user string, width, height int) Options {
	opts := Options{
		Session: s.config.Session,
		Params:  s.config.Params,
		Logger:  s.logger.With("user", user),
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.config.TickRate,
		},
		// Remote users cannot reach the server's filesystem
		DisableScreenshots: true,
	}
	if s.store != nil {
		opts.Recorder = s.store
	}
	return opts
}

// countMiddleware tracks how many viewers are connected.
func (s *SSHServer) countMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.active.Add(1)
		s.logger.Debug("viewer connected", "user", sshSession.User(), "viewers", n)
		defer func() {
			n := s.active.Add(-1)
			s.logger.Debug("viewer left", "user", sshSession.User(), "viewers", n)
		}()
		next(sshSession)
	}
}

// Active returns the number of connected viewers.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// ListenAndServe serves until ctx is cancelled or the process receives
// SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address, "history", s.store != nil)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		return fmt.Errorf("ssh: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "viewers", s.Active())
	return s.Shutdown()
}

// Shutdown waits up to ten seconds for viewers to leave, then closes the
// history database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		//nolint:errcheck // Best-effort close on shutdown
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

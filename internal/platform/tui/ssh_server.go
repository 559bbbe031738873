package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	defaultHostKey  = "~/.flappy/host_key"
	shutdownTimeout = 10 * time.Second
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, e.g. ":23234"
	HostKeyPath string        // generated on first start; defaults to ~/.flappy/host_key
	IdleTimeout time.Duration // idle sessions are disconnected after this
	TickRate    int           // frames per second for every session
}

// DefaultSSHServerConfig returns the defaults used by `flappy serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		HostKeyPath: defaultHostKey,
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the game over SSH. Every connection runs its own session
// model, and so its own Machine; only the store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	base   Env
	logger *log.Logger
	active atomic.Int64
}

// NewSSHServer creates a server whose sessions start from a copy of base.
// Play counts, achievements, skin and difficulty are kept per SSH user; the
// high score tables are shared.
func NewSSHServer(cfg SSHServerConfig, base Env) (*SSHServer, error) {
	s := &SSHServer{
		config: cfg,
		base:   base,
		logger: base.log().WithPrefix("flappy-ssh"),
	}
	// Screenshots would land on the server's disk.
	s.base.ScreenshotDir = ""

	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	// Middlewares run last to first: logging wraps the PTY check, which
	// wraps the game.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.startSession),
			activeterm.Middleware(),
			s.trackSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	return s, nil
}

// hostKeyPath expands path (or the default) and makes sure its directory
// exists; wish generates the key itself when the file is missing.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		path = defaultHostKey
	}
	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("ssh: host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return expanded, nil
}

// startSession builds the per-connection environment and session model.
func (s *SSHServer) startSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	env := s.base
	env.Player = sess.User()
	env.Painter = NewPainter(bubbletea.MakeRenderer(sess))
	env.Logger = s.logger.With("user", sess.User())
	env.LoadPreferences()

	return NewSessionModel(&env, rt), []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSession logs connection lifetimes and the number of live sessions.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		l := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())

		l.Info("session started", "active", s.active.Add(1))
		defer func() {
			l.Info("session ended",
				"active", s.active.Add(-1),
				"duration", time.Since(start).Round(time.Second),
			)
		}()
		next(sess)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("server error", "error", err)
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits for sessions to close.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

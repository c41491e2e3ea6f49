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
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/registry"
	"github.com/vovakirdan/prism-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// GameID is the registered game every session plays.
	GameID string

	// TickRate is the simulation rate for every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		GameID:      "prism",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// sessionIDKey stores the session's UUID in the ssh.Context.
type sessionIDKey struct{}

// SSHServer wraps a Wish SSH server that hosts one game per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int64 // Sessions currently connected
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("%w %q", registry.ErrUnknownGame, cfg.GameID)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "prism-ssh",
		})
	}

	// Scores are optional; sessions still play without them
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	sessionLog := s.logger.With("user", sshSession.User(), "session", sessionID(sshSession.Context()))
	model := NewModel(game, s.store, cfg, WithLogger(sessionLog))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware tags each session with an ID and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, id)

		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		defer func() {
			s.logger.Info("session ended",
				"session", id,
				"user", sshSession.User(),
				"duration", time.Since(start).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sshSession)
	}
}

// sessionID returns the ID loggingMiddleware assigned, or "" outside a session.
func sessionID(ctx ssh.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...", "active", s.active.Load())
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		_ = s.Shutdown()
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

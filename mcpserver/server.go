package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/server"
)

// Server manages the lifecycle of an MCP server on a stdio-style stream pair.
type Server struct {
	config Config
	mcp    *server.MCPServer
	stdio  *server.StdioServer
	logger *slog.Logger
	onExit func(err error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewServer creates a Server exposing the active-file tool backed by source.
// It sets config defaults and validates the config.
// The onExit callback, if non-nil, is called when the stream ends on its own: with nil when the
// client closes its input, with the error when serving fails. It is not called after Stop.
func NewServer(cfg Config, source ActiveFileSource, logger *slog.Logger, onExit func(err error)) (*Server, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	if logger == nil {
		logger = slog.Default()
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	serverOpts := []server.ServerOption{
		server.WithToolCapabilities(false),
	}

	if cfg.Instructions != "" {
		serverOpts = append(serverOpts, server.WithInstructions(cfg.Instructions))
	}

	mcpServer := server.NewMCPServer(cfg.Name, cfg.Version, serverOpts...)
	mcpServer.AddTool(activeFileTool(), Chain(activeFileHandler(source), Logging(logger), Recovery(logger)))

	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	return &Server{
		config: cfg,
		mcp:    mcpServer,
		stdio:  stdio,
		logger: logger,
		onExit: onExit,
	}, nil
}

// Start begins serving in a background goroutine. The serving context is detached from ctx's
// cancellation so a start deadline does not end the session.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return fmt.Errorf("%w: server %q already started", ErrServeFailed, s.config.Name)
	}

	serveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done

	s.logger.Info("starting MCP server", "name", s.config.Name, "version", s.config.Version)

	go func() {
		defer close(done)

		serveErr := s.stdio.Listen(serveCtx, s.config.In, s.config.Out)
		if serveCtx.Err() != nil {
			return
		}

		if serveErr != nil {
			s.logger.Error("MCP server error", "name", s.config.Name, "error", serveErr)
		} else {
			s.logger.Info("MCP client closed the stream", "name", s.config.Name)
		}

		if s.onExit != nil {
			s.onExit(serveErr)
		}
	}()

	return nil
}

// Stop ends the session and waits for the serving goroutine until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	s.logger.Info("stopping MCP server", "name", s.config.Name)

	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Error("shutdown failed", "name", s.config.Name, "error", ctx.Err())

		return fmt.Errorf("%w: %w", ErrShutdownFailed, ctx.Err())
	}
}

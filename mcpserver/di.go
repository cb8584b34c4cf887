package mcpserver

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that serves the active-file tool for the lifetime of the app.
// It depends on an ActiveFileSource and *slog.Logger in the container. When the client closes
// the stream the app is shut down; a serving error shuts it down with exit code 1.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	return fx.Module("mcpserver",
		fx.Invoke(func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, source ActiveFileSource, logger *slog.Logger) error {
			logger = logger.With(slog.String("component", "mcpserver"))

			srv, err := NewServer(cfg, source, logger, func(serveErr error) {
				var shutdownOpts []fx.ShutdownOption
				if serveErr != nil {
					shutdownOpts = append(shutdownOpts, fx.ExitCode(1))
				}

				shutdownErr := shutdowner.Shutdown(shutdownOpts...)
				if shutdownErr != nil {
					logger.Error("failed to trigger shutdown", "error", shutdownErr)
				}
			})
			if err != nil {
				return err
			}

			lifecycle.Append(fx.Hook{
				OnStart: srv.Start,
				OnStop:  srv.Stop,
			})

			return nil
		}),
	)
}

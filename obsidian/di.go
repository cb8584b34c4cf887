package obsidian

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a *Client.
// It depends on *Config (e.g., from config.Provider) and *slog.Logger from the container.
// Options passed here are applied after the container logger, so WithLogger overrides it.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("obsidian",
		fx.Provide(func(cfg *Config, logger *slog.Logger) (*Client, error) {
			clientOpts := append([]Option{WithLogger(logger.With(slog.String("component", "obsidian")))}, opts...)

			return NewClient(*cfg, clientOpts...)
		}),
	)
}

package activenote

import (
	"io"

	"github.com/0xalexb/activenote/config"
	"github.com/0xalexb/activenote/mcpserver"
	"github.com/0xalexb/activenote/obsidian"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfig adds a config module that parses *obsidian.Config from the "obsidian"
// section of the document returned by fetcher.
func WithConfig(fetcher config.DataFetcher, parser config.Parser) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("config",
			fx.Provide(
				func() config.DataFetcher { return fetcher },
				func() config.Parser { return parser },
				config.Provider(new(obsidian.Config), ObsidianConfigPath),
			),
		))
	}
}

// WithObsidianClient adds the Obsidian client module and exposes the client
// as the active file source of the MCP server.
func WithObsidianClient(clientOpts ...obsidian.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules,
			obsidian.NewModule(clientOpts...),
			fx.Provide(func(client *obsidian.Client) mcpserver.ActiveFileSource { return client }),
		)
	}
}

// WithMCPServer adds the MCP stdio server module. The server reports Version
// unless serverOpts set another one.
func WithMCPServer(serverOpts ...mcpserver.Option) Option {
	return func(opts *Options) {
		all := append([]mcpserver.Option{mcpserver.WithVersion(Version)}, serverOpts...)
		opts.Modules = append(opts.Modules, mcpserver.NewModule(all...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects logs. Defaults to os.Stderr; stdout belongs to the MCP transport.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

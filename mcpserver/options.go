package mcpserver

import "io"

// Option defines a function type for configuring the MCP server.
type Option func(*Config)

// WithName sets the server name reported during initialization.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithVersion sets the server version reported during initialization.
func WithVersion(version string) Option {
	return func(cfg *Config) {
		cfg.Version = version
	}
}

// WithInstructions sets the instructions returned to clients on initialize.
func WithInstructions(instructions string) Option {
	return func(cfg *Config) {
		cfg.Instructions = instructions
	}
}

// WithIO replaces stdin and stdout as the transport streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(cfg *Config) {
		cfg.In = in
		cfg.Out = out
	}
}

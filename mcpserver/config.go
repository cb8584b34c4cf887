// Package mcpserver serves the active-file tool over the MCP stdio transport as an Fx module.
package mcpserver

import (
	"errors"
	"io"
	"os"
)

const (
	// DefaultName is the server name reported to MCP clients.
	DefaultName = "activenote"

	// DefaultVersion is reported when no version is configured.
	// The application module passes its build version through WithVersion.
	DefaultVersion = "dev"
)

// ErrEmptyName is returned when the server name is empty.
var ErrEmptyName = errors.New("server name must not be empty")

// ErrEmptyVersion is returned when the server version is empty.
var ErrEmptyVersion = errors.New("server version must not be empty")

// ErrNilSource is returned when no ActiveFileSource is provided.
var ErrNilSource = errors.New("active file source must not be nil")

// ErrServeFailed is returned when the stdio transport cannot be started.
var ErrServeFailed = errors.New("failed to serve")

// ErrShutdownFailed is returned when the server does not stop before the context expires.
var ErrShutdownFailed = errors.New("shutdown failed")

// Config holds the configuration for the MCP server.
type Config struct {
	Name         string    `yaml:"name"`
	Version      string    `yaml:"version"`
	Instructions string    `yaml:"instructions"`
	In           io.Reader `yaml:"-"`
	Out          io.Writer `yaml:"-"`
}

// SetDefaults sets default values for the Config. Streams default to the process stdin and stdout.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}

	if c.Version == "" {
		c.Version = DefaultVersion
	}

	if c.In == nil {
		c.In = os.Stdin
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}

	if c.Version == "" {
		return ErrEmptyVersion
	}

	return nil
}

// Package logging builds the process slog.Logger. Output goes to stderr in the binary because stdout carries the MCP stream.
package logging

package logging

import (
	"io"
	"log/slog"
	"strings"
)

const (
	// FormatJSON writes one JSON object per record. It is the default.
	FormatJSON = "json"
	// FormatText writes logfmt-style key=value records.
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config and defaults to INFO if invalid or empty.
// The format defaults to JSON unless it is "text".
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ParseLevel maps debug, info, warn/warning and error (any case) to a slog.Level; anything else is INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

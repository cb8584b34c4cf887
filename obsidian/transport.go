package obsidian

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport is an http.RoundTripper that logs every round trip to the API.
// The request headers, and with them the API key, are never logged.
type LoggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport wraps next. A nil next uses http.DefaultTransport, a nil logger slog.Default().
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LoggingTransport{next: next, logger: logger}
}

// RoundTrip logs method, path, status and duration.
// Level is Debug for 2xx/3xx, Warn for 4xx, Error for 5xx and transport failures.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	attrs := []any{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Duration("duration", time.Since(start)),
	}

	ctx := req.Context()
	msg := "obsidian request"

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		t.logger.ErrorContext(ctx, msg, attrs...)

		return nil, err //nolint:wrapcheck // RoundTripper must pass transport errors through
	}

	attrs = append(attrs, slog.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		t.logger.ErrorContext(ctx, msg, attrs...)
	case resp.StatusCode >= http.StatusBadRequest:
		t.logger.WarnContext(ctx, msg, attrs...)
	default:
		t.logger.DebugContext(ctx, msg, attrs...)
	}

	return resp, nil
}

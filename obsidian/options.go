package obsidian

import (
	"log/slog"
	"net/http"
)

// Doer sends an HTTP request and returns its response. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option defines a function type for configuring a Client.
type Option func(*clientOptions)

type clientOptions struct {
	doer   Doer
	logger *slog.Logger
}

// WithDoer replaces the transport used to reach the API.
func WithDoer(doer Doer) Option {
	return func(opts *clientOptions) {
		opts.doer = doer
	}
}

// WithLogger sets the logger used by the Client and its default transport.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

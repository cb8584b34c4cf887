package obsidian

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	activePath = "/active/"

	// maxErrorBodyBytes caps how much of a failed response is copied into the error message.
	maxErrorBodyBytes = 1 << 20
)

const (
	acceptNoteJSON = "application/vnd.olrapi.note+json"
	acceptMarkdown = "text/markdown"
)

// ErrTimeout is returned when the API does not answer within the configured timeout.
var ErrTimeout = errors.New("obsidian REST API request timed out")

// ErrRequestIncomplete is returned when the request could not complete for a reason other than the timeout.
var ErrRequestIncomplete = errors.New("obsidian REST API request could not complete")

// ErrRequestFailed is returned when the API answers with a non-2xx status.
var ErrRequestFailed = errors.New("obsidian REST API request failed")

// ActiveFile is the note currently open in Obsidian.
type ActiveFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// response is a reply whose body has been read in full within the request timeout.
type response struct {
	status     int
	statusText string
	header     http.Header
	body       []byte
}

// extractFunc turns a successful response into a path and content.
type extractFunc func(resp response) (path, content string, err error)

// Client fetches the active file from the Local REST API.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	config  Config
	doer    Doer
	logger  *slog.Logger
	accept  string
	extract extractFunc
}

// NewClient creates a Client. It sets config defaults and validates the config.
// Without WithDoer, requests go through an *http.Client wrapped in LoggingTransport.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid obsidian config: %w", err)
	}

	var options clientOptions

	for _, apply := range opts {
		apply(&options)
	}

	if options.logger == nil {
		options.logger = slog.Default()
	}

	if options.doer == nil {
		options.doer = &http.Client{ //nolint:exhaustruct // timeout is enforced per request
			Transport: NewLoggingTransport(http.DefaultTransport, options.logger),
		}
	}

	client := &Client{
		config: cfg,
		doer:   options.doer,
		logger: options.logger,
	}

	switch cfg.Flavor {
	case FlavorHeaders:
		client.accept = acceptMarkdown
		client.extract = extractFromHeaders
	default:
		client.accept = acceptNoteJSON
		client.extract = extractFromJSON
	}

	return client, nil
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// ActiveFile performs one GET against the active-file endpoint and returns the normalized result.
func (c *Client) ActiveFile(ctx context.Context) (ActiveFile, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+activePath, nil)
	if err != nil {
		return ActiveFile{}, fmt.Errorf("%w: building request: %w", ErrRequestIncomplete, err)
	}

	req.Header.Set("Accept", c.accept)

	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.do(ctx, req)
	if err != nil {
		return ActiveFile{}, err
	}

	if !isSuccess(resp.status) {
		return ActiveFile{}, fmt.Errorf("%w (%d %s): %s", ErrRequestFailed, resp.status, resp.statusText, resp.body)
	}

	path, content, err := c.extract(resp)
	if err != nil {
		return ActiveFile{}, err
	}

	resolved := c.resolve(path)

	c.logger.DebugContext(ctx, "active file fetched",
		slog.String("flavor", string(c.config.Flavor)),
		slog.String("path", resolved),
		slog.Int("content_bytes", len(content)),
	)

	return ActiveFile{
		Path:    resolved,
		Content: content,
	}, nil
}

type doResult struct {
	resp response
	err  error
}

// do runs the round trip, body included, in its own goroutine so the caller is released
// at the deadline even when the Doer or the body ignores the request context.
func (c *Client) do(ctx context.Context, req *http.Request) (response, error) {
	results := make(chan doResult, 1)

	go func() {
		results <- c.roundTrip(ctx, req)
	}()

	select {
	case result := <-results:
		if result.err != nil {
			if ctx.Err() != nil {
				return response{}, c.timeoutError(ctx)
			}

			return response{}, fmt.Errorf("%w: %w", ErrRequestIncomplete, result.err)
		}

		return result.resp, nil
	case <-ctx.Done():
		return response{}, c.timeoutError(ctx)
	}
}

// roundTrip sends req and reads the body. The body is closed once ctx is done,
// which unblocks a stalled read.
func (c *Client) roundTrip(ctx context.Context, req *http.Request) doResult {
	resp, err := c.doer.Do(req) //nolint:gosec // G704: URL comes from validated config
	if err != nil {
		return doResult{err: err}
	}

	stop := context.AfterFunc(ctx, func() { _ = resp.Body.Close() })

	defer func() {
		stop()

		_ = resp.Body.Close()
	}()

	result := response{
		status:     resp.StatusCode,
		statusText: statusText(resp),
		header:     resp.Header,
	}

	if isSuccess(resp.StatusCode) {
		result.body, err = io.ReadAll(resp.Body)
		if err != nil {
			return doResult{err: fmt.Errorf("reading body: %w", err)}
		}
	} else {
		result.body = readBodyBestEffort(resp.Body, maxErrorBodyBytes)
	}

	if ctx.Err() != nil {
		return doResult{err: ctx.Err()}
	}

	return doResult{resp: result}
}

func (c *Client) timeoutError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s: %w", ErrTimeout, c.config.Timeout, ctx.Err())
	}

	return fmt.Errorf("%w: %w", ErrRequestIncomplete, ctx.Err())
}

func (c *Client) resolve(path string) string {
	if c.config.VaultPath == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(c.config.VaultPath, path)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// readBodyBestEffort returns whatever could be read; a read error never replaces the status error.
func readBodyBestEffort(body io.Reader, limit int64) []byte {
	data, _ := io.ReadAll(io.LimitReader(body, limit))

	return data
}

// statusText returns the reason phrase of the status line, e.g. "Unauthorized".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}

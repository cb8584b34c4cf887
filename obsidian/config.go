package obsidian

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the address the Local REST API plugin listens on out of the box.
	DefaultBaseURL = "http://127.0.0.1:27123"

	// DefaultTimeout bounds a single round trip to the plugin.
	DefaultTimeout = 10 * time.Second
)

// Flavor selects which response contract the deployed API version speaks.
type Flavor string

const (
	// FlavorJSON reads path and content from a JSON note document.
	FlavorJSON Flavor = "json"
	// FlavorHeaders reads content from the body and the path from response headers.
	FlavorHeaders Flavor = "headers"
)

// ErrInvalidBaseURL is returned when the base URL is not an absolute http(s) URL.
var ErrInvalidBaseURL = errors.New("base URL must be an absolute http or https URL")

// ErrRelativeVaultPath is returned when the vault path is set but not absolute.
var ErrRelativeVaultPath = errors.New("vault path must be absolute")

// ErrUnknownFlavor is returned for a flavor other than "json" or "headers".
var ErrUnknownFlavor = errors.New("unknown API flavor")

// ErrNonPositiveTimeout is returned when the timeout is zero or negative after defaults.
var ErrNonPositiveTimeout = errors.New("timeout must be positive")

// Config holds the connection settings for a Client.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	APIKey    string        `yaml:"api_key"`
	VaultPath string        `yaml:"vault_path"`
	Flavor    Flavor        `yaml:"flavor"`
	Timeout   time.Duration `yaml:"timeout"`
}

// SetDefaults fills unset fields and normalizes the base URL.
// It reports whether anything was changed.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
		changed = true
	}

	if trimmed := strings.TrimRight(c.BaseURL, "/"); trimmed != c.BaseURL {
		c.BaseURL = trimmed
		changed = true
	}

	if c.Flavor == "" {
		c.Flavor = FlavorJSON
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
		changed = true
	}

	return changed
}

// Validate checks the Config. It expects SetDefaults to have run.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidBaseURL, c.BaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	if c.VaultPath != "" && !filepath.IsAbs(c.VaultPath) {
		return fmt.Errorf("%w: %q", ErrRelativeVaultPath, c.VaultPath)
	}

	switch c.Flavor {
	case FlavorJSON, FlavorHeaders:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFlavor, c.Flavor)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrNonPositiveTimeout, c.Timeout)
	}

	return nil
}

package activenote

import (
	"fmt"

	"github.com/0xalexb/activenote/config"
	envfetcher "github.com/0xalexb/activenote/config/fetcher/env"
	filefetcher "github.com/0xalexb/activenote/config/fetcher/file"
)

// ObsidianConfigPath is the document section holding obsidian.Config.
const ObsidianConfigPath = "obsidian"

// EnvBindings lists the environment variables that override the config file.
func EnvBindings() []envfetcher.Binding {
	return []envfetcher.Binding{
		envfetcher.Bind("obsidian:base_url", "OBSIDIAN_BASE_URL"),
		envfetcher.Bind("obsidian:api_key", "OBSIDIAN_API_KEY", "OBSIDIAN_API_TOKEN"),
		envfetcher.Bind("obsidian:vault_path", "OBSIDIAN_VAULT_PATH"),
		envfetcher.Bind("obsidian:flavor", "OBSIDIAN_API_FLAVOR"),
		envfetcher.Bind("obsidian:timeout", "OBSIDIAN_TIMEOUT"),
	}
}

// NewConfigFetcher reads the optional YAML file at path and layers EnvBindings over it.
// An empty path means no file.
func NewConfigFetcher(path string, opts ...envfetcher.Option) (config.DataFetcher, error) {
	file, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}

	return envfetcher.NewFetcher(file, EnvBindings(), opts...), nil
}

package activenote_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/activenote"
	"github.com/0xalexb/activenote/config"
	envfetcher "github.com/0xalexb/activenote/config/fetcher/env"
	filefetcher "github.com/0xalexb/activenote/config/fetcher/file"
	yamlparser "github.com/0xalexb/activenote/config/parser/yaml"
	"github.com/0xalexb/activenote/obsidian"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(vars map[string]string) envfetcher.Option {
	return envfetcher.WithLookup(func(name string) (string, bool) {
		value, ok := vars[name]

		return value, ok
	})
}

func loadObsidianConfig(t *testing.T, fetcher config.DataFetcher) (*obsidian.Config, error) {
	t.Helper()

	return config.Provider(new(obsidian.Config), activenote.ObsidianConfigPath)(yamlparser.NewParser(), fetcher)
}

func TestNewConfigFetcher_NoFileNoEnvUsesDefaults(t *testing.T) {
	t.Parallel()

	fetcher, err := activenote.NewConfigFetcher("", envLookup(nil))
	require.NoError(t, err)

	cfg, err := loadObsidianConfig(t, fetcher)
	require.NoError(t, err)

	assert.Equal(t, obsidian.DefaultBaseURL, cfg.BaseURL)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, obsidian.FlavorJSON, cfg.Flavor)
	assert.Equal(t, obsidian.DefaultTimeout, cfg.Timeout)
}

func TestNewConfigFetcher_EnvOverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activenote.yaml")
	content := "obsidian:\n  base_url: https://obsidian.local:27124\n  api_key: from-file\n  timeout: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fetcher, err := activenote.NewConfigFetcher(path, envLookup(map[string]string{
		"OBSIDIAN_API_KEY":    "from-env",
		"OBSIDIAN_API_FLAVOR": "headers",
		"OBSIDIAN_TIMEOUT":    "2s",
	}))
	require.NoError(t, err)

	cfg, err := loadObsidianConfig(t, fetcher)
	require.NoError(t, err)

	assert.Equal(t, "https://obsidian.local:27124", cfg.BaseURL)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, obsidian.FlavorHeaders, cfg.Flavor)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestNewConfigFetcher_APIKeyFallsBackToToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "key wins over token",
			vars: map[string]string{"OBSIDIAN_API_KEY": "key", "OBSIDIAN_API_TOKEN": "token"},
			want: "key",
		},
		{
			name: "empty key falls back to token",
			vars: map[string]string{"OBSIDIAN_API_KEY": "", "OBSIDIAN_API_TOKEN": "token"},
			want: "token",
		},
		{
			name: "neither set",
			vars: map[string]string{},
			want: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fetcher, err := activenote.NewConfigFetcher("", envLookup(testCase.vars))
			require.NoError(t, err)

			cfg, err := loadObsidianConfig(t, fetcher)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, cfg.APIKey)
		})
	}
}

func TestNewConfigFetcher_MissingFile(t *testing.T) {
	t.Parallel()

	fetcher, err := activenote.NewConfigFetcher(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, fetcher)
}

func TestNewConfigFetcher_DirectoryIsRejected(t *testing.T) {
	t.Parallel()

	_, err := activenote.NewConfigFetcher(t.TempDir())
	require.ErrorIs(t, err, filefetcher.ErrPathIsDirectory)
}

func TestEnvBindings_CoverEveryObsidianKey(t *testing.T) {
	t.Parallel()

	paths := make([]string, 0, len(activenote.EnvBindings()))

	for _, binding := range activenote.EnvBindings() {
		require.NotEmpty(t, binding.Names)
		paths = append(paths, binding.Path)
	}

	assert.ElementsMatch(t, []string{
		"obsidian:base_url",
		"obsidian:api_key",
		"obsidian:vault_path",
		"obsidian:flavor",
		"obsidian:timeout",
	}, paths)
}

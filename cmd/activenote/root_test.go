package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/activenote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := newRootCommandWith(nil)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "activenote dev (compiled unknown)\n", out.String())
}

func TestRootCommand_PassesFlagsToApp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "activenote.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obsidian:\n  vault_path: /vault\n"), 0o600))

	var captured activenote.Options

	cmd := newRootCommandWith(func(opts ...activenote.Option) error {
		for _, apply := range opts {
			apply(&captured)
		}

		return nil
	})
	cmd.SetArgs([]string{"--config", path, "--log-level", "debug", "--log-format", "text", "--strict-config"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "debug", captured.LogLevel)
	assert.Equal(t, "text", captured.LogFormat)
	assert.Equal(t, os.Stderr, captured.LogOutput)
	// config, obsidian client, source binding and MCP server
	assert.Len(t, captured.Modules, 4)
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	t.Parallel()

	called := false

	cmd := newRootCommandWith(func(...activenote.Option) error {
		called = true

		return nil
	})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	err := cmd.Execute()
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "loading config")
	assert.False(t, called)
}

func TestRootCommand_PropagatesRunError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	cmd := newRootCommandWith(func(...activenote.Option) error { return errBoom })
	cmd.SetArgs([]string{})

	require.ErrorIs(t, cmd.Execute(), errBoom)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	t.Parallel()

	cmd := newRootCommandWith(func(...activenote.Option) error { return nil })
	cmd.SetArgs([]string{"extra"})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}

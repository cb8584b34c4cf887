package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/activenote"
	yamlparser "github.com/0xalexb/activenote/config/parser/yaml"

	"github.com/spf13/cobra"
)

const (
	envLogLevel  = "ACTIVENOTE_LOG_LEVEL"
	envLogFormat = "ACTIVENOTE_LOG_FORMAT"
)

type rootFlags struct {
	configPath   string
	logLevel     string
	logFormat    string
	strictConfig bool
}

// runner builds and runs the application; tests replace it.
type runner func(opts ...activenote.Option) error

func runApp(opts ...activenote.Option) error {
	return activenote.NewApp(opts...).Run()
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(runApp)
}

func newRootCommandWith(run runner) *cobra.Command {
	flags := rootFlags{
		logLevel:  os.Getenv(envLogLevel),
		logFormat: os.Getenv(envLogFormat),
	}

	cmd := &cobra.Command{
		Use:   "activenote",
		Short: "MCP server returning the note currently open in Obsidian",
		Long: `Start a Model Context Protocol server over stdio exposing the get_active_file tool.

The tool returns the path and content of the active note, read from the
Obsidian Local REST API plugin. Logs go to stderr; stdout carries the protocol.

Environment variables override the config file:
  OBSIDIAN_BASE_URL     REST API base URL (default http://127.0.0.1:27123)
  OBSIDIAN_API_KEY      Bearer token, OBSIDIAN_API_TOKEN is read when unset
  OBSIDIAN_VAULT_PATH   Absolute vault root used to resolve relative paths
  OBSIDIAN_API_FLAVOR   json (default) or headers
  OBSIDIAN_TIMEOUT      Request timeout, e.g. 10s`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return serve(flags, run)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to an optional YAML config file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", flags.logLevel,
		"log level: debug, info, warn or error (env "+envLogLevel+")")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", flags.logFormat,
		"log format: json or text (env "+envLogFormat+")")
	cmd.Flags().BoolVar(&flags.strictConfig, "strict-config", false, "reject unknown keys in the obsidian config section")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func serve(flags rootFlags, run runner) error {
	fetcher, err := activenote.NewConfigFetcher(flags.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return run(
		activenote.WithLogLevel(flags.logLevel),
		activenote.WithLogFormat(flags.logFormat),
		activenote.WithLogOutput(os.Stderr),
		activenote.WithConfig(fetcher, yamlparser.NewParser(yamlparser.WithStrict(flags.strictConfig))),
		activenote.WithObsidianClient(),
		activenote.WithMCPServer(),
	)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "activenote %s (compiled %s)\n", activenote.Version, activenote.CompiledAt)
		},
	}
}

// Package activenote assembles the active-note MCP server: logging, configuration,
// the Obsidian client and the stdio tool server, wired together with Fx.
package activenote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/activenote/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// ErrAbnormalExit is returned by Run when the app was shut down with a non-zero exit code.
var ErrAbnormalExit = errors.New("app exited abnormally")

// App is the configured Fx application.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// Err returns the error encountered while building the dependency graph, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err() //nolint:wrapcheck // fx already describes the failing constructor
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application, blocks until an OS signal or a shutdown request arrives,
// then stops it. A shutdown requested with a non-zero exit code is reported as ErrAbnormalExit.
func (app *App) Run() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.Start()
	if err != nil {
		return err
	}

	signal := <-app.app.Wait()

	slog.Debug("shutdown requested", slog.String("signal", signal.Signal.String()), slog.Int("exit_code", signal.ExitCode))

	err = app.Stop()
	if err != nil {
		return err
	}

	if signal.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAbnormalExit, signal.ExitCode)
	}

	return nil
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

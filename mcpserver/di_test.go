package mcpserver

import (
	"io"
	"testing"
	"time"

	"github.com/0xalexb/activenote/obsidian"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

//nolint:paralleltest // the stdio transport shares one session value across servers
func TestNewModule_ServesAndShutsDownOnEOF(t *testing.T) {
	p := newPipes(t)
	source := &fakeSource{file: obsidian.ActiveFile{Path: "/vault/b.md", Content: "beta"}}

	app := fxtest.New(t,
		fx.Supply(
			fx.Annotate(source, fx.As(new(ActiveFileSource))),
			discardLogger(),
		),
		NewModule(WithName("module-test"), WithIO(p.serverIn, p.serverOut)),
	)

	app.RequireStart()

	resp := p.roundTrip(t, toolsCallRequest)
	require.Nil(t, resp.Error)
	require.Len(t, resp.Result.Content, 1)
	assert.Contains(t, resp.Result.Content[0].Text, "beta")

	require.NoError(t, p.clientIn.Close())

	select {
	case signal := <-app.Wait():
		assert.Equal(t, 0, signal.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("app was not shut down after the input closed")
	}

	app.RequireStop()
}

//nolint:paralleltest // the stdio transport shares one session value across servers
func TestNewModule_ReadFailureExitsWithCode1(t *testing.T) {
	p := newPipes(t)

	app := fxtest.New(t,
		fx.Supply(
			fx.Annotate(&fakeSource{}, fx.As(new(ActiveFileSource))),
			discardLogger(),
		),
		NewModule(WithIO(p.serverIn, p.serverOut)),
	)

	app.RequireStart()

	require.NoError(t, p.clientIn.CloseWithError(io.ErrUnexpectedEOF))

	select {
	case signal := <-app.Wait():
		assert.Equal(t, 1, signal.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("app was not shut down after the read failure")
	}

	app.RequireStop()
}

func TestNewModule_EmptyOptionsUseDefaults(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(
			fx.Annotate(&fakeSource{}, fx.As(new(ActiveFileSource))),
			discardLogger(),
		),
		NewModule(WithName(""), WithVersion("")),
	)

	// Empty values fall back to defaults, so the module starts.
	require.NoError(t, app.Err())
}

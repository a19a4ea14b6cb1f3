package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crcsum/cmd/crcsum/commands"
	"go.trai.ch/crcsum/internal/app"
	"go.trai.ch/crcsum/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, inputs []string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, inputs []string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, inputs, opts)
	}
	return nil
}

func execute(t *testing.T, args ...string) (app.RunOptions, []string, bool) {
	t.Helper()

	var (
		captured app.RunOptions
		inputs   []string
		called   bool
	)
	mock := &mockApp{
		runFunc: func(_ context.Context, in []string, opts app.RunOptions) error {
			captured, inputs, called = opts, in, true
			return nil
		},
	}

	cli := commands.New(mock)
	// A nil slice would make cobra fall back to os.Args.
	cli.SetArgs(append([]string{}, args...))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, cli.Execute(t.Context()))
	return captured, inputs, called
}

func TestCommands_Root(t *testing.T) {
	t.Run("no arguments checks the current directory", func(t *testing.T) {
		opts, inputs, called := execute(t)
		assert.True(t, called)
		assert.Empty(t, inputs)
		assert.Nil(t, opts.Update)
		assert.Nil(t, opts.Add)
		assert.Zero(t, opts.Jobs)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		opts, inputs, _ := execute(t, "-u", "--add", "-j", "3", "-c", "alt.yaml", "--json-log", "a.mkv", "b.mkv")
		require.NotNil(t, opts.Update)
		require.NotNil(t, opts.Add)
		assert.True(t, *opts.Update)
		assert.True(t, *opts.Add)
		assert.Equal(t, 3, opts.Jobs)
		assert.Equal(t, "alt.yaml", opts.ConfigPath)
		assert.True(t, opts.JSONLog)
		assert.Equal(t, []string{"a.mkv", "b.mkv"}, inputs)
	})

	t.Run("explicit false is passed through", func(t *testing.T) {
		opts, _, _ := execute(t, "--add=false")
		require.NotNil(t, opts.Add)
		assert.False(t, *opts.Add)
		assert.Nil(t, opts.Update)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, []string, app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"dir"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{
		runFunc: func(context.Context, []string, app.RunOptions) error {
			panic("should not be called")
		},
	}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(t.Context()))
	assert.Contains(t, buf.String(), "crcsum version "+build.Version)
}

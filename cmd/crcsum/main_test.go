package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crcsum/internal/adapters/config"
	"go.trai.ch/crcsum/internal/adapters/fs"
	"go.trai.ch/crcsum/internal/adapters/linear"
	"go.trai.ch/crcsum/internal/app"
	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports/mocks"
	"go.trai.ch/crcsum/internal/engine/coordinator"
	"go.uber.org/mock/gomock"
)

// newProvider builds the application from real adapters, reporting to stdout.
func newProvider(t *testing.T, stdout *bytes.Buffer) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))

	a := app.New(
		config.NewLoader(log),
		fs.NewLister(),
		coordinator.NewCoordinator(fs.NewChecksummer(), fs.NewRenamer(), log),
		linear.NewReporter(stdout, new(bytes.Buffer)),
		log,
	)

	return func(_ context.Context) (*app.Components, error) {
		return &app.Components{App: a, Logger: log}, nil
	}, log
}

func TestRun_Version(t *testing.T) {
	stdout := new(bytes.Buffer)
	provider, _ := newProvider(t, stdout)

	exitCode := run(t.Context(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "crcsum version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), nil, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_AddsChecksumsInCurrentDirectory(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	t.Chdir(dir)
	content := []byte("123456789")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.bin"), content, 0o600))

	stdout := new(bytes.Buffer)
	provider, _ := newProvider(t, stdout)

	exitCode := run(t.Context(), []string{"--add"}, stdout, new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)
	assert.Equal(t, "   ADDED - data.bin\n", stdout.String())

	assert.FileExists(t, filepath.Join(dir, "data"+domain.Checksum(0xCBF43926).Token()+".bin"))
}

func TestRun_FailedFileExitsNonZero(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	t.Chdir(dir)

	stdout := new(bytes.Buffer)
	provider, log := newProvider(t, stdout)
	log.EXPECT().Warn("1 of 1 file(s) could not be processed")

	exitCode := run(t.Context(), []string{"missing[00000000].bin"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_ExecutionErrorIsLogged(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout := new(bytes.Buffer)
	provider, log := newProvider(t, stdout)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})

	exitCode := run(t.Context(), []string{"--config", "absent.yaml"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

//go:build unix

package coordinator_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crcsum/internal/adapters/fs"
	"go.trai.ch/crcsum/internal/core/domain"
	"golang.org/x/sys/unix"
)

func TestPipeline_FIFODoesNotStallBatch(t *testing.T) {
	dir := t.TempDir()
	file := writeFixture(t, dir, "a.bin")
	pipe := filepath.Join(dir, "pipe.bin")
	require.NoError(t, unix.Mkfifo(pipe, 0o600))

	// The directory listing drops the FIFO.
	tasks, err := fs.NewLister().List([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.FileTask{domain.NewFileTask(file)}, tasks)

	// Passed explicitly it reaches the pipeline and fails on its own.
	tasks, err = fs.NewLister().List([]string{file, pipe}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	type outcome struct {
		summary domain.Summary
		failed  []domain.Result
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		var out outcome
		out.summary, out.err = newPipeline(t).Run(t.Context(), tasks, domain.Mode{}, collectFailed(&out.failed))
		done <- out
	}()

	select {
	case out := <-done:
		require.NoError(t, out.err)
		assert.Equal(t, 1, out.summary.Count(domain.OutcomeSkipped))
		require.Len(t, out.failed, 1)
		assert.Equal(t, "pipe.bin", out.failed[0].Name())
		require.ErrorIs(t, out.failed[0].Err, domain.ErrNotRegularFile)
	case <-time.After(5 * time.Second):
		t.Fatal("batch blocked on a FIFO")
	}
}

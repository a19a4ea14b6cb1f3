package linear_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/crcsum/internal/adapters/linear"
	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/zerr"
)

func result(path string, o domain.Outcome) domain.Result {
	return domain.Result{Task: domain.NewFileTask(path), Outcome: o}
}

func TestReporter_Report(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewReporter(&stdout, &stderr)

	r.Report(result("dir/show [1080p][A1B2C3D4].mkv", domain.OutcomeOk))
	r.Report(result("dir/f[00000000].txt", domain.OutcomeMismatch))
	r.Report(result("dir/g[00000000].txt", domain.OutcomeUpdated))
	r.Report(result("dir/notes.txt", domain.OutcomeAdded))
	r.Report(result("dir/README", domain.OutcomeSkipped))

	g := goldie.New(t)
	g.Assert(t, "report_outcomes", stdout.Bytes())
	assert.Empty(t, stderr.String())
}

func TestReporter_Report_Failed(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewReporter(&stdout, &stderr)

	res := result("dir/gone.bin", domain.OutcomeFailed)
	res.Err = errors.Join(
		domain.ErrIOFailure,
		zerr.Wrap(errors.New("open dir/gone.bin: no such file or directory"), "failed to open file"),
	)
	r.Report(res)

	g := goldie.New(t)
	g.Assert(t, "report_failed_stdout", stdout.Bytes())
	g.Assert(t, "report_failed_stderr", stderr.Bytes())
}

func TestReporter_Summary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewReporter(&stdout, &stderr)

	var s domain.Summary
	s.Add(result("a", domain.OutcomeOk))
	s.Add(result("b", domain.OutcomeOk))
	s.Add(result("c", domain.OutcomeAdded))
	s.Add(result("d", domain.OutcomeFailed))
	r.Summary(s)

	g := goldie.New(t)
	g.Assert(t, "summary", stderr.Bytes())
	assert.Empty(t, stdout.String())
}

func TestReporter_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	var stdout bytes.Buffer
	r := linear.NewReporter(&stdout, &bytes.Buffer{})
	r.Report(result("a.txt", domain.OutcomeMismatch))

	line := stdout.String()
	assert.Contains(t, line, "\x1b[", "label should be coloured")
	assert.True(t, strings.HasSuffix(line, "MISMATCH\x1b[0m - a.txt\n"), "name should not be coloured: %q", line)
}

func TestReporter_ConcurrentLinesDoNotInterleave(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout bytes.Buffer
	r := linear.NewReporter(&stdout, &bytes.Buffer{})

	var wg sync.WaitGroup
	for range 64 {
		wg.Go(func() {
			r.Report(result("file.bin", domain.OutcomeOk))
		})
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	assert.Len(t, lines, 64)
	for _, line := range lines {
		assert.Equal(t, "      OK - file.bin", line)
	}
}

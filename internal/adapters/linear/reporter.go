// Package linear renders batch results as one line per file.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/crcsum/internal/ui/output"
	"go.trai.ch/crcsum/internal/ui/style"
)

// labelWidth is the width the outcome label is right-aligned to.
const labelWidth = 8

// causeIndent aligns failure causes with the file name of the report line.
var causeIndent = strings.Repeat(" ", labelWidth+len(" - "))

var _ ports.Reporter = (*Reporter)(nil)

var outcomeColors = map[domain.Outcome]lipgloss.Color{
	domain.OutcomeOk:       style.Green,
	domain.OutcomeMismatch: style.Red,
	domain.OutcomeUpdated:  style.Yellow,
	domain.OutcomeAdded:    style.Blue,
	domain.OutcomeSkipped:  style.Magenta,
	domain.OutcomeFailed:   style.Red,
}

// Reporter writes report lines to stdout and failure causes and the summary
// to stderr. It is safe for concurrent use.
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewReporter creates a new Reporter. Nil writers select os.Stdout and os.Stderr.
func NewReporter(stdout, stderr io.Writer) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Reporter{
		stdout: stdout,
		stderr: stderr,
		output: output.New(stdout),
	}
}

// Report prints "<LABEL> - <name>" with the label right-aligned and coloured
// by outcome. The name is the one the file had when it was checked.
func (r *Reporter) Report(res domain.Result) {
	label := fmt.Sprintf("%*s", labelWidth, res.Outcome.Label())
	if c, ok := outcomeColors[res.Outcome]; ok {
		label = r.output.String(label).Foreground(r.output.Color(string(c))).String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stdout, "%s - %s\n", label, res.Name())

	if res.Outcome == domain.OutcomeFailed && res.Err != nil {
		for _, line := range strings.Split(res.Err.Error(), "\n") {
			_, _ = fmt.Fprintf(r.stderr, "%s%s\n", causeIndent, line)
		}
	}
}

// Summary prints the tally of a finished batch.
func (r *Reporter) Summary(s domain.Summary) {
	parts := make([]string, 0, domain.OutcomeFailed+1)
	for o := domain.OutcomeOk; o <= domain.OutcomeFailed; o++ {
		parts = append(parts, fmt.Sprintf("%d %s", s.Count(o), strings.ToLower(o.Label())))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "checked %d file(s): %s\n", s.Total(), strings.Join(parts, ", "))
}

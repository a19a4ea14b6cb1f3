// Package coordinator runs the checksum reconciliation pipeline over a batch of files.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Coordinator dispatches files to a bounded pool of workers, each running the
// whole pipeline for one file: compute, decide, rename.
type Coordinator struct {
	checksummer ports.Checksummer
	renamer     ports.Renamer
	logger      ports.Logger
	workers     int
}

// NewCoordinator creates a Coordinator sized from the CPU count.
func NewCoordinator(checksummer ports.Checksummer, renamer ports.Renamer, log ports.Logger) *Coordinator {
	return &Coordinator{
		checksummer: checksummer,
		renamer:     renamer,
		logger:      log,
		workers:     DefaultWorkers(),
	}
}

// DefaultWorkers returns the pool size used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU() * domain.DefaultWorkerFactor
}

// WithWorkers returns a copy of the Coordinator with a pool of n workers.
// A non-positive n keeps the current size.
func (c *Coordinator) WithWorkers(n int) *Coordinator {
	cp := *c
	if n > 0 {
		cp.workers = n
	}
	return &cp
}

// Workers returns the pool size.
func (c *Coordinator) Workers() int {
	return c.workers
}

// Run processes every task at most once and returns after all dispatched
// files are done. report is called from the workers, once per processed file.
//
// Failures are file-scoped and show up as domain.OutcomeFailed results. The
// returned error is only set when ctx was cancelled; files not yet started at
// that point are neither processed nor reported, and neither are files whose
// checksum was cut short by the cancellation.
func (c *Coordinator) Run(
	ctx context.Context,
	tasks []domain.FileTask,
	mode domain.Mode,
	report func(domain.Result),
) (domain.Summary, error) {
	var (
		mu      sync.Mutex
		summary domain.Summary
		seen    = make(map[string]struct{}, len(tasks))
	)

	// A plain group: one file failing must not cancel its siblings.
	var g errgroup.Group
	g.SetLimit(c.workers)

	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}

		key := filepath.Clean(task.Path)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			res := c.Process(ctx, task, mode)
			if interrupted(ctx, res) {
				return nil
			}

			mu.Lock()
			summary.Add(res)
			mu.Unlock()

			if report != nil {
				report(res)
			}
			return nil
		})
	}

	_ = g.Wait()
	return summary, ctx.Err()
}

// Process runs the pipeline for a single file. It never panics and never
// returns an error: every failure is captured in the result.
func (c *Coordinator) Process(ctx context.Context, task domain.FileTask, mode domain.Mode) (res domain.Result) {
	res.Task = task

	defer zerr.Defer(func(err error) {
		c.logger.Warn(fmt.Sprintf("recovered from panic while processing %s", task.Path))
		res = failed(res, errors.Join(domain.ErrPipelinePanic, zerr.With(err, "path", task.Path)))
	})

	computed, err := c.checksummer.Checksum(ctx, task.Path)
	if err != nil {
		return failed(res, err)
	}
	res.Computed = computed

	decision, err := domain.Reconcile(task.Name(), computed, mode)
	if err != nil {
		return failed(res, err)
	}
	res.Expected = decision.Expected
	res.Outcome = decision.Outcome

	if decision.NeedsRename() {
		// Renames are not interrupted by cancellation.
		newPath, err := c.renamer.Rename(task.Path, decision.NewName)
		if err != nil {
			return failed(res, err)
		}
		res.NewPath = newPath
	}
	return res
}

func interrupted(ctx context.Context, res domain.Result) bool {
	return res.Outcome == domain.OutcomeFailed && ctx.Err() != nil && errors.Is(res.Err, ctx.Err())
}

func failed(res domain.Result, err error) domain.Result {
	res.Outcome = domain.OutcomeFailed
	res.Err = err
	return res
}

// Package app implements the application layer for crcsum.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/crcsum/internal/engine/coordinator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lister       ports.FileLister
	coordinator  *coordinator.Coordinator
	reporter     ports.Reporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lister ports.FileLister,
	coord *coordinator.Coordinator,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		lister:       lister,
		coordinator:  coord,
		reporter:     reporter,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
// Nil flags and a zero Jobs fall back to the configuration file.
type RunOptions struct {
	Update     *bool
	Add        *bool
	Jobs       int
	ConfigPath string
	JSONLog    bool
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// Run checks the files named by inputs, or the current directory when there
// are none. Per-file failures are reported as they happen and turn into
// domain.ErrBatchIncomplete once the whole batch is done.
func (a *App) Run(ctx context.Context, inputs []string, opts RunOptions) error {
	if opts.JSONLog {
		if s, ok := a.logger.(jsonSwitcher); ok {
			s.SetJSON(true)
		}
	}

	// 1. Resolve settings
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	mode, jobs, err := merge(cfg, opts)
	if err != nil {
		return err
	}

	// 2. Enumerate inputs
	ignores := append(slices.Clone(cfg.Ignore), domain.DefaultConfigFile)
	tasks, err := a.lister.List(inputs, ignores)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate inputs")
	}
	if opts.ConfigPath != "" {
		tasks = withoutFile(tasks, cwd, opts.ConfigPath)
	}
	if len(tasks) == 0 {
		a.logger.Warn("no files to check")
		return nil
	}

	// 3. Process the batch
	summary, err := a.coordinator.WithWorkers(jobs).Run(ctx, tasks, mode, a.reporter.Report)
	a.reporter.Summary(summary)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "batch interrupted"), "processed", summary.Total())
	}

	if n := summary.Failed(); n > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d file(s) could not be processed", n, summary.Total()))
		return domain.ErrBatchIncomplete
	}
	return nil
}

// withoutFile drops the tasks naming path. Relative paths resolve against cwd.
func withoutFile(tasks []domain.FileTask, cwd, path string) []domain.FileTask {
	target := resolve(cwd, path)
	return slices.DeleteFunc(tasks, func(task domain.FileTask) bool {
		return resolve(cwd, task.Path) == target
	})
}

func resolve(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// merge applies the set command line flags on top of the configuration.
func merge(cfg *domain.Config, opts RunOptions) (domain.Mode, int, error) {
	mode := cfg.Mode
	if opts.Update != nil {
		mode.Update = *opts.Update
	}
	if opts.Add != nil {
		mode.Add = *opts.Add
	}

	jobs := cfg.Jobs
	switch {
	case opts.Jobs < 0:
		return mode, 0, errors.Join(domain.ErrInvalidJobs, zerr.With(zerr.New("invalid --jobs value"), "jobs", opts.Jobs))
	case opts.Jobs > 0:
		jobs = opts.Jobs
	}

	return mode, jobs, nil
}

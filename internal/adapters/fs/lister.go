// Package fs provides file system adapters for listing, checksumming and renaming files.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileLister = (*Lister)(nil)

// Lister enumerates candidate files.
type Lister struct{}

// NewLister creates a new Lister.
func NewLister() *Lister {
	return &Lister{}
}

// List expands inputs into file tasks.
//
// No input means the current directory. A single directory input is listed
// without descending into subdirectories, keeping only regular files (or
// symlinks to them) whose base name matches none of ignores. Otherwise every
// input except directories is a candidate file. Explicit paths that are
// missing or not regular are kept so that the failure is reported for them.
func (l *Lister) List(inputs []string, ignores []string) ([]domain.FileTask, error) {
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	if len(inputs) == 1 && isDir(inputs[0]) {
		return l.listDir(inputs[0], ignores)
	}

	tasks := make([]domain.FileTask, 0, len(inputs))
	for _, path := range inputs {
		if isDir(path) {
			continue
		}
		tasks = append(tasks, domain.NewFileTask(path))
	}
	return tasks, nil
}

func (l *Lister) listDir(dir string, ignores []string) ([]domain.FileTask, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(domain.ErrListFailed, zerr.With(zerr.Wrap(err, "failed to read directory"), "dir", dir))
	}

	tasks := make([]domain.FileTask, 0, len(entries))
	for _, entry := range entries {
		if shouldSkip(entry, ignores) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		// Symlinks are followed and kept only when they resolve to a regular file.
		if entry.Type()&iofs.ModeSymlink != 0 && !isRegular(path) {
			continue
		}
		tasks = append(tasks, domain.NewFileTask(path))
	}
	return tasks, nil
}

// shouldSkip reports whether a directory entry is excluded from the batch.
func shouldSkip(entry iofs.DirEntry, ignores []string) bool {
	if !entry.Type().IsRegular() && entry.Type()&iofs.ModeSymlink == 0 {
		return true
	}

	name := entry.Name()
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

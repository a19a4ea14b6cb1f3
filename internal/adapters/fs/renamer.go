package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renamer = (*Renamer)(nil)

// Renamer renames files within their directory.
type Renamer struct{}

// NewRenamer creates a new Renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// Rename gives the file at path the base name newName and returns the new path.
//
// The target must not exist unless it resolves to the same file, which is the
// case for a case-only rename on a case-insensitive filesystem.
func (r *Renamer) Rename(path, newName string) (string, error) {
	if newName == "" || newName == "." || newName == ".." || strings.ContainsRune(newName, filepath.Separator) ||
		strings.ContainsRune(newName, '/') {
		return "", errors.Join(domain.ErrInvalidName, renameErr(zerr.New("invalid file name"), path, newName))
	}

	target := filepath.Join(filepath.Dir(path), newName)
	if target == path {
		return path, nil
	}

	src, err := os.Lstat(path)
	if err != nil {
		return "", renameErr(zerr.Wrap(err, "failed to stat source"), path, newName)
	}

	if dst, err := os.Lstat(target); err == nil {
		if !os.SameFile(src, dst) {
			return "", errors.Join(domain.ErrRenameTargetExists, renameErr(zerr.New("target exists"), path, newName))
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", renameErr(zerr.Wrap(err, "failed to stat target"), path, newName)
	}

	if err := os.Rename(path, target); err != nil {
		return "", renameErr(zerr.Wrap(err, "rename refused"), path, newName)
	}
	return target, nil
}

func renameErr(err error, path, newName string) error {
	err = zerr.With(zerr.With(err, "path", path), "new_name", newName)
	return errors.Join(domain.ErrRenameFailed, err)
}

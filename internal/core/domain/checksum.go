package domain

import (
	"fmt"
	"path/filepath"
)

// Checksum is a CRC32 value, either computed from file content or embedded in a file name.
type Checksum uint32

// String renders the checksum as 8 uppercase, zero-padded hex digits.
func (c Checksum) String() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// Token renders the checksum in its canonical bracketed form, e.g. "[A1B2C3D4]".
func (c Checksum) Token() string {
	return "[" + c.String() + "]"
}

// FileTask references one candidate file of a batch.
type FileTask struct {
	Path string
}

// NewFileTask creates a FileTask for the given path.
func NewFileTask(path string) FileTask {
	return FileTask{Path: path}
}

// Name returns the base name of the task's file.
func (t FileTask) Name() string {
	return filepath.Base(t.Path)
}

// Mode carries the two reconciliation flags.
type Mode struct {
	// Update renames files whose embedded token does not match the content.
	Update bool
	// Add inserts a token into names that carry none.
	Add bool
}

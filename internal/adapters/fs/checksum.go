package fs

import (
	"context"
	"errors"
	"hash/crc32"
	"io"
	"os"
	"syscall"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/zerr"
)

// ChunkSize is the read size used when streaming file content.
const ChunkSize = 8 * 1024

var _ ports.Checksummer = (*Checksummer)(nil)

// Checksummer computes IEEE CRC32 checksums of files.
type Checksummer struct{}

// NewChecksummer creates a new Checksummer.
func NewChecksummer() *Checksummer {
	return &Checksummer{}
}

// Checksum streams the file at path through a CRC32 accumulator.
// Only regular files are opened, so a FIFO or device never blocks the caller.
func (c *Checksummer) Checksum(ctx context.Context, path string) (domain.Checksum, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Join(domain.ErrIOFailure, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path))
	}
	if !info.Mode().IsRegular() {
		err := zerr.With(zerr.New("cannot checksum file"), "path", path)
		return 0, errors.Join(domain.ErrNotRegularFile, zerr.With(err, "mode", info.Mode().String()))
	}

	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, errors.Join(domain.ErrIOFailure, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	return ChecksumReader(ctx, f)
}

// ChecksumReader returns the CRC32 of everything r yields, reading ChunkSize bytes at a time.
// Interrupted reads are retried. The context is checked between chunks.
func ChecksumReader(ctx context.Context, r io.Reader) (domain.Checksum, error) {
	buf := make([]byte, ChunkSize)
	hasher := crc32.NewIEEE()

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		n, err := r.Read(buf)
		if n > 0 {
			_, _ = hasher.Write(buf[:n])
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return domain.Checksum(hasher.Sum32()), nil
		case errors.Is(err, syscall.EINTR):
			continue
		default:
			return 0, errors.Join(domain.ErrIOFailure, zerr.Wrap(err, "failed to read file content"))
		}
	}
}

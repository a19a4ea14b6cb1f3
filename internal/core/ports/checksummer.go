// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/crcsum/internal/core/domain"
)

// Checksummer computes the CRC32 of a file's content.
//
//go:generate mockgen -source=checksummer.go -destination=mocks/mock_checksummer.go -package=mocks
type Checksummer interface {
	// Checksum streams the file at path and returns its CRC32.
	// Read failures are reported as domain.ErrIOFailure.
	Checksum(ctx context.Context, path string) (domain.Checksum, error)
}

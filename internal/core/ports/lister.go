package ports

import "go.trai.ch/crcsum/internal/core/domain"

// FileLister turns command line inputs into candidate files.
//
//go:generate mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type FileLister interface {
	// List expands inputs into file tasks. A single directory input is listed
	// non-recursively; directories among the candidates are skipped.
	List(inputs []string, ignores []string) ([]domain.FileTask, error)
}

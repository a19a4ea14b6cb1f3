package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crcsum/internal/core/ports"
)

const (
	// ListerNodeID is the unique identifier for the file lister Graft node.
	ListerNodeID graft.ID = "adapter.fs.lister"
	// ChecksummerNodeID is the unique identifier for the checksummer Graft node.
	ChecksummerNodeID graft.ID = "adapter.fs.checksummer"
	// RenamerNodeID is the unique identifier for the renamer Graft node.
	RenamerNodeID graft.ID = "adapter.fs.renamer"
)

func init() {
	graft.Register(graft.Node[ports.FileLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileLister, error) {
			return NewLister(), nil
		},
	})

	graft.Register(graft.Node[ports.Checksummer]{
		ID:        ChecksummerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Checksummer, error) {
			return NewChecksummer(), nil
		},
	})

	graft.Register(graft.Node[ports.Renamer]{
		ID:        RenamerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renamer, error) {
			return NewRenamer(), nil
		},
	})
}

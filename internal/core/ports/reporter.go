package ports

import "go.trai.ch/crcsum/internal/core/domain"

// Reporter renders per-file results and the batch summary.
// Report is called concurrently from the coordinator's workers.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report renders the result of one file.
	Report(res domain.Result)
	// Summary renders the tally of a finished batch.
	Summary(s domain.Summary)
}

package domain

// Outcome classifies how a file was reconciled.
type Outcome uint8

const (
	// OutcomeOk means the embedded token equals the computed checksum.
	OutcomeOk Outcome = iota
	// OutcomeMismatch means the token differs and no update was requested.
	OutcomeMismatch
	// OutcomeUpdated means the token differed and the file was renamed to carry the computed one.
	OutcomeUpdated
	// OutcomeAdded means the name had no token and one was inserted.
	OutcomeAdded
	// OutcomeSkipped means the name had no token and adding was not requested.
	OutcomeSkipped
	// OutcomeFailed means the file's pipeline stopped on a file-scoped error.
	OutcomeFailed
)

var outcomeLabels = [...]string{
	OutcomeOk:       "OK",
	OutcomeMismatch: "MISMATCH",
	OutcomeUpdated:  "UPDATED",
	OutcomeAdded:    "ADDED",
	OutcomeSkipped:  "SKIPPED",
	OutcomeFailed:   "FAILED",
}

// Label returns the report label of the outcome.
func (o Outcome) Label() string {
	if int(o) < len(outcomeLabels) {
		return outcomeLabels[o]
	}
	return "UNKNOWN"
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return o.Label()
}

// Result is the report of one file's pipeline.
type Result struct {
	Task    FileTask
	Outcome Outcome
	// Expected is the checksum embedded in the name, nil when the name has none.
	Expected *Checksum
	// Computed is the checksum of the file content. Zero if it was never computed.
	Computed Checksum
	// NewPath is the path after a rename, empty when the file was not renamed.
	NewPath string
	// Err is set when Outcome is OutcomeFailed.
	Err error
}

// Name returns the base name of the reported file as it was before any rename.
func (r Result) Name() string {
	return r.Task.Name()
}

// Summary tallies outcomes of a batch.
type Summary struct {
	Counts [OutcomeFailed + 1]int
}

// Add folds one result into the summary.
func (s *Summary) Add(r Result) {
	if int(r.Outcome) < len(s.Counts) {
		s.Counts[r.Outcome]++
	}
}

// Count returns how many results had the given outcome.
func (s Summary) Count(o Outcome) int {
	if int(o) < len(s.Counts) {
		return s.Counts[o]
	}
	return 0
}

// Total returns the number of reported files.
func (s Summary) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// Failed returns the number of files whose pipeline failed.
func (s Summary) Failed() int {
	return s.Counts[OutcomeFailed]
}

// Renamed returns the number of files renamed by the batch.
func (s Summary) Renamed() int {
	return s.Counts[OutcomeUpdated] + s.Counts[OutcomeAdded]
}

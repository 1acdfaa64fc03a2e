package model

// FileOutcome is the result of processing one source file. Missing-include
// records travel inside the outcome instead of shared mutable state; the
// driver merges them into the run summary.
type FileOutcome struct {
	File    Path
	Changed bool // at least one include was rewritten
	Updated bool // the file was (or would be, in dry-run) written
	Backup  Path // backup path, empty when none was created
	Missing []MissingInclude
	Err     error // read or write failure; the file was skipped
}

// RunSummary aggregates outcomes across a whole run.
type RunSummary struct {
	Scanned int
	Updated int
	Skipped int
	Missing []MissingInclude
}

// Merge folds a single file outcome into the summary.
func (s *RunSummary) Merge(outcome FileOutcome) {
	s.Scanned++

	if outcome.Updated {
		s.Updated++
	} else {
		s.Skipped++
	}

	s.Missing = append(s.Missing, outcome.Missing...)
}

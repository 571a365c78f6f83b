package batch

import (
	"time"

	"tap/internal/faults"
)

// FileResult describes what happened to one input.
type FileResult struct {
	Input    string
	Output   string
	Events   int
	Speakers int
	Status   string
	Err      error
	Elapsed  time.Duration
}

// Report summarizes a batch run. Files keep input order.
type Report struct {
	RunID   string
	Files   []FileResult
	Elapsed time.Duration
}

// Count returns how many files ended with status.
func (r *Report) Count(status string) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, file := range r.Files {
		if file.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the number of files that did not produce output and were
// not skipped.
func (r *Report) Failed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, file := range r.Files {
		if file.Status != faults.StatusProcessed && file.Status != faults.StatusSkipped {
			n++
		}
	}
	return n
}

package models

import (
	"time"
)

// DiffMode defines how pending comparison jobs are executed
type DiffMode string

const (
	// ModeSequential runs jobs one at a time in listing order
	ModeSequential DiffMode = "sequential"
	// ModeParallel dispatches jobs to a bounded worker pool
	ModeParallel DiffMode = "parallel"
)

// ComparisonMethod defines how file content is compared
type ComparisonMethod string

const (
	// CompareAuto selects stream for sequential runs and digest for parallel runs
	CompareAuto ComparisonMethod = "auto"
	// CompareStream compares content chunk-by-chunk with early exit
	CompareStream ComparisonMethod = "stream"
	// CompareDigest compares SHA-256 digests
	CompareDigest ComparisonMethod = "digest"
)

// DiffStatus represents the overall outcome of a diff run
type DiffStatus string

const (
	// StatusClean indicates the two trees are identical
	StatusClean DiffStatus = "clean"
	// StatusDifferencesFound indicates at least one difference or error
	StatusDifferencesFound DiffStatus = "differences_found"
)

// ExitCode maps the status to the process exit code
func (s DiffStatus) ExitCode() int {
	if s == StatusClean {
		return 0
	}
	return 1
}

// Statistics holds diff run metrics
type Statistics struct {
	Added          int
	Deleted        int
	Modified       int
	Unchanged      int
	TypeMismatches int
	Errors         int

	// FilesCompared counts file pairs whose content was actually read
	FilesCompared int

	// DirsScanned counts directory pairs that were listed and merged
	DirsScanned int
}

// Record updates the counters for one classification
func (s *Statistics) Record(c Classification) {
	switch c.Kind {
	case KindAdded:
		s.Added++
	case KindDeleted:
		s.Deleted++
	case KindModified:
		s.Modified++
	case KindUnchanged:
		s.Unchanged++
	case KindTypeMismatch:
		s.TypeMismatches++
	case KindError:
		s.Errors++
	}
}

// Differences returns the number of classifications that count as differences
func (s *Statistics) Differences() int {
	return s.Added + s.Deleted + s.Modified + s.TypeMismatches + s.Errors
}

// DiffReport represents the results of a diff run
type DiffReport struct {
	// Run details
	RunID     string
	LeftPath  string
	RightPath string
	Mode      DiffMode

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Overall status
	Status DiffStatus
}

// Finalize computes duration and status once the run is complete
func (r *DiffReport) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	if r.Stats.Differences() == 0 {
		r.Status = StatusClean
	} else {
		r.Status = StatusDifferencesFound
	}
}

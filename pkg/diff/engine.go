package diff

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sdejongh/dirdiff/pkg/compare"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/output"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

// Options configures a diff run
type Options struct {
	// Mode selects sequential or parallel job execution
	Mode models.DiffMode

	// ReportUnchanged also emits Unchanged classifications, not just differences
	ReportUnchanged bool

	// Workers bounds the parallel worker pool; defaults to the CPU count
	Workers int
}

// Engine orchestrates the recursive comparison of two directory trees.
// Classifications are streamed to the sink; sink writes always happen from a
// single goroutine, so implementations need no locking of their own.
type Engine struct {
	backend    storage.Backend
	comparator compare.Comparator
	sink       output.Sink
	logger     logging.Logger
	exclude    storage.ExcludeSet
	opts       Options

	// semaphore bounding concurrent file comparisons in parallel mode
	workers chan struct{}

	dirsScanned   atomic.Int64
	filesCompared atomic.Int64
}

// NewEngine creates a new diff engine
func NewEngine(
	backend storage.Backend,
	comparator compare.Comparator,
	sink output.Sink,
	logger logging.Logger,
	exclude storage.ExcludeSet,
	opts Options,
) *Engine {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		backend:    backend,
		comparator: comparator,
		sink:       sink,
		logger:     logger,
		exclude:    exclude,
		opts:       opts,
		workers:    make(chan struct{}, opts.Workers),
	}
}

// Run compares the two root directories and returns the final report.
// Failure to list either root is the only fatal condition; every deeper
// failure is scoped to its directory or file pair and reported through the
// sink as an error classification.
func (e *Engine) Run(ctx context.Context, leftRoot, rightRoot string) (*models.DiffReport, error) {
	report := &models.DiffReport{
		LeftPath:  leftRoot,
		RightPath: rightRoot,
		Mode:      e.opts.Mode,
		StartTime: time.Now(),
	}

	e.logger.Info(ctx, "starting diff", logging.Fields{
		"left":    leftRoot,
		"right":   rightRoot,
		"mode":    string(e.opts.Mode),
		"workers": e.opts.Workers,
	})

	leftEntries, err := e.backend.ListDir(ctx, leftRoot, e.exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", leftRoot, err)
	}

	rightEntries, err := e.backend.ListDir(ctx, rightRoot, e.exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", rightRoot, err)
	}

	e.dirsScanned.Add(1)
	merged := Merge(leftEntries, rightEntries)

	if e.opts.Mode == models.ModeParallel {
		results := e.resolveParallel(ctx, merged)
		for _, c := range results {
			if err := e.emit(report, c); err != nil {
				return nil, err
			}
		}
	} else {
		if err := e.resolveSequential(ctx, report, merged); err != nil {
			return nil, err
		}
	}

	report.Stats.DirsScanned = int(e.dirsScanned.Load())
	report.Stats.FilesCompared = int(e.filesCompared.Load())
	report.Finalize()

	e.logger.Info(ctx, "diff complete", logging.Fields{
		"status":      string(report.Status),
		"differences": report.Stats.Differences(),
		"duration":    report.Duration.String(),
	})

	return report, nil
}

// emit records one classification and forwards it to the sink. Unchanged
// entries are counted but only forwarded when requested.
func (e *Engine) emit(report *models.DiffReport, c models.Classification) error {
	report.Stats.Record(c)
	if c.Kind == models.KindUnchanged && !e.opts.ReportUnchanged {
		return nil
	}
	return e.sink.Accept(c)
}

// resolveSequential runs pending jobs one at a time in listing order,
// streaming each classification to the sink as it resolves.
func (e *Engine) resolveSequential(ctx context.Context, report *models.DiffReport, merged MergeResult) error {
	for _, c := range merged.Resolved {
		if err := e.emit(report, c); err != nil {
			return err
		}
	}

	for _, pair := range merged.Files {
		if err := e.emit(report, e.compareFiles(ctx, pair)); err != nil {
			return err
		}
	}

	for _, pair := range merged.Dirs {
		if err := e.recurseSequential(ctx, report, pair); err != nil {
			return err
		}
	}

	return nil
}

// recurseSequential descends into one directory pair. A listing failure is
// scoped to the pair and never aborts siblings or ancestors.
func (e *Engine) recurseSequential(ctx context.Context, report *models.DiffReport, pair DirPair) error {
	merged, errClass := e.listAndMerge(ctx, pair)
	if errClass != nil {
		return e.emit(report, *errClass)
	}
	return e.resolveSequential(ctx, report, merged)
}

// resolveParallel dispatches file comparisons to the worker pool and
// subdirectory recursions to their own goroutines, then splices the finished
// results back into structural order: merge-resolved classifications first,
// then file results in name order, then each subdirectory's output in name
// order. Execution order never changes where a result appears.
func (e *Engine) resolveParallel(ctx context.Context, merged MergeResult) []models.Classification {
	fileResults := make([]models.Classification, len(merged.Files))
	dirResults := make([][]models.Classification, len(merged.Dirs))

	var wg sync.WaitGroup

	for i, pair := range merged.Files {
		wg.Add(1)
		go func(i int, pair FilePair) {
			defer wg.Done()
			e.workers <- struct{}{}
			defer func() { <-e.workers }()
			fileResults[i] = e.compareFiles(ctx, pair)
		}(i, pair)
	}

	for i, pair := range merged.Dirs {
		wg.Add(1)
		go func(i int, pair DirPair) {
			defer wg.Done()
			dirResults[i] = e.recurseParallel(ctx, pair)
		}(i, pair)
	}

	wg.Wait()

	out := make([]models.Classification, 0, len(merged.Resolved)+len(fileResults))
	out = append(out, merged.Resolved...)
	out = append(out, fileResults...)
	for _, sub := range dirResults {
		out = append(out, sub...)
	}
	return out
}

// recurseParallel descends into one directory pair and returns the subtree's
// ordered output. The parent only ever sees this finished slice, never the
// subtree's in-flight jobs.
func (e *Engine) recurseParallel(ctx context.Context, pair DirPair) []models.Classification {
	merged, errClass := e.listAndMerge(ctx, pair)
	if errClass != nil {
		return []models.Classification{*errClass}
	}
	return e.resolveParallel(ctx, merged)
}

// listAndMerge lists both sides of a directory pair and merges the listings.
// On a listing failure it returns a single error classification for the pair.
func (e *Engine) listAndMerge(ctx context.Context, pair DirPair) (MergeResult, *models.Classification) {
	leftEntries, err := e.backend.ListDir(ctx, pair.Left.Path, e.exclude)
	if err != nil {
		e.logger.Warn(ctx, "listing failed", logging.Fields{"path": pair.Left.Path, "error": err.Error()})
		c := models.ComparisonError(pair.Left.Path, pair.Right.Path, err)
		return MergeResult{}, &c
	}

	rightEntries, err := e.backend.ListDir(ctx, pair.Right.Path, e.exclude)
	if err != nil {
		e.logger.Warn(ctx, "listing failed", logging.Fields{"path": pair.Right.Path, "error": err.Error()})
		c := models.ComparisonError(pair.Left.Path, pair.Right.Path, err)
		return MergeResult{}, &c
	}

	e.dirsScanned.Add(1)
	return Merge(leftEntries, rightEntries), nil
}

// compareFiles resolves one pending file pair to a terminal classification.
// There is no retry: a failed comparison resolves directly to an error
// classification carrying both paths and the cause.
func (e *Engine) compareFiles(ctx context.Context, pair FilePair) models.Classification {
	e.filesCompared.Add(1)

	cmp, err := e.comparator.Compare(ctx, e.backend, pair.Left.Path, pair.Right.Path, pair.Left.Size)
	if err != nil {
		e.logger.Warn(ctx, "comparison failed", logging.Fields{
			"left":  pair.Left.Path,
			"right": pair.Right.Path,
			"error": err.Error(),
		})
		return models.ComparisonError(pair.Left.Path, pair.Right.Path, err)
	}

	if cmp.Result == compare.Same {
		return models.Unchanged(pair.Left.Path, pair.Right.Path)
	}
	return models.Modified(pair.Left.Path, pair.Right.Path)
}

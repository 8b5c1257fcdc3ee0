package engine

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"doclint/internal/diag"
	"doclint/internal/ingest"
	"doclint/internal/observ"
	"doclint/internal/rules"
	"doclint/internal/source"
)

// Result is the outcome of checking one batch file.
type Result struct {
	Path   string
	Unit   string
	Files  *source.FileSet
	Bag    *diag.Bag
	Timing observ.Report
}

// Runner checks many batch files in parallel, reporting progress to an
// optional sink.
type Runner struct {
	Set  *rules.Set
	Opts Options
	Sink ProgressSink
}

// ListBatches returns the sorted batch files under dir.
func ListBatches(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && ingest.IsBatchPath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Check decodes and lints every batch. Results come back indexed by input
// position; the first failing batch aborts the run.
func (r *Runner) Check(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Opts.jobs())

	for _, path := range paths {
		emit(r.Sink, Event{Batch: path, Stage: StageDecode, Status: StatusQueued})
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			start := time.Now()
			timer := observ.NewTimer()

			emit(r.Sink, Event{Batch: path, Stage: StageDecode, Status: StatusWorking})
			endDecode := timer.Track(observ.PhaseDecode)
			b, err := ingest.Load(path)
			if err != nil {
				emit(r.Sink, Event{Batch: path, Stage: StageDecode, Status: StatusError, Err: err})
				return err
			}
			endDecode(fmt.Sprintf("%d declarations", len(b.Decls)))

			emit(r.Sink, Event{Batch: path, Stage: StageCheck, Status: StatusWorking})
			endCheck := timer.Track(observ.PhaseCheck)
			bag, err := Lint(ctx, b, r.Set, r.Opts)
			if err != nil {
				emit(r.Sink, Event{Batch: path, Stage: StageCheck, Status: StatusError, Err: err})
				return err
			}
			endCheck(fmt.Sprintf("%d findings", bag.Len()))

			results[i] = Result{
				Path:   path,
				Unit:   b.Unit,
				Files:  b.Files,
				Bag:    bag,
				Timing: timer.Report(),
			}
			emit(r.Sink, Event{
				Batch:   path,
				Stage:   StageCheck,
				Status:  StatusDone,
				Elapsed: time.Since(start),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dupesweep/internal/discovery"
	"dupesweep/internal/dupes"
	"dupesweep/internal/fileutil"
	"dupesweep/internal/logging"
	"dupesweep/internal/remover"
	"dupesweep/internal/report"
)

// Options is the per-run configuration handed to every directory pass.
type Options struct {
	Extensions []string
	Marker     string
	Verify     bool
	Commit     bool
	Recursive  bool
}

// Walker processes a base directory and, optionally, its subtree.
type Walker struct {
	Options  Options
	Digester dupes.Digester
	Deleter  fileutil.Deleter
	Reporter report.Reporter
	Journal  remover.Journal
	Logger   *slog.Logger
}

// Run sweeps base. The returned summary covers every directory completed
// before an error, so callers can journal partial runs.
func (w Walker) Run(ctx context.Context, base string) (report.Summary, error) {
	summary := report.Summary{Base: base, Commit: w.Options.Commit, Verify: w.Options.Verify}
	if id, ok := logging.RunIDFromContext(ctx); ok {
		summary.RunID = id
	}
	logger := logging.NewComponentLogger(logging.WithContext(ctx, w.Logger), "sweep")
	logger.Info("sweep started",
		logging.String(logging.FieldDirectory, base),
		logging.Bool("commit", w.Options.Commit),
		logging.Bool("verify", w.Options.Verify),
		logging.Bool("recursive", w.Options.Recursive),
	)

	started := time.Now()
	pending := []string{base}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		result, subdirs, err := w.processDirectory(ctx, dir)
		if err != nil {
			logging.ErrorWithContext(logger, "sweep aborted", "sweep_failed",
				logging.String(logging.FieldDirectory, dir),
				logging.Error(err),
			)
			if result.Dir != "" {
				summary.Directories = append(summary.Directories, result)
			}
			return summary, err
		}
		summary.Directories = append(summary.Directories, result)

		if w.Options.Recursive {
			// Reverse push keeps the visit order equal to a pre-order walk
			// over sorted listings.
			for i := len(subdirs) - 1; i >= 0; i-- {
				pending = append(pending, subdirs[i])
			}
		}
	}

	total := summary.Totals()
	logger.Info("sweep finished",
		logging.Int("directories", len(summary.Directories)),
		logging.Int("sets", total.Sets),
		logging.Int("duplicates", total.Duplicates),
		logging.Int("removed", total.Removed),
		logging.Int("missing", total.Missing),
		logging.Duration("elapsed", time.Since(started)),
	)
	return summary, nil
}

// processDirectory runs one directory pass and returns its subdirectories.
func (w Walker) processDirectory(ctx context.Context, dir string) (report.DirectoryResult, []string, error) {
	reporter := w.reporter()
	reporter.Directory(dir)

	listing, err := discovery.List(dir, w.Options.Extensions)
	if err != nil {
		return report.DirectoryResult{}, nil, err
	}
	result := report.DirectoryResult{Dir: dir, Media: len(listing.Media)}

	originals := dupes.Classify(listing.Media, w.Options.Marker)
	result.Originals = len(originals)

	resolver := dupes.Resolver{
		Marker:   w.Options.Marker,
		Verify:   w.Options.Verify,
		Digester: w.Digester,
		Logger:   w.Logger,
	}
	sets, err := resolver.Resolve(ctx, listing.Entries, originals)
	if err != nil {
		return result, nil, fmt.Errorf("resolve duplicates in %s: %w", dir, err)
	}
	result.Sets = len(sets)
	for _, set := range sets {
		result.Duplicates += len(set.Duplicates)
	}

	if len(sets) == 0 {
		reporter.NoDuplicates(dir)
	}

	rm := remover.Remover{
		Deleter:  w.Deleter,
		Reporter: reporter,
		Journal:  w.Journal,
		Logger:   w.Logger,
	}
	removed, err := rm.Remove(ctx, sets, w.Options.Commit)
	result.Removed = removed.Removed
	result.Missing = removed.Missing
	if err != nil {
		return result, nil, fmt.Errorf("remove duplicates in %s: %w", dir, err)
	}

	logging.WithContext(ctx, w.Logger).Debug("directory processed",
		logging.String(logging.FieldComponent, "sweep"),
		logging.String(logging.FieldDirectory, dir),
		logging.Int("media", result.Media),
		logging.Int("originals", result.Originals),
		logging.Int("sets", result.Sets),
	)
	return result, listing.Subdirectories(), nil
}

func (w Walker) reporter() report.Reporter {
	if w.Reporter == nil {
		return report.Discard{}
	}
	return w.Reporter
}

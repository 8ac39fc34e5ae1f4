package remover

import (
	"context"
	"errors"
	"log/slog"

	"dupesweep/internal/dupes"
	"dupesweep/internal/fileutil"
	"dupesweep/internal/logging"
	"dupesweep/internal/report"
)

// Journal records removal outcomes, typically in the run history.
type Journal interface {
	RecordRemoval(ctx context.Context, path string, outcome fileutil.RemoveOutcome) error
}

// Result counts what a Remove call did.
type Result struct {
	Reported int
	Removed  int
	Missing  int
}

// Remover walks duplicate sets in order.
type Remover struct {
	Deleter  fileutil.Deleter
	Reporter report.Reporter
	Journal  Journal
	Logger   *slog.Logger
}

// Remove reports every duplicate of every set and deletes them when commit is
// true. It returns the first non-missing removal failure; counts up to that
// point are still returned.
func (r Remover) Remove(ctx context.Context, sets []dupes.Set, commit bool) (Result, error) {
	var res Result
	logger := logging.NewComponentLogger(logging.WithContext(ctx, r.Logger), "remover")
	reporter := r.Reporter
	if reporter == nil {
		reporter = report.Discard{}
	}

	for _, set := range sets {
		reporter.SetHeader(set.Original, commit)
		for _, path := range set.Duplicates {
			reporter.File(path, commit)
			res.Reported++
			if !commit {
				continue
			}

			outcome, err := fileutil.RemoveFile(r.Deleter, path)
			switch outcome {
			case fileutil.Removed:
				res.Removed++
				logger.Debug("duplicate removed",
					logging.String(logging.FieldPath, path),
					logging.String("original", set.Original),
				)
			case fileutil.NotFound:
				res.Missing++
				reporter.Missing(path)
				logging.WarnWithContext(logger, "duplicate vanished before removal", "duplicate_missing",
					logging.String(logging.FieldPath, path),
					logging.String(logging.FieldErrorHint, "another process may have removed it"),
					logging.String(logging.FieldImpact, "file skipped; run continues"),
				)
			default:
				logging.ErrorWithContext(logger, "duplicate removal failed", "duplicate_remove_failed",
					logging.String(logging.FieldPath, path),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check permissions on the file and its directory"),
				)
				// The removal failure stays the primary error.
				if jerr := r.record(ctx, path, outcome); jerr != nil {
					return res, errors.Join(err, jerr)
				}
				return res, err
			}
			if jerr := r.record(ctx, path, outcome); jerr != nil {
				return res, jerr
			}
		}
	}
	return res, nil
}

func (r Remover) record(ctx context.Context, path string, outcome fileutil.RemoveOutcome) error {
	if r.Journal == nil {
		return nil
	}
	return r.Journal.RecordRemoval(ctx, path, outcome)
}

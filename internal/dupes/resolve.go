package dupes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dupesweep/internal/discovery"
	"dupesweep/internal/logging"
)

// Set is an original and the duplicates that resolved to it. A Set is never
// built with zero duplicates.
type Set struct {
	Original   string
	Duplicates []string
}

// Digester produces a content digest for a file.
type Digester interface {
	Digest(path string) (string, error)
}

// Resolver matches originals to their duplicate candidates.
type Resolver struct {
	Marker string
	// Verify keeps only candidates whose digest equals the original's.
	Verify   bool
	Digester Digester
	Logger   *slog.Logger
}

// Candidates returns the entries that match original by filename alone:
// same directory listing, name starts with the original's base name, marker
// present in the name, and path ends with the original's extension. Order
// follows entries.
func (r Resolver) Candidates(original string, entries []discovery.Entry) []string {
	base := BaseName(original)
	ext := Extension(original)
	var matches []string
	for _, e := range entries {
		if e.IsDir || e.Path == original {
			continue
		}
		if !strings.HasPrefix(e.Name, base) {
			continue
		}
		if !strings.Contains(e.Name, r.Marker) {
			continue
		}
		if !strings.HasSuffix(e.Path, ext) {
			continue
		}
		matches = append(matches, e.Path)
	}
	return matches
}

// Resolve builds the duplicate sets for originals against one directory
// listing. With Verify every original is digested, even one without filename
// candidates, so an unreadable original fails the run. A digest failure is
// returned; candidates whose digest differs are dropped without comment.
func (r Resolver) Resolve(ctx context.Context, entries []discovery.Entry, originals []string) ([]Set, error) {
	logger := logging.NewComponentLogger(logging.WithContext(ctx, r.Logger), "resolver")
	if r.Verify && r.Digester == nil {
		return nil, fmt.Errorf("resolve duplicates: verification requested without a digester")
	}

	var sets []Set
	for _, original := range originals {
		var want string
		if r.Verify {
			sum, err := r.Digester.Digest(original)
			if err != nil {
				return nil, fmt.Errorf("digest original: %w", err)
			}
			want = sum
		}
		candidates := r.Candidates(original, entries)
		if len(candidates) == 0 {
			continue
		}
		if r.Verify {
			verified, err := r.verify(original, want, candidates, logger)
			if err != nil {
				return nil, err
			}
			candidates = verified
		}
		if len(candidates) == 0 {
			continue
		}
		sets = append(sets, Set{Original: original, Duplicates: candidates})
	}
	return sets, nil
}

func (r Resolver) verify(original, want string, candidates []string, logger *slog.Logger) ([]string, error) {
	kept := candidates[:0:0]
	for _, candidate := range candidates {
		got, err := r.Digester.Digest(candidate)
		if err != nil {
			return nil, fmt.Errorf("digest candidate: %w", err)
		}
		if got != want {
			logger.Debug("candidate content differs from original",
				logging.String(logging.FieldPath, candidate),
				logging.String("original", original),
			)
			continue
		}
		kept = append(kept, candidate)
	}
	return kept, nil
}

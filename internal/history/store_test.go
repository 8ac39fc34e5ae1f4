package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"dupesweep/internal/fileutil"
	"dupesweep/internal/history"
	"dupesweep/internal/report"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunLifecycle(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	info := history.RunInfo{
		ID:        "run-1",
		Base:      "/pics",
		Commit:    true,
		Verify:    true,
		Recursive: true,
		Marker:    " ",
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := store.BeginRun(ctx, info); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}

	journal := store.Journal("run-1")
	if err := journal.RecordRemoval(ctx, "/pics/cat (1).jpg", fileutil.Removed); err != nil {
		t.Fatalf("RecordRemoval: %v", err)
	}
	if err := journal.RecordRemoval(ctx, "/pics/cat (2).jpg", fileutil.NotFound); err != nil {
		t.Fatalf("RecordRemoval: %v", err)
	}

	summary := report.Summary{
		RunID: "run-1",
		Directories: []report.DirectoryResult{
			{Dir: "/pics", Sets: 1, Duplicates: 2, Removed: 1, Missing: 1},
			{Dir: "/pics/sub"},
		},
	}
	if err := store.FinishRun(ctx, summary, nil); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.ID != "run-1" || run.Base != "/pics" || !run.Commit || !run.Verify || !run.Recursive || run.Marker != " " {
		t.Fatalf("unexpected run info: %+v", run.RunInfo)
	}
	if !run.StartedAt.Equal(info.StartedAt) {
		t.Fatalf("started_at = %v, want %v", run.StartedAt, info.StartedAt)
	}
	if run.FinishedAt.IsZero() {
		t.Fatal("expected finished_at to be set")
	}
	if run.Directories != 2 || run.Sets != 1 || run.Duplicates != 2 || run.Removed != 1 || run.Missing != 1 {
		t.Fatalf("unexpected totals: %+v", run)
	}
	if run.Error != "" {
		t.Fatalf("unexpected error text %q", run.Error)
	}

	removals, err := store.Removals(ctx, "run-1")
	if err != nil {
		t.Fatalf("Removals: %v", err)
	}
	if len(removals) != 2 || removals[0].Outcome != "removed" || removals[1].Outcome != "not_found" {
		t.Fatalf("unexpected removals: %+v", removals)
	}
}

func TestFinishRunRecordsError(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.BeginRun(ctx, history.RunInfo{ID: "run-err", Base: "/pics", Marker: " "}); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.FinishRun(ctx, report.Summary{RunID: "run-err"}, errors.New("permission denied")); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	runs, err := store.RecentRuns(ctx, 0)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Error != "permission denied" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		info := history.RunInfo{ID: id, Base: "/pics", Marker: " ", StartedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := store.BeginRun(ctx, info); err != nil {
			t.Fatalf("BeginRun %s: %v", id, err)
		}
	}
	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "c" || runs[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", runs)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	first, err := history.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	second, err := history.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()
	if second.Path() != path {
		t.Fatalf("Path = %q", second.Path())
	}
}

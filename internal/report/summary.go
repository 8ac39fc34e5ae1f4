package report

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DirectoryResult records what happened in one directory.
type DirectoryResult struct {
	Dir        string
	Media      int
	Originals  int
	Sets       int
	Duplicates int
	Removed    int
	Missing    int
}

// Summary aggregates a whole run.
type Summary struct {
	RunID       string
	Base        string
	Commit      bool
	Verify      bool
	Directories []DirectoryResult
}

// Totals sums every directory.
func (s Summary) Totals() DirectoryResult {
	total := DirectoryResult{Dir: "Total"}
	for _, d := range s.Directories {
		total.Media += d.Media
		total.Originals += d.Originals
		total.Sets += d.Sets
		total.Duplicates += d.Duplicates
		total.Removed += d.Removed
		total.Missing += d.Missing
	}
	return total
}

// Mode is the human label for the run mode.
func (s Summary) Mode() string {
	mode := "dry run"
	if s.Commit {
		mode = "commit"
	}
	if s.Verify {
		mode += ", verified"
	}
	return cases.Title(language.Und).String(mode)
}

// SummaryTable renders directories that had duplicates plus a totals row.
func SummaryTable(s Summary) string {
	var rows [][]string
	for _, d := range s.Directories {
		if d.Duplicates == 0 {
			continue
		}
		rows = append(rows, directoryRow(d))
	}
	return Table{
		Title:   s.Mode(),
		Headers: []string{"Directory", "Scanned", "Sets", "Duplicates", "Removed", "Missing"},
		Rows:    rows,
		Footer:  directoryRow(s.Totals()),
		Align:   []Alignment{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight},
	}.Render()
}

func directoryRow(d DirectoryResult) []string {
	return []string{
		d.Dir,
		strconv.Itoa(d.Media),
		strconv.Itoa(d.Sets),
		strconv.Itoa(d.Duplicates),
		strconv.Itoa(d.Removed),
		strconv.Itoa(d.Missing),
	}
}

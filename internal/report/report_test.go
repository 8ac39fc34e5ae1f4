package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLineShapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Directory("/pics")
	c.SetHeader("/pics/cat.jpg", false)
	c.File("/pics/cat (1).jpg", false)
	c.Directory("/pics/sub")
	c.NoDuplicates("/pics/sub")
	c.Directory("/pics/other")
	c.SetHeader("/pics/other/dog.png", true)
	c.File("/pics/other/dog (1).png", true)
	c.Missing("/pics/other/dog (1).png")

	want := strings.Join([]string{
		"Checking: /pics",
		"\tWould remove:",
		"\t\t/pics/cat (1).jpg",
		"Checking: /pics/sub",
		"\tNo duplicates found",
		"Checking: /pics/other",
		"\tRemoving:",
		"\t\t/pics/other/dog (1).png",
		"\t\t[!] Couldn't find duplicate file: /pics/other/dog (1).png",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestConsoleDoesNotColorizeBuffers(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Missing("x")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected no ANSI codes for non-terminal writer, got %q", buf.String())
	}
}

func TestSummaryTotalsAndTable(t *testing.T) {
	s := Summary{
		Commit: true,
		Verify: true,
		Directories: []DirectoryResult{
			{Dir: "/pics", Media: 3, Originals: 2, Sets: 1, Duplicates: 1, Removed: 1},
			{Dir: "/pics/empty", Media: 1, Originals: 1},
			{Dir: "/pics/sub", Media: 4, Originals: 2, Sets: 2, Duplicates: 2, Removed: 1, Missing: 1},
		},
	}

	total := s.Totals()
	if total.Media != 8 || total.Sets != 3 || total.Duplicates != 3 || total.Removed != 2 || total.Missing != 1 {
		t.Fatalf("unexpected totals: %+v", total)
	}
	if got := s.Mode(); got != "Commit, Verified" {
		t.Fatalf("Mode = %q", got)
	}

	rendered := SummaryTable(s)
	if !strings.Contains(rendered, "/pics/sub") {
		t.Fatalf("expected directory row, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "/pics/empty") {
		t.Fatalf("directories without duplicates should be omitted, got:\n%s", rendered)
	}
	if !strings.Contains(rendered, "Commit, Verified") {
		t.Fatalf("expected mode title, got:\n%s", rendered)
	}
}

func TestSummaryModeDryRun(t *testing.T) {
	if got := (Summary{}).Mode(); got != "Dry Run" {
		t.Fatalf("Mode = %q", got)
	}
}

func TestTablePadsShortRowsAndSkipsEmptyHeaders(t *testing.T) {
	if got := (Table{}).Render(); got != "" {
		t.Fatalf("expected empty render without headers, got %q", got)
	}

	rendered := Table{
		Title:   "Runs",
		Headers: []string{"Run", "Removed", "Status"},
		Rows:    [][]string{{"abc", "2"}, {"def", "10", "ok"}},
		Align:   []Alignment{AlignLeft, AlignRight},
	}.Render()
	for _, want := range []string{"Runs", "abc", "def", " ok "} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in table:\n%s", want, rendered)
		}
	}
	// Right alignment pads the shorter value on the left.
	if !strings.Contains(rendered, "       2 │") {
		t.Fatalf("expected right-aligned Removed column:\n%s", rendered)
	}
}

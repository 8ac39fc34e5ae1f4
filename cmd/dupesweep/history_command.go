package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dupesweep/internal/history"
	"dupesweep/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled sweeps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			store, ok, err := openHistory(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderRuns(runs))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "List the files a journaled sweep removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, ok, err := openHistory(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("history journal does not exist")
			}
			defer store.Close()

			runID := strings.TrimSpace(args[0])
			removals, err := store.Removals(cmd.Context(), runID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(removals) == 0 {
				fmt.Fprintf(out, "No removals recorded for run %s\n", runID)
				return nil
			}
			rows := make([][]string, 0, len(removals))
			for _, r := range removals {
				rows = append(rows, []string{r.Outcome, r.Path})
			}
			fmt.Fprintln(out, report.Table{Headers: []string{"Outcome", "Path"}, Rows: rows}.Render())
			return nil
		},
	}
}

// openHistory opens the journal if its database file exists. A missing file
// is not an error: history may simply never have been enabled.
func openHistory(ctx *commandContext) (*history.Store, bool, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, false, err
	}
	if _, err := os.Stat(cfg.History.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("inspect history database: %w", err)
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, false, err
	}
	return store, true, nil
}

func renderRuns(runs []history.Run) string {
	headers := []string{"Run", "Started", "Mode", "Base", "Dirs", "Duplicates", "Removed", "Missing", "Status"}
	aligns := []report.Alignment{report.AlignLeft, report.AlignLeft, report.AlignLeft, report.AlignLeft, report.AlignRight, report.AlignRight, report.AlignRight, report.AlignRight, report.AlignLeft}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		mode := report.Summary{Commit: run.Commit, Verify: run.Verify}.Mode()
		if run.Recursive {
			mode += " (recursive)"
		}
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			mode,
			run.Base,
			strconv.Itoa(run.Directories),
			strconv.Itoa(run.Duplicates),
			strconv.Itoa(run.Removed),
			strconv.Itoa(run.Missing),
			runStatus(run),
		})
	}
	return report.Table{Headers: headers, Rows: rows, Align: aligns}.Render()
}

func runStatus(run history.Run) string {
	switch {
	case run.Error != "":
		return "failed: " + run.Error
	case run.FinishedAt.IsZero():
		return "incomplete"
	default:
		return "ok"
	}
}

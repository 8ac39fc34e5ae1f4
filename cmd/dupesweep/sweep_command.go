package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"dupesweep/internal/config"
	"dupesweep/internal/fileutil"
	"dupesweep/internal/history"
	"dupesweep/internal/logging"
	"dupesweep/internal/report"
	"dupesweep/internal/runlock"
	"dupesweep/internal/sweep"
)

func runSweep(cmd *cobra.Command, ctx *commandContext, flags *sweepFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := flags.apply(cmd.Flags(), cfg); err != nil {
		return err
	}
	base, err := flags.resolveBasePath(args)
	if err != nil {
		return err
	}
	hasher, err := fileutil.NewHasher(cfg.Scan.HashAlgorithm, cfg.Scan.ChunkSize)
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if !flags.skipCheck {
		delay := time.Duration(cfg.Safety.ConfirmDelaySeconds) * time.Second
		if err := confirmRun(runCtx, out, flags.commit, delay); err != nil {
			if errors.Is(err, errInterrupted) {
				fmt.Fprintln(out)
				fmt.Fprintln(out, interruptMessage)
				return nil
			}
			return err
		}
	}

	runID := uuid.NewString()
	runCtx = logging.WithRunID(runCtx, runID)
	cliLogger := logging.NewComponentLogger(logging.WithContext(runCtx, logger), "cli")

	if flags.commit {
		lock, err := runlock.Acquire(cfg.Safety.LockPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logging.WarnWithContext(cliLogger, "release run lock failed", "lock_release_failed",
					logging.String("lock_path", lock.Path()),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "remove the lock file if no other dupesweep run is active"),
				)
			}
		}()
	}

	walker := sweep.Walker{
		Options: sweep.Options{
			Extensions: cfg.Scan.Extensions,
			Marker:     cfg.Scan.Marker,
			Verify:     cfg.Scan.Verify,
			Commit:     flags.commit,
			Recursive:  cfg.Scan.Recursive,
		},
		Digester: hasher,
		Deleter:  fileutil.OSDeleter{},
		Reporter: report.NewConsole(out),
		Logger:   logger,
	}

	store, err := openJournal(runCtx, cfg, walker.Options, base, runID, cliLogger)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		walker.Journal = store.Journal(runID)
	}

	summary, runErr := walker.Run(runCtx, base)

	if store != nil {
		if err := store.FinishRun(context.WithoutCancel(runCtx), summary, runErr); err != nil {
			logging.WarnWithContext(cliLogger, "journal run totals failed", "history_finish_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the history database at "+store.Path()),
			)
		}
	}

	if runErr != nil {
		return runErr
	}
	if !flags.noSummary {
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.SummaryTable(summary))
	}
	return nil
}

func openJournal(ctx context.Context, cfg *config.Config, opts sweep.Options, base, runID string, logger *slog.Logger) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	info := history.RunInfo{
		ID:        runID,
		Base:      base,
		Commit:    opts.Commit,
		Verify:    opts.Verify,
		Recursive: opts.Recursive,
		Marker:    opts.Marker,
		StartedAt: time.Now(),
	}
	if err := store.BeginRun(ctx, info); err != nil {
		_ = store.Close()
		return nil, err
	}
	logger.Debug("history journal opened", logging.String("history_path", store.Path()))
	return store, nil
}

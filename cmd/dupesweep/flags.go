package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"dupesweep/internal/config"
)

type sweepFlags struct {
	basePath  string
	recursive bool
	verify    bool
	commit    bool
	skipCheck bool
	noSummary bool
	marker    string
	hash      string
	logLevel  string
	logFormat string
}

func bindSweepFlags(fs *pflag.FlagSet, f *sweepFlags) {
	fs.StringVarP(&f.basePath, "base-path", "b", "", "Base directory to search for duplicates in")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "Recursively search directories for files to remove")
	fs.BoolVar(&f.verify, "verify", false, "Verify file hashes between original file and duplicates")
	fs.BoolVar(&f.commit, "run", false, "Remove files; without this flag potential removals are only printed")
	fs.BoolVar(&f.skipCheck, "skip-check", false, "Skip the warning and countdown before the sweep starts")
	fs.BoolVar(&f.noSummary, "no-summary", false, "Do not print the summary table after the sweep")
	fs.StringVar(&f.marker, "marker", "", "Substring that marks a duplicate file name (default from config, a single space)")
	fs.StringVar(&f.hash, "hash", "", "Digest used by --verify: sha1 or sha256")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format override (console, json)")
}

// dashedFlagName lets --base_path and --skip_check parse as their dashed
// forms.
func dashedFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// apply copies explicitly set flags over the loaded configuration and
// re-validates the result.
func (f *sweepFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("recursive") {
		cfg.Scan.Recursive = f.recursive
	}
	if fs.Changed("verify") {
		cfg.Scan.Verify = f.verify
	}
	if fs.Changed("marker") {
		cfg.Scan.Marker = f.marker
	}
	if fs.Changed("hash") {
		cfg.Scan.HashAlgorithm = strings.ToLower(strings.TrimSpace(f.hash))
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(f.logLevel))
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(f.logFormat))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// resolveBasePath picks the base directory from --base-path or the single
// positional argument and checks that it is a directory.
func (f *sweepFlags) resolveBasePath(args []string) (string, error) {
	raw := strings.TrimSpace(f.basePath)
	if len(args) > 0 {
		if raw != "" && raw != args[0] {
			return "", errors.New("base path given both as --base-path and as an argument")
		}
		raw = args[0]
	}
	if raw == "" {
		return "", errors.New("a base path is required (--base-path or first argument)")
	}
	path, err := config.ExpandPath(raw)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("inspect base path %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("base path %q is not a directory", path)
	}
	return path, nil
}

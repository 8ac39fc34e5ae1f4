package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeScan()
	if err := c.normalizeSafety(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

// applyEnv overrides defaults from the environment. It runs before the file
// is decoded so file values win over the environment.
func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv("DUPESWEEP_MARKER"); ok && value != "" {
		c.Scan.Marker = value
	}
}

func (c *Config) normalizeScan() {
	// The marker is not trimmed: the default is a single space.
	if c.Scan.Marker == "" {
		c.Scan.Marker = defaultMarker
	}

	exts := make([]string, 0, len(c.Scan.Extensions))
	seen := make(map[string]struct{}, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = append(exts, DefaultExtensions...)
	}
	c.Scan.Extensions = exts

	c.Scan.HashAlgorithm = strings.ToLower(strings.TrimSpace(c.Scan.HashAlgorithm))
	if c.Scan.HashAlgorithm == "" {
		c.Scan.HashAlgorithm = defaultHashAlgorithm
	}
	if c.Scan.ChunkSize == 0 {
		c.Scan.ChunkSize = defaultChunkSize
	}
}

func (c *Config) normalizeSafety() error {
	if strings.TrimSpace(c.Safety.LockPath) == "" {
		c.Safety.LockPath = defaultLockPath
	}
	var err error
	if c.Safety.LockPath, err = expandPath(strings.TrimSpace(c.Safety.LockPath)); err != nil {
		return fmt.Errorf("safety.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(strings.TrimSpace(c.History.Path)); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateSafety(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.Marker == "" {
		return errors.New("scan.marker must not be empty")
	}
	if strings.ContainsAny(c.Scan.Marker, `/\`) {
		return fmt.Errorf("scan.marker %q must not contain a path separator", c.Scan.Marker)
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must include at least one extension")
	}
	for _, ext := range c.Scan.Extensions {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("scan.extensions: %q must not contain a path separator", ext)
		}
	}
	switch c.Scan.HashAlgorithm {
	case "sha1", "sha256":
	default:
		return fmt.Errorf("scan.hash_algorithm: unsupported value %q (want sha1 or sha256)", c.Scan.HashAlgorithm)
	}
	if c.Scan.ChunkSize <= 0 {
		return errors.New("scan.chunk_size must be positive")
	}
	return nil
}

func (c *Config) validateSafety() error {
	if c.Safety.ConfirmDelaySeconds < 0 {
		return errors.New("safety.confirm_delay_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

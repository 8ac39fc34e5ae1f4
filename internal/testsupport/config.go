package testsupport

import (
	"path/filepath"
	"testing"

	"dupesweep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose state paths (lock, history, logs) live in
// a per-test temp directory, with the confirmation delay disabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Safety.ConfirmDelaySeconds = 0
	cfgVal.Safety.LockPath = filepath.Join(base, "state", "dupesweep.lock")
	cfgVal.History.Path = filepath.Join(base, "state", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistory enables the run journal.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithVerify enables digest verification.
func WithVerify() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Verify = true
	}
}

// WithRecursive enables subdirectory traversal.
func WithRecursive() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.Recursive = true
	}
}

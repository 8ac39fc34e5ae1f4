// Package config loads, normalizes, and validates dupesweep configuration data.
//
// It supplies repository defaults (the media extension allow-list and the
// duplicate marker among them), expands user paths including tilde shortcuts,
// reads TOML files, and honours the DUPESWEEP_MARKER environment fallback.
// The Config type centralizes every knob the sweep and CLI need so scan,
// safety, history, and logging settings are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

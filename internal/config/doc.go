// Package config loads, normalizes, and validates tap configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// TAP_OUTPUT_DIR. Pipeline and Render turn the loose file values into the
// typed, immutable options the processing stages consume.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, known strategy names, and clear validation errors.
package config

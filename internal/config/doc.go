// Package config loads, normalizes, and validates wordfreq configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WORDFREQ_THRESHOLD. The Config type centralizes every knob the tokenizer,
// the counter, and the CLI need.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, a compilable token pattern, and clear validation errors.
package config

// Package services defines shared utilities consumed by the tokenizer, the
// counter, and the CLI that drives them.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and component names for
//     logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent process exit codes.
//
// Use these helpers when wiring new components so failure reporting stays
// uniform across commands.
package services

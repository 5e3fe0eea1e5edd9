// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the tokenizer ("tokenize"), the
// counter ("count"), both in sequence ("run"), a word-list checker
// ("verify"), and configuration scaffolding ("config"). It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on their output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main

// Package tokenizer extracts lowercase word tokens from a text corpus and
// writes them to the word-list file.
//
// A token is a maximal, non-overlapping, left-to-right match of the token
// pattern: one or more Unicode word characters, optionally followed by a
// single apostrophe and one or more word characters. Each match is lowercased
// and emitted in order of appearance. No filtering or deduplication happens.
package tokenizer

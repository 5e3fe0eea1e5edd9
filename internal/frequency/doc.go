// Package frequency counts word occurrences in a word-list file and reports
// the words whose count meets a threshold.
//
// Counting is a single linear pass: every line of the file is a key, used
// exactly as stored. Two table backends are available, the built-in map and
// the extendible hash table from package ehash; both produce identical
// counts.
package frequency

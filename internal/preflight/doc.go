// Package preflight provides readiness checks for the filesystem paths
// wordfreq depends on.
//
// The CLI "wordfreq config validate" command runs RunAll to report whether
// the corpus is readable and the word-list location is writable before a
// tokenize or count run is attempted. Checks never modify the filesystem.
package preflight

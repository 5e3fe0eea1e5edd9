package preflight

import (
	"path/filepath"

	"wordfreq/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckFileReadable("Corpus", cfg.Paths.Corpus),
		CheckDirectoryAccess("Word list directory", filepath.Dir(cfg.Paths.WordList)),
		CheckWordList("Word list", cfg.Paths.WordList),
	}
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}

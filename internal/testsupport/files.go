package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteText writes text to path, creating parent directories.
func WriteText(t testing.TB, path, text string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteRepeated writes a word list where each word appears counts[word]
// times. Words are interleaved round-robin so equal words are not adjacent.
func WriteRepeated(t testing.TB, path string, counts map[string]int) {
	t.Helper()

	remaining := make(map[string]int, len(counts))
	words := make([]string, 0, len(counts))
	for word, n := range counts {
		remaining[word] = n
		words = append(words, word)
	}

	var b strings.Builder
	for written := true; written; {
		written = false
		for _, word := range words {
			if remaining[word] == 0 {
				continue
			}
			b.WriteString(word)
			b.WriteByte('\n')
			remaining[word]--
			written = true
		}
	}
	WriteText(t, path, b.String())
}

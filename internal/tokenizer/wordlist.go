package tokenizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"

	"wordfreq/internal/services"
	"wordfreq/internal/wordlist"
)

const component = "tokenizer"

// Stats summarizes one tokenizer run.
type Stats struct {
	Corpus      string
	CorpusBytes int64
	Output      string
	Tokens      int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d tokens from %s (%s) to %s",
		s.Tokens, s.Corpus, humanize.Bytes(uint64(s.CorpusBytes)), s.Output)
}

// WriteWordList reads the corpus at src fully into memory, tokenizes it, and
// writes one token per line to dst, replacing any previous content.
func (t *Tokenizer) WriteWordList(src, dst string) (Stats, error) {
	stats := Stats{Corpus: src, Output: dst}

	text, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stats, services.Wrap(services.ErrNotFound, component, "read corpus", src, err)
		}
		return stats, services.Wrap(services.ErrIO, component, "read corpus", src, err)
	}
	stats.CorpusBytes = int64(len(text))

	w, err := wordlist.Create(dst)
	if err != nil {
		return stats, err
	}

	var writeErr error
	t.Each(string(text), func(token string) bool {
		writeErr = w.Write(token)
		return writeErr == nil
	})
	closeErr := w.Close()
	stats.Tokens = w.Lines()
	if writeErr != nil {
		return stats, writeErr
	}
	if closeErr != nil {
		return stats, closeErr
	}
	return stats, nil
}

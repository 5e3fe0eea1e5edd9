package testsupport

import (
	"path/filepath"
	"testing"

	"wordfreq/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config whose corpus and word list live in a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Corpus = filepath.Join(base, "corpus.txt")
	cfgVal.Paths.WordList = filepath.Join(base, "data.txt")

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCorpus writes text to the config's corpus path.
func WithCorpus(text string) ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		WriteText(b.t, b.cfg.Paths.Corpus, text)
	}
}

// WithThreshold sets the counter threshold.
func WithThreshold(threshold int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Counter.Threshold = threshold
	}
}

// WithTable selects the frequency table backend.
func WithTable(kind string, bucketCapacity int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Counter.Table = kind
		b.cfg.Counter.BucketCapacity = bucketCapacity
	}
}

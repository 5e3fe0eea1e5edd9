package config

const (
	defaultCorpus         = "shakespeare.txt"
	defaultWordList       = "data.txt"
	defaultPattern        = `[\p{L}\p{M}\p{N}_]+(?:'[\p{L}\p{M}\p{N}_]+)?`
	defaultLanguage       = "und"
	defaultThreshold      = 1024
	defaultTable          = TableMap
	defaultBucketCapacity = 64
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultLogOutput      = LogOutputStderr
)

// LogOutputStderr selects standard error as the log destination.
const LogOutputStderr = "stderr"

// Frequency table backends accepted by counter.table.
const (
	TableMap        = "map"
	TableExtendible = "extendible"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Corpus:   defaultCorpus,
			WordList: defaultWordList,
		},
		Tokenizer: Tokenizer{
			Pattern:  defaultPattern,
			Language: defaultLanguage,
		},
		Counter: Counter{
			Threshold:      defaultThreshold,
			Table:          defaultTable,
			BucketCapacity: defaultBucketCapacity,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
		},
	}
}

// DefaultPattern returns the built-in token pattern.
func DefaultPattern() string {
	return defaultPattern
}

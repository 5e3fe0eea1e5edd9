package frequency

import (
	"cmp"
	"slices"

	"wordfreq/internal/services"
	"wordfreq/internal/wordlist"
)

const (
	// DefaultThreshold is the minimum count a word needs to be reported.
	DefaultThreshold = 1024
	// DefaultBucketCapacity applies to the extendible backend when unset.
	DefaultBucketCapacity = 64
)

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Options configures a counter run.
type Options struct {
	Threshold      int
	Table          string
	BucketCapacity int
	// Words requests the qualifying words in the summary.
	Words bool
}

// Summary is the result of one counter run.
type Summary struct {
	Path       string      `json:"path"`
	Table      string      `json:"table"`
	Threshold  int         `json:"threshold"`
	Lines      int         `json:"lines"`
	Distinct   int         `json:"distinct"`
	Qualifying int         `json:"qualifying"`
	Words      []WordCount `json:"words,omitempty"`
}

// CountFile adds every line of the word-list file at path to table and
// returns the number of lines read.
func CountFile(path string, table Table) (int, error) {
	r, err := wordlist.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	for line := range r.Lines() {
		table.Add(line)
	}
	if err := r.Err(); err != nil {
		return r.Count(), err
	}
	return r.Count(), r.Close()
}

// CountAtLeast returns how many distinct words occur at least threshold times.
func CountAtLeast(table Table, threshold int) int {
	n := 0
	for _, count := range table.All() {
		if count >= threshold {
			n++
		}
	}
	return n
}

// Qualifying returns the words occurring at least threshold times, most
// frequent first and alphabetical among equal counts.
func Qualifying(table Table, threshold int) []WordCount {
	var words []WordCount
	for word, count := range table.All() {
		if count >= threshold {
			words = append(words, WordCount{Word: word, Count: count})
		}
	}
	slices.SortFunc(words, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return words
}

// Count runs the counter over the word-list file at path.
func Count(path string, opts Options) (Summary, error) {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Table == "" {
		opts.Table = KindMap
	}
	if opts.BucketCapacity == 0 {
		opts.BucketCapacity = DefaultBucketCapacity
	}
	summary := Summary{Path: path, Table: opts.Table, Threshold: opts.Threshold}

	table, err := NewTable(opts.Table, opts.BucketCapacity)
	if err != nil {
		return summary, services.Wrap(services.ErrValidation, "counter", "new table", "", err)
	}

	lines, err := CountFile(path, table)
	summary.Lines = lines
	if err != nil {
		return summary, err
	}

	summary.Distinct = table.Len()
	if opts.Words {
		summary.Words = Qualifying(table, opts.Threshold)
		summary.Qualifying = len(summary.Words)
	} else {
		summary.Qualifying = CountAtLeast(table, opts.Threshold)
	}
	return summary, nil
}

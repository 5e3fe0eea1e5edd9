package tokenizer

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPattern matches word characters with an optional internal apostrophe.
const DefaultPattern = `[\p{L}\p{M}\p{N}_]+(?:'[\p{L}\p{M}\p{N}_]+)?`

// Options configures a Tokenizer.
type Options struct {
	// Pattern overrides DefaultPattern.
	Pattern string
	// Language is the BCP 47 tag used for lowercasing; empty means "und".
	Language string
}

// Tokenizer splits text into lowercase tokens. It is not safe for concurrent
// use because the underlying caser keeps state between calls.
type Tokenizer struct {
	pattern *regexp.Regexp
	whole   *regexp.Regexp
	caser   cases.Caser
}

// New compiles the token pattern and prepares the lowercase mapping.
func New(opts Options) (*Tokenizer, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile token pattern: %w", err)
	}
	if re.MatchString("") {
		return nil, fmt.Errorf("token pattern %q matches the empty string", pattern)
	}
	whole, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile anchored token pattern: %w", err)
	}

	tag := language.Und
	if opts.Language != "" {
		if tag, err = language.Parse(opts.Language); err != nil {
			return nil, fmt.Errorf("parse language %q: %w", opts.Language, err)
		}
	}

	return &Tokenizer{
		pattern: re,
		whole:   whole,
		caser:   cases.Lower(tag),
	}, nil
}

// Pattern returns the source of the compiled token pattern.
func (t *Tokenizer) Pattern() string {
	return t.pattern.String()
}

// Tokenize returns every token in text, lowercased, in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	t.Each(text, func(token string) bool {
		tokens = append(tokens, token)
		return true
	})
	return tokens
}

// Each calls fn with every lowercased token in order until fn returns false.
func (t *Tokenizer) Each(text string, fn func(string) bool) {
	for _, loc := range t.pattern.FindAllStringIndex(text, -1) {
		if !fn(t.caser.String(text[loc[0]:loc[1]])) {
			return
		}
	}
}

// Match reports whether token, taken as a whole, matches the token pattern.
func (t *Tokenizer) Match(token string) bool {
	return t.whole.MatchString(token)
}

// Lower applies the tokenizer's lowercase mapping to s.
func (t *Tokenizer) Lower(s string) string {
	return t.caser.String(s)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const thresholdEnv = "WORDFREQ_THRESHOLD"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTokenizer()
	if err := c.normalizeCounter(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Corpus) == "" {
		c.Paths.Corpus = defaultCorpus
	}
	if c.Paths.Corpus, err = expandPath(strings.TrimSpace(c.Paths.Corpus)); err != nil {
		return fmt.Errorf("paths.corpus: %w", err)
	}
	if strings.TrimSpace(c.Paths.WordList) == "" {
		c.Paths.WordList = defaultWordList
	}
	if c.Paths.WordList, err = expandPath(strings.TrimSpace(c.Paths.WordList)); err != nil {
		return fmt.Errorf("paths.word_list: %w", err)
	}
	return nil
}

func (c *Config) normalizeTokenizer() {
	if c.Tokenizer.Pattern == "" {
		c.Tokenizer.Pattern = defaultPattern
	}
	c.Tokenizer.Language = strings.TrimSpace(c.Tokenizer.Language)
	if c.Tokenizer.Language == "" {
		c.Tokenizer.Language = defaultLanguage
	}
}

func (c *Config) normalizeCounter() error {
	if value, ok := os.LookupEnv(thresholdEnv); ok && strings.TrimSpace(value) != "" {
		threshold, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", thresholdEnv, value)
		}
		c.Counter.Threshold = threshold
	}
	c.Counter.Table = strings.ToLower(strings.TrimSpace(c.Counter.Table))
	if c.Counter.Table == "" {
		c.Counter.Table = defaultTable
	}
	if c.Counter.BucketCapacity == 0 {
		c.Counter.BucketCapacity = defaultBucketCapacity
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Output = strings.TrimSpace(c.Logging.Output)
	switch strings.ToLower(c.Logging.Output) {
	case "", LogOutputStderr:
		c.Logging.Output = LogOutputStderr
	default:
		output, err := expandPath(c.Logging.Output)
		if err != nil {
			return fmt.Errorf("logging.output: %w", err)
		}
		c.Logging.Output = output
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateCounter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Corpus == "" {
		return errors.New("paths.corpus must be set")
	}
	if c.Paths.WordList == "" {
		return errors.New("paths.word_list must be set")
	}
	if c.Paths.Corpus == c.Paths.WordList {
		return errors.New("paths.word_list must differ from paths.corpus")
	}
	return nil
}

func (c *Config) validateTokenizer() error {
	re, err := regexp.Compile(c.Tokenizer.Pattern)
	if err != nil {
		return fmt.Errorf("tokenizer.pattern: %w", err)
	}
	if re.MatchString("") {
		return errors.New("tokenizer.pattern must not match the empty string")
	}
	if _, err := language.Parse(c.Tokenizer.Language); err != nil {
		return fmt.Errorf("tokenizer.language: %w", err)
	}
	return nil
}

func (c *Config) validateCounter() error {
	if c.Counter.Threshold < 1 {
		return errors.New("counter.threshold must be at least 1")
	}
	switch c.Counter.Table {
	case TableMap, TableExtendible:
	default:
		return fmt.Errorf("counter.table: unsupported value %q (want %q or %q)", c.Counter.Table, TableMap, TableExtendible)
	}
	if c.Counter.BucketCapacity < 2 {
		return errors.New("counter.bucket_capacity must be at least 2")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Output {
	case "":
		return errors.New("logging.output must be set")
	case c.Paths.Corpus, c.Paths.WordList:
		return fmt.Errorf("logging.output: %s is already used as an input or output path", c.Logging.Output)
	}
	return nil
}

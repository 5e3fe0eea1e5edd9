package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wordfreq/internal/logging"
	"wordfreq/internal/services"
	"wordfreq/internal/tokenizer"
	"wordfreq/internal/wordlist"
)

// maxReportedLines bounds how many offending lines verify prints.
const maxReportedLines = 20

type badLine struct {
	number int
	text   string
	reason string
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every word-list line is a lowercase token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.commandConfig()
			if err != nil {
				return err
			}
			if err := pathOverride(cmd, "input", input, &cfg.Paths.WordList); err != nil {
				return err
			}
			logger := ctx.componentLogger(cmd.Context(), "verify")

			tok, err := tokenizer.New(tokenizer.Options{
				Pattern:  cfg.Tokenizer.Pattern,
				Language: cfg.Tokenizer.Language,
			})
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "verify", "init tokenizer", "", err)
			}

			r, err := wordlist.Open(cfg.Paths.WordList)
			if err != nil {
				return err
			}
			defer r.Close()

			var bad []badLine
			failures := 0
			for line := range r.Lines() {
				reason := checkLine(tok, line)
				if reason == "" {
					continue
				}
				failures++
				if len(bad) < maxReportedLines {
					bad = append(bad, badLine{number: r.Count(), text: line, reason: reason})
				}
			}
			if err := r.Err(); err != nil {
				return err
			}
			if err := r.Close(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if failures == 0 {
				logger.Info("word list verified", logging.Int("lines", r.Count()))
				fmt.Fprintf(out, "%s: %d lines ok\n", cfg.Paths.WordList, r.Count())
				return nil
			}

			rows := make([][]string, 0, len(bad))
			for _, b := range bad {
				rows = append(rows, []string{strconv.Itoa(b.number), strconv.Quote(b.text), b.reason})
			}
			fmt.Fprintln(out, renderTable([]string{"Line", "Text", "Problem"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
			if failures > len(bad) {
				fmt.Fprintf(out, "... and %d more\n", failures-len(bad))
			}
			logger.Warn("word list has invalid lines",
				logging.Int("lines", r.Count()),
				logging.Int("invalid", failures),
			)
			return services.Wrap(services.ErrValidation, "verify", "check lines",
				fmt.Sprintf("%d of %d lines in %s are not lowercase tokens", failures, r.Count(), cfg.Paths.WordList), nil)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Word-list file to verify (default paths.word_list)")
	return cmd
}

func checkLine(tok *tokenizer.Tokenizer, line string) string {
	switch {
	case line == "":
		return "empty line"
	case !tok.Match(line):
		return "does not match token pattern"
	case tok.Lower(line) != line:
		return "not lowercase"
	}
	return ""
}

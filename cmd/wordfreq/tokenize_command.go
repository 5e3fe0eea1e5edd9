package main

import (
	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/logging"
	"wordfreq/internal/services"
	"wordfreq/internal/tokenizer"
)

type tokenizeFlags struct {
	input  string
	output string
}

func (f *tokenizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Corpus to tokenize (default paths.corpus)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Word-list file to write (default paths.word_list)")
}

func (f *tokenizeFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if err := pathOverride(cmd, "input", f.input, &cfg.Paths.Corpus); err != nil {
		return err
	}
	return pathOverride(cmd, "output", f.output, &cfg.Paths.WordList)
}

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var flags tokenizeFlags

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Write one lowercase token per line from the corpus to the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.commandConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}
			if err := validateOverrides(cmd, &cfg); err != nil {
				return err
			}
			_, err = runTokenizer(cmd, ctx, &cfg)
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func runTokenizer(cmd *cobra.Command, ctx *commandContext, cfg *config.Config) (tokenizer.Stats, error) {
	logger := ctx.componentLogger(cmd.Context(), "tokenizer")

	tok, err := tokenizer.New(tokenizer.Options{
		Pattern:  cfg.Tokenizer.Pattern,
		Language: cfg.Tokenizer.Language,
	})
	if err != nil {
		return tokenizer.Stats{}, services.Wrap(services.ErrConfiguration, "tokenizer", "init", "", err)
	}

	logger.Debug("tokenizing corpus",
		logging.String("corpus", cfg.Paths.Corpus),
		logging.String("word_list", cfg.Paths.WordList),
		logging.String("pattern", tok.Pattern()),
	)
	stats, err := tok.WriteWordList(cfg.Paths.Corpus, cfg.Paths.WordList)
	if err != nil {
		logger.Error("tokenize failed", logging.Error(err))
		return stats, err
	}
	logger.Info("word list written",
		logging.Int("tokens", stats.Tokens),
		logging.Int64("corpus_bytes", stats.CorpusBytes),
		logging.String("summary", stats.String()),
	)
	return stats, nil
}

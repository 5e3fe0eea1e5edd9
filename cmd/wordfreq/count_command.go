package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/frequency"
	"wordfreq/internal/logging"
)

type countFlags struct {
	input          string
	threshold      int
	table          string
	bucketCapacity int
	list           bool
	json           bool

	// withInput is false when another flag set owns --input.
	withInput bool
}

func (f *countFlags) register(cmd *cobra.Command, withInput bool) {
	f.withInput = withInput
	if withInput {
		cmd.Flags().StringVarP(&f.input, "input", "i", "", "Word-list file to count (default paths.word_list)")
	}
	cmd.Flags().IntVarP(&f.threshold, "threshold", "t", 0, "Minimum occurrences for a word to qualify (default counter.threshold)")
	cmd.Flags().StringVar(&f.table, "table", "", "Frequency table backend: map or extendible (default counter.table)")
	cmd.Flags().IntVar(&f.bucketCapacity, "bucket-capacity", 0, "Bucket capacity for the extendible table (default counter.bucket_capacity)")
	cmd.Flags().BoolVarP(&f.list, "list", "l", false, "List qualifying words with their counts")
	cmd.Flags().BoolVar(&f.json, "json", false, "Emit the summary as JSON")
	cmd.MarkFlagsMutuallyExclusive("list", "json")
}

func (f *countFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if f.withInput {
		if err := pathOverride(cmd, "input", f.input, &cfg.Paths.WordList); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Counter.Threshold = f.threshold
	}
	if cmd.Flags().Changed("table") {
		cfg.Counter.Table = strings.ToLower(strings.TrimSpace(f.table))
	}
	if cmd.Flags().Changed("bucket-capacity") {
		cfg.Counter.BucketCapacity = f.bucketCapacity
	}
	return nil
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	var flags countFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print how many distinct words in the word list reach the threshold",
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
			summary, err := runCounter(cmd, ctx, &cfg, flags.list || flags.json)
			if err != nil {
				return err
			}
			return writeSummary(cmd, summary, flags)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func runCounter(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, words bool) (frequency.Summary, error) {
	logger := ctx.componentLogger(cmd.Context(), "counter")

	logger.Debug("counting word list",
		logging.String("word_list", cfg.Paths.WordList),
		logging.String("table", cfg.Counter.Table),
		logging.Int("threshold", cfg.Counter.Threshold),
	)
	summary, err := frequency.Count(cfg.Paths.WordList, frequency.Options{
		Threshold:      cfg.Counter.Threshold,
		Table:          cfg.Counter.Table,
		BucketCapacity: cfg.Counter.BucketCapacity,
		Words:          words,
	})
	if err != nil {
		logger.Error("count failed", logging.Error(err))
		return summary, err
	}
	logger.Info("word list counted",
		logging.Int("lines", summary.Lines),
		logging.Int("distinct", summary.Distinct),
		logging.Int("qualifying", summary.Qualifying),
	)
	return summary, nil
}

func writeSummary(cmd *cobra.Command, summary frequency.Summary, flags countFlags) error {
	switch {
	case flags.json:
		return writeJSON(cmd, summary)
	case flags.list:
		out := cmd.OutOrStdout()
		rows := make([][]string, 0, len(summary.Words))
		for i, wc := range summary.Words {
			rows = append(rows, []string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
		}
		if len(rows) > 0 {
			table := renderTable([]string{"#", "Word", "Count"}, rows, []columnAlignment{alignRight, alignLeft, alignRight})
			if _, err := fmt.Fprintln(out, table); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(out, summary.Qualifying)
		return err
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), summary.Qualifying)
		return err
	}
}

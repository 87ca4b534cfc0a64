package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goWordStats/corpuslib"
	"goWordStats/iolib"
	"goWordStats/wordcountlib"
)

type countOptions struct {
	words       int
	ignore      string
	frequencies bool
	totals      bool
	skipNumbers bool
	baseline    string
}

func newCountCmd(a *app) *cobra.Command {
	o := &countOptions{}

	cmd := &cobra.Command{
		Use:   "count [files...]",
		Short: "Count the frequency of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.words, "words", "w", 0, "Number of words to include in wordlist")
	f.StringVarP(&o.ignore, "ignore", "i", "", "Name of file containing list of words to ignore")
	f.BoolVarP(&o.frequencies, "frequencies", "f", false, "Display raw and relative frequencies with results")
	f.BoolP("case-insensitive", "c", false, "Count word frequencies case insensitively")
	f.BoolVarP(&o.totals, "totals", "t", false, "Show total number of words and unique words in text")
	f.Bool("stem", false, "Count english word stems instead of words")
	f.BoolVar(&o.skipNumbers, "skip-numbers", false, "Leave numbers out of the wordlist, they still count in the totals")
	f.StringVar(&o.baseline, "baseline", "", "Reference corpus in BNC all.num format to contrast frequencies with")

	return cmd
}

func runCount(cmd *cobra.Command, a *app, o *countOptions, args []string) error {
	files, err := inputFiles(nil, args)
	if err != nil {
		return err
	}

	ignores, err := iolib.LoadIgnores(o.ignore, a.cfg.Encoding)
	if err != nil {
		return err
	}
	for _, w := range a.cfg.IgnoreWords {
		ignores[w] = true
	}

	opts := wordcountlib.Options{
		Ignores:         ignores,
		CaseInsensitive: a.cfg.CaseInsensitive,
		Stem:            a.cfg.Stem,
		SkipNumbers:     o.skipNumbers,
		Limit:           o.words,
	}

	if o.baseline != "" {
		opts.Baseline, err = corpuslib.Load(o.baseline)
		if err != nil {
			return err
		}
		a.logger.Debug("baseline corpus loaded", zap.String("file", o.baseline), zap.Int("words", opts.Baseline.Len()))
	}

	result, err := wordcountlib.CountFiles(files, a.cfg.Encoding, opts, a.logger)
	if err != nil {
		return err
	}
	a.logger.Info("words counted", zap.Int("files", len(files)), zap.Int("total", result.Total), zap.Int("uniques", result.Uniques))

	// the baseline columns only make sense next to frequencies
	return a.output(cmd).Words(result, o.frequencies || o.baseline != "", o.totals)
}

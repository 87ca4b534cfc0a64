package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goWordStats/freqlib"
	"goWordStats/iolib"
	"goWordStats/plotlib"
	"goWordStats/stringlib"
)

type freqOptions struct {
	dictionary   string
	files        []string
	single       bool
	individually bool
	raw          bool
}

func newFreqCmd(a *app) *cobra.Command {
	o := &freqOptions{}

	cmd := &cobra.Command{
		Use:   "freq [files...]",
		Short: "Chunked frequency of dictionary words",
		Long:  "Split every document into blocks of chunk-size words and count how often the dictionary words occur in each block.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFreq(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.dictionary, "dictionary", "", "Words dictionary")
	f.StringSliceVar(&o.files, "files", nil, `List of files that must be analyzed, separated by commas. Example: "file1.txt,file2.txt"`)
	f.BoolVar(&o.single, "single-graph", false, "Analyze all documents as one set and plot a single graph")
	f.BoolVar(&o.individually, "plot-individually", false, "Count and plot each dictionary word individually")
	f.Int("chunk-size", freqlib.DefaultBlockSize, "Size of chunk in words")
	f.BoolVar(&o.raw, "count-raw", false, "Count raw frequency instead of relative")
	cmd.MarkFlagRequired("dictionary")

	return cmd
}

// documents reads files into named token streams
func documents(files []string, encoding string) ([]freqlib.Document, error) {
	texts, err := iolib.Files2strings(files, encoding)
	if err != nil {
		return nil, err
	}
	docs := make([]freqlib.Document, 0, len(texts))
	for _, t := range texts {
		docs = append(docs, freqlib.Document{Name: t.Name, Tokens: stringlib.Words(t.Text)})
	}
	return docs, nil
}

func runFreq(cmd *cobra.Command, a *app, o *freqOptions, args []string) error {
	files, err := inputFiles(o.files, args)
	if err != nil {
		return err
	}

	dict, err := iolib.LoadDictionary(o.dictionary, a.cfg.Encoding)
	if err != nil {
		return err
	}
	targets := freqlib.NewTargets(dict)
	if targets.Len() == 0 {
		a.logger.Warn("dictionary is empty, every count will be zero", zap.String("file", o.dictionary))
	}

	docs, err := documents(files, a.cfg.Encoding)
	if err != nil {
		return err
	}
	if o.single {
		docs = []freqlib.Document{freqlib.Merge(docs)}
	}

	opts := freqlib.Options{BlockSize: a.cfg.BlockSize, PerTarget: o.individually, Raw: o.raw}
	series, err := freqlib.CountDocuments(docs, targets, opts)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	for _, s := range series {
		a.logger.Info("document counted", zap.String("name", s.Name), zap.Int("blocks", len(s.Records)))
	}

	if err := a.output(cmd).Series(series); err != nil {
		return err
	}

	if a.plotPath != "" {
		paths, err := plotlib.SaveCharts(plotlib.FrequencyCharts(series, o.raw), a.plotPath, a.plotSize())
		if err != nil {
			return err
		}
		a.logPlots(paths)
	}

	return nil
}

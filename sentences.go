package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goWordStats/iolib"
	"goWordStats/nlplib"
	"goWordStats/plotlib"
	"goWordStats/statlib"
)

type sentenceOptions struct {
	files   []string
	single  bool
	compare bool
	showMax bool
	showMin bool
}

func newSentencesCmd(a *app) *cobra.Command {
	o := &sentenceOptions{}

	cmd := &cobra.Command{
		Use:   "sentences [files...]",
		Short: "Sentence length statistics",
		Long:  "Split documents into sentences and report min, average and max words per sentence for every chunk of chunk-size sentences.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSentences(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&o.files, "files", nil, "List of files that must be analyzed, separated by commas")
	f.BoolVar(&o.single, "single-graph", false, "Analyze all documents as one set")
	f.BoolVar(&o.compare, "compare", false, "Plot the averages of all files on one graph")
	f.Int("chunk-size", statlib.DefaultSentenceChunk, "Chunk size in sentences")
	f.BoolVar(&o.showMax, "max", false, "Show max line")
	f.BoolVar(&o.showMin, "min", false, "Show min line")

	return cmd
}

// readTexts loads the files, joining them into one text in single mode
func readTexts(files []string, encoding string, single bool) ([]iolib.NamedText, error) {
	texts, err := iolib.Files2strings(files, encoding)
	if err != nil {
		return nil, err
	}
	if !single {
		return texts, nil
	}

	names := make([]string, 0, len(texts))
	bodies := make([]string, 0, len(texts))
	for _, t := range texts {
		names = append(names, t.Name)
		bodies = append(bodies, t.Text)
	}
	return []iolib.NamedText{{Name: strings.Join(names, ", "), Text: strings.Join(bodies, " ")}}, nil
}

func runSentences(cmd *cobra.Command, a *app, o *sentenceOptions, args []string) error {
	files, err := inputFiles(o.files, args)
	if err != nil {
		return err
	}

	texts, err := readTexts(files, a.cfg.Encoding, o.single)
	if err != nil {
		return err
	}

	analyzer := nlplib.NewAnalyzer(a.logger)
	reports := make([]statlib.SentenceReport, 0, len(texts))
	for _, t := range texts {
		analyzer.WarnIfNotEnglish(t.Name, t.Text)

		report, err := statlib.SentenceStats(analyzer, t.Name, t.Text, a.cfg.SentenceChunk)
		if err != nil {
			return err
		}
		a.logger.Info("sentences analyzed", zap.String("name", t.Name), zap.Int("sentences", report.Summary.Sentences),
			zap.Int("chunks", len(report.Chunks)))
		reports = append(reports, report)
	}
	a.logger.Debug("parse cache", zap.Int("entries", analyzer.Cached()))

	if err := a.output(cmd).Sentences(reports, o.showMin, o.showMax); err != nil {
		return err
	}

	if a.plotPath != "" {
		charts := plotlib.SentenceCharts(reports, o.compare, o.showMin, o.showMax)
		paths, err := plotlib.SaveCharts(charts, a.plotPath, a.plotSize())
		if err != nil {
			return err
		}
		a.logPlots(paths)
	}

	return nil
}

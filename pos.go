package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goWordStats/nlplib"
	"goWordStats/plotlib"
	"goWordStats/statlib"
)

type posOptions struct {
	files  []string
	single bool
	raw    bool
}

func newPOSCmd(a *app) *cobra.Command {
	o := &posOptions{}

	cmd := &cobra.Command{
		Use:   "pos [files...]",
		Short: "Part-of-speech distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPOS(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&o.files, "files", nil, "List of files that must be analyzed, separated by commas")
	f.BoolVar(&o.single, "single-graph", false, "Analyze all documents as one set")
	f.BoolVar(&o.raw, "count-raw", false, "Count raw frequency instead of relative")

	return cmd
}

func runPOS(cmd *cobra.Command, a *app, o *posOptions, args []string) error {
	files, err := inputFiles(o.files, args)
	if err != nil {
		return err
	}

	texts, err := readTexts(files, a.cfg.Encoding, o.single)
	if err != nil {
		return err
	}

	analyzer := nlplib.NewAnalyzer(a.logger)
	reports := make([]statlib.POSReport, 0, len(texts))
	for _, t := range texts {
		analyzer.WarnIfNotEnglish(t.Name, t.Text)

		report, err := statlib.POSStats(analyzer, t.Name, t.Text, o.raw)
		if err != nil {
			return err
		}
		a.logger.Info("tagged", zap.String("name", t.Name), zap.Int("tokens", report.Total), zap.Int("tags", len(report.Tags)))
		if len(report.Tags) == 0 {
			a.logger.Warn("no words to tag", zap.String("name", t.Name))
		}
		reports = append(reports, report)
	}
	a.logger.Debug("parse cache", zap.Int("entries", analyzer.Cached()))

	if err := a.output(cmd).POS(reports, o.raw); err != nil {
		return err
	}

	if a.plotPath != "" {
		paths, err := plotlib.SavePOS(reports, a.plotPath, a.plotSize())
		if err != nil {
			return err
		}
		a.logPlots(paths)
	}

	return nil
}

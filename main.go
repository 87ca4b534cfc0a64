// Command wordstat computes word frequency and linguistic statistics over text files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"goWordStats/configlib"
	"goWordStats/iolib"
	"goWordStats/loglib"
	"goWordStats/outputlib"
	"goWordStats/plotlib"
)

const version = "wordstat v0.2.0"

// app is the state shared by the commands of one run
type app struct {
	v      *viper.Viper
	cfg    *configlib.Config
	logger *zap.Logger

	configPath string
	plotPath   string
	debug      bool
}

// flag names bound to config keys, per command
var flagKeys = map[string]map[string]string{
	"":          {"format": configlib.KeyFormat, "encoding": configlib.KeyEncoding, "verbose": configlib.KeyVerbose, "log-file": configlib.KeyLogFile, "chart-width": configlib.KeyChartWidth},
	"count":     {"case-insensitive": configlib.KeyCaseInsensitive, "stem": configlib.KeyStem},
	"freq":      {"chunk-size": configlib.KeyBlockSize},
	"sentences": {"chunk-size": configlib.KeySentenceChunk},
}

func (a *app) setup(cmd *cobra.Command) error {
	a.v = configlib.New()
	for _, scope := range []string{"", cmd.Name()} {
		for name, key := range flagKeys[scope] {
			if err := configlib.BindFlag(a.v, key, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
	}

	cfg, err := configlib.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = loglib.New(loglib.Options{Verbose: cfg.Verbose, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	if a.debug {
		goDebug.Print("config", cfg)
	}
	a.logger.Debug("config loaded", zap.String("file", a.v.ConfigFileUsed()), zap.Int("block_size", cfg.BlockSize),
		zap.Int("sentence_chunk_size", cfg.SentenceChunk), zap.String("encoding", cfg.Encoding), zap.String("format", cfg.Format))

	return nil
}

func (a *app) output(cmd *cobra.Command) *outputlib.Writer {
	return outputlib.New(cmd.OutOrStdout(), a.cfg.Format, a.cfg.ChartWidth)
}

func (a *app) plotSize() plotlib.Size {
	return plotlib.Size{Width: a.cfg.PlotWidth, Height: a.cfg.PlotHeight}
}

func (a *app) logPlots(paths []string) {
	for _, p := range paths {
		a.logger.Info("plot saved", zap.String("path", p))
	}
}

// inputFiles merges the comma separated --files values with positional args
func inputFiles(flagFiles []string, args []string) ([]string, error) {
	files := make([]string, 0, len(flagFiles)+len(args))
	for _, f := range append(append([]string{}, flagFiles...), args...) {
		for _, name := range strings.Split(f, ",") {
			if name = strings.TrimSpace(name); name != "" {
				files = append(files, name)
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	return files, iolib.CheckFiles(files)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "wordstat",
		Short:         "Word frequency and linguistic statistics over text files",
		Long:          "wordstat counts words, chunked dictionary frequencies, sentence lengths and part-of-speech distributions of text files, printing or plotting the results.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default ./wordstat.yaml when present)")
	pf.String("format", outputlib.FormatText, "Output format: text, table, tsv, json or chart")
	pf.String("encoding", iolib.EncodingUTF8, "Input files encoding: utf8 or latin1")
	pf.Int("chart-width", 50, "Width in cells of the longest bar of chart output")
	pf.StringVar(&a.plotPath, "plot", "", "Save charts to this image file (png, svg, pdf)")
	pf.BoolP("verbose", "v", false, "Debug logging")
	pf.String("log-file", "", "Also write logs to this file")
	pf.BoolVar(&a.debug, "debug", false, "Dump the resolved configuration")

	rootCmd.AddCommand(
		newCountCmd(a),
		newFreqCmd(a),
		newSentencesCmd(a),
		newPOSCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

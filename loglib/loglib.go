// Package loglib builds the zap logger shared by all commands
package loglib

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options drives New
type Options struct {
	Verbose bool   // debug level instead of warn
	File    string // extra output path, like the ./logs/*.log files of a crawl
}

// New returns a JSON logger on stderr plus the optional file
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if opts.File != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, opts.File)
	}

	return cfg.Build()
}

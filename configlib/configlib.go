// Package configlib loads settings from a YAML file, WORDSTAT_ environment variables and command flags
package configlib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"goWordStats/freqlib"
	"goWordStats/iolib"
	"goWordStats/statlib"
	"goWordStats/stringlib"
)

// Name of the config file looked up in the working directory (without extension)
const Name = "wordstat"

// Keys
const (
	KeyBlockSize       = "block_size"
	KeySentenceChunk   = "sentence_chunk_size"
	KeyEncoding        = "encoding"
	KeyFormat          = "format"
	KeyCaseInsensitive = "case_insensitive"
	KeyStem            = "stem"
	KeyVerbose         = "verbose"
	KeyLogFile         = "log_file"
	KeyChartWidth      = "chart_width"
	KeyPlotWidth       = "plot_width_in"
	KeyPlotHeight      = "plot_height_in"
	KeyIgnoreWords     = "ignore_words"
)

// Config is the resolved configuration of a run
type Config struct {
	BlockSize       int
	SentenceChunk   int
	Encoding        string
	Format          string
	CaseInsensitive bool
	Stem            bool
	Verbose         bool
	LogFile         string
	ChartWidth      int
	PlotWidth       float64
	PlotHeight      float64
	IgnoreWords     []string
}

// New returns a viper instance with defaults and env binding set
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyBlockSize, freqlib.DefaultBlockSize)
	v.SetDefault(KeySentenceChunk, statlib.DefaultSentenceChunk)
	v.SetDefault(KeyEncoding, iolib.EncodingUTF8)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyCaseInsensitive, false)
	v.SetDefault(KeyStem, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyChartWidth, 50)
	v.SetDefault(KeyPlotWidth, 8.0)
	v.SetDefault(KeyPlotHeight, 4.0)
	v.SetDefault(KeyIgnoreWords, "")

	v.SetEnvPrefix("WORDSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file. An explicit path must exist; without one the default
// file in the working directory is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}

	return Resolve(v)
}

// Resolve builds a Config from the current viper state and validates it
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		BlockSize:       v.GetInt(KeyBlockSize),
		SentenceChunk:   v.GetInt(KeySentenceChunk),
		Encoding:        strings.ToLower(v.GetString(KeyEncoding)),
		Format:          strings.ToLower(v.GetString(KeyFormat)),
		CaseInsensitive: v.GetBool(KeyCaseInsensitive),
		Stem:            v.GetBool(KeyStem),
		Verbose:         v.GetBool(KeyVerbose),
		LogFile:         v.GetString(KeyLogFile),
		ChartWidth:      v.GetInt(KeyChartWidth),
		PlotWidth:       v.GetFloat64(KeyPlotWidth),
		PlotHeight:      v.GetFloat64(KeyPlotHeight),
		IgnoreWords:     ignoreWords(v),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ignoreWords reads the ignore list either as a YAML sequence or as a `a|b|c` string
func ignoreWords(v *viper.Viper) []string {
	switch v.Get(KeyIgnoreWords).(type) {
	case []interface{}, []string:
		var out []string
		for _, item := range v.GetStringSlice(KeyIgnoreWords) {
			out = append(out, splitList(item)...)
		}
		return out
	}
	return splitList(v.GetString(KeyIgnoreWords))
}

// splitList turns a `a|b|c` list, possibly written over several lines, into words
func splitList(s string) []string {
	s = stringlib.RmNewLines(s)
	var out []string
	for _, w := range strings.Split(s, "|") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Validate checks values a run cannot work with
func (c *Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyBlockSize, c.BlockSize)
	}
	if c.SentenceChunk <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeySentenceChunk, c.SentenceChunk)
	}
	switch c.Encoding {
	case iolib.EncodingUTF8, iolib.EncodingLatin1:
	default:
		return fmt.Errorf("%s: unsupported encoding %q", KeyEncoding, c.Encoding)
	}
	switch c.Format {
	case "text", "table", "tsv", "json", "chart":
	default:
		return fmt.Errorf("%s: unknown output format %q", KeyFormat, c.Format)
	}
	if c.ChartWidth <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyChartWidth, c.ChartWidth)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("plot size must be positive, got %.1fx%.1f", c.PlotWidth, c.PlotHeight)
	}
	return nil
}

// BindFlag maps a command flag onto a config key when the flag exists
func BindFlag(v *viper.Viper, key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return v.BindPFlag(key, flag)
}

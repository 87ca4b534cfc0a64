// Package wordcountlib counts how many times each word appears in text files
package wordcountlib

import (
	"bufio"
	"strings"

	"go.uber.org/zap"

	"goWordStats/corpuslib"
	"goWordStats/freqlib"
	"goWordStats/iolib"
	"goWordStats/stringlib"
)

// Options drives Count
type Options struct {
	Ignores         map[string]bool   // words skipped after counting them in the total, normalized like the text
	CaseInsensitive bool              // lowercase every word
	Stem            bool              // replace words with their english stem
	SkipNumbers     bool              // skip numbers after counting them in the total
	Limit           int               // max entries returned, 0 for all
	Baseline        *corpuslib.Corpus // optional reference corpus
}

// Entry is one word of the result
type Entry struct {
	Word     string  `json:"word"`
	Count    int     `json:"count"`
	Relative float64 `json:"relative"`
	Baseline float64 `json:"baseline,omitempty"`
	Keyness  float64 `json:"keyness,omitempty"`
	Tag      string  `json:"tag,omitempty"` // part of speech in the baseline corpus
}

// Result is the sorted word list plus totals
type Result struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`   // words seen, ignored ones included
	Uniques int     `json:"uniques"` // distinct words counted
}

// Counter accumulates word frequencies over several texts
type Counter struct {
	opts   Options
	freq   freqlib.Table
	total  int
	logger *zap.Logger
}

// New returns an empty counter
func New(opts Options, logger *zap.Logger) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Counter{opts: opts, freq: make(freqlib.Table), logger: logger}
	c.opts.Ignores = c.ignores(opts.Ignores)
	return c
}

func (c *Counter) fold(word string) string {
	word = stringlib.StripPunctuation(word)
	if c.opts.CaseInsensitive {
		word = strings.ToLower(word)
	}
	return word
}

func (c *Counter) normalize(word string) string {
	word = c.fold(word)
	if c.opts.Stem {
		word = stringlib.Stem(word)
	}
	return word
}

// ignores brings the ignore list to the form words take after normalize,
// so "running" also drops "run" when stemming
func (c *Counter) ignores(list map[string]bool) map[string]bool {
	words := make([]string, 0, len(list))
	for w, ok := range list {
		if w = c.fold(w); ok && w != "" {
			words = append(words, w)
		}
	}
	if c.opts.Stem {
		words = stringlib.StemmerFilter(words)
	}

	r := make(map[string]bool, len(words))
	for _, w := range words {
		r[w] = true
	}
	return r
}

// Add processes text line by line and word by word
func (c *Counter) Add(text string) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		for _, word := range strings.Fields(scanner.Text()) {
			word = c.normalize(word)
			if word == "" {
				continue
			}

			c.total++

			if c.opts.Ignores[word] {
				continue
			}
			if c.opts.SkipNumbers && stringlib.IsNumeric(word) {
				continue
			}
			c.freq.Add(word)
		}
	}
}

// Result returns the words by count descending, with relative frequencies over the total
func (c *Counter) Result() Result {
	sorted := c.freq.Sorted()
	uniques := len(sorted)
	if c.opts.Limit > 0 && c.opts.Limit < len(sorted) {
		sorted = sorted[:c.opts.Limit]
	}

	entries := make([]Entry, 0, len(sorted))
	for _, kv := range sorted {
		e := Entry{Word: kv.Key, Count: kv.Value}
		if c.total > 0 {
			e.Relative = float64(kv.Value) / float64(c.total)
		}
		if c.opts.Baseline != nil {
			e.Baseline = c.opts.Baseline.Relative(kv.Key)
			e.Keyness = corpuslib.Keyness(e.Relative, e.Baseline)
			if info, ok := c.opts.Baseline.Info(kv.Key); ok {
				e.Tag = info.POStagging
			}
		}
		entries = append(entries, e)
	}

	return Result{Entries: entries, Total: c.total, Uniques: uniques}
}

// CountFiles reads and counts every file in order
func CountFiles(filenames []string, encoding string, opts Options, logger *zap.Logger) (Result, error) {
	c := New(opts, logger)
	for _, filename := range filenames {
		text, err := iolib.File2string(filename, encoding)
		if err != nil {
			return Result{}, err
		}
		before := c.total
		c.Add(text)
		c.logger.Debug("counted file", zap.String("file", filename), zap.Int("words", c.total-before))
	}
	return c.Result(), nil
}

// Package freqlib counts target word occurrences over fixed-size blocks of a token stream
// and keeps sorted token frequency tables.
package freqlib

import (
	"errors"
	"strings"
)

// DefaultBlockSize is the number of tokens per block when none is configured
const DefaultBlockSize = 5000

// ErrInvalidBlockSize is returned when the block size is not positive
var ErrInvalidBlockSize = errors.New("freqlib: block size must be positive")

// Options drives Count.
type Options struct {
	BlockSize int  // tokens per block
	PerTarget bool // one value per target word instead of a single aggregate
	Raw       bool // raw counts instead of counts divided by BlockSize
}

// DefaultOptions returns relative aggregate counting over DefaultBlockSize blocks
func DefaultOptions() Options {
	return Options{BlockSize: DefaultBlockSize}
}

// Record is the frequency of one block
type Record struct {
	Index  int       `json:"index"`
	Start  int       `json:"start"` // offset of the first token in the stream
	Len    int       `json:"len"`   // tokens in the block, < BlockSize only for the last one
	Values []float64 `json:"values"`
}

// Targets is the set of tokens being counted. Order is the order of first appearance,
// which gives the column order of per-target vectors.
type Targets struct {
	words []string
	index map[string]int
}

// NewTargets builds a target set, dropping duplicates
func NewTargets(words []string) Targets {
	t := Targets{index: make(map[string]int, len(words))}
	for _, w := range words {
		if _, ok := t.index[w]; ok {
			continue
		}
		t.index[w] = len(t.words)
		t.words = append(t.words, w)
	}
	return t
}

// Words returns the targets in column order
func (t Targets) Words() []string {
	return append([]string(nil), t.words...)
}

// Len is the number of distinct targets
func (t Targets) Len() int {
	return len(t.words)
}

// Contains tells whether token is a target
func (t Targets) Contains(token string) bool {
	_, ok := t.index[token]
	return ok
}

// Count partitions tokens into consecutive blocks of opts.BlockSize and counts targets in each.
// Relative values are divided by the configured block size, also for a shorter last block.
func Count(tokens []string, targets Targets, opts Options) ([]Record, error) {
	if opts.BlockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	records := make([]Record, 0, (len(tokens)+opts.BlockSize-1)/opts.BlockSize)
	for start := 0; start < len(tokens); start += opts.BlockSize {
		end := start + opts.BlockSize
		if end > len(tokens) {
			end = len(tokens)
		}
		block := tokens[start:end]

		var values []float64
		if opts.PerTarget {
			values = make([]float64, targets.Len())
			for _, token := range block {
				if i, ok := targets.index[token]; ok {
					values[i]++
				}
			}
		} else {
			n := 0
			for _, token := range block {
				if targets.Contains(token) {
					n++
				}
			}
			values = []float64{float64(n)}
		}

		if !opts.Raw {
			for i := range values {
				values[i] /= float64(opts.BlockSize)
			}
		}

		records = append(records, Record{Index: len(records), Start: start, Len: len(block), Values: values})
	}

	return records, nil
}

// Document is a named token stream
type Document struct {
	Name   string
	Tokens []string
}

// Merge analyzes all documents as one set: tokens are concatenated in order and names joined
func Merge(docs []Document) Document {
	names := make([]string, 0, len(docs))
	total := 0
	for _, d := range docs {
		names = append(names, d.Name)
		total += len(d.Tokens)
	}

	tokens := make([]string, 0, total)
	for _, d := range docs {
		tokens = append(tokens, d.Tokens...)
	}

	return Document{Name: strings.Join(names, ", "), Tokens: tokens}
}

// Series is the ordered block frequencies of one document
type Series struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// CountDocuments runs Count over every document, keeping input order
func CountDocuments(docs []Document, targets Targets, opts Options) ([]Series, error) {
	columns := []string{"all"}
	if opts.PerTarget {
		columns = targets.Words()
	}

	series := make([]Series, 0, len(docs))
	for _, d := range docs {
		records, err := Count(d.Tokens, targets, opts)
		if err != nil {
			return nil, err
		}
		series = append(series, Series{Name: d.Name, Columns: columns, Records: records})
	}
	return series, nil
}

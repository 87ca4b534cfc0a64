// Package statlib computes sentence length statistics and part-of-speech distributions
package statlib

import (
	"errors"

	"goWordStats/stringlib"
)

// DefaultSentenceChunk is the number of sentences per chunk when none is configured
const DefaultSentenceChunk = 10

// ErrInvalidChunkSize is returned when the chunk size is not positive
var ErrInvalidChunkSize = errors.New("statlib: chunk size must be positive")

// SentenceStat summarizes the number of words per sentence
type SentenceStat struct {
	Max       int     `json:"max"`
	Min       int     `json:"min"`
	Avg       float64 `json:"avg"`
	Sentences int     `json:"sentences"`
}

// SentenceReport holds per-chunk stats of one document and its overall summary
type SentenceReport struct {
	Name    string         `json:"name"`
	Chunks  []SentenceStat `json:"chunks"`
	Summary SentenceStat   `json:"summary"`
}

// SentenceLengths returns the number of word tokens of every sentence
func SentenceLengths(sentences []string) []int {
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = stringlib.TokensCount(s)
	}
	return lengths
}

// Summarize computes max, min and average of lengths. No lengths gives a zero stat.
func Summarize(lengths []int) SentenceStat {
	if len(lengths) == 0 {
		return SentenceStat{}
	}

	st := SentenceStat{Max: lengths[0], Min: lengths[0], Sentences: len(lengths)}
	sum := 0
	for _, n := range lengths {
		if n > st.Max {
			st.Max = n
		}
		if n < st.Min {
			st.Min = n
		}
		sum += n
	}
	st.Avg = float64(sum) / float64(len(lengths))

	return st
}

// ChunkSentences summarizes consecutive groups of chunk sentences; the last group may be smaller
func ChunkSentences(lengths []int, chunk int) ([]SentenceStat, error) {
	if chunk <= 0 {
		return nil, ErrInvalidChunkSize
	}

	stats := make([]SentenceStat, 0, (len(lengths)+chunk-1)/chunk)
	for x := 0; x < len(lengths); x += chunk {
		end := x + chunk
		if end > len(lengths) {
			end = len(lengths)
		}
		stats = append(stats, Summarize(lengths[x:end]))
	}

	return stats, nil
}

// Segmenter splits a text into sentences
type Segmenter interface {
	Sentences(key, text string) ([]string, error)
}

// SentenceStats builds the report of one named text
func SentenceStats(seg Segmenter, name, text string, chunk int) (SentenceReport, error) {
	if chunk <= 0 {
		return SentenceReport{}, ErrInvalidChunkSize
	}

	sentences, err := seg.Sentences(name, text)
	if err != nil {
		return SentenceReport{}, err
	}

	lengths := SentenceLengths(sentences)
	chunks, err := ChunkSentences(lengths, chunk)
	if err != nil {
		return SentenceReport{}, err
	}

	return SentenceReport{Name: name, Chunks: chunks, Summary: Summarize(lengths)}, nil
}

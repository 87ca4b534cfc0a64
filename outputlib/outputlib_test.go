package outputlib

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goWordStats/freqlib"
	"goWordStats/statlib"
	"goWordStats/wordcountlib"
)

var wordResult = wordcountlib.Result{
	Entries: []wordcountlib.Entry{
		{Word: "the", Count: 2, Relative: 0.5},
		{Word: "cat", Count: 1, Relative: 0.25},
	},
	Total:   4,
	Uniques: 3,
}

var series = []freqlib.Series{{
	Name:    "a.txt",
	Columns: []string{"all"},
	Records: []freqlib.Record{
		{Index: 0, Start: 0, Len: 2, Values: []float64{0.5}},
		{Index: 1, Start: 2, Len: 1, Values: []float64{0}},
	},
}}

func render(t *testing.T, format string, fn func(w *Writer) error) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(New(&buf, format, 10)))
	return buf.String()
}

func TestWordsText(t *testing.T) {
	plain := render(t, FormatText, func(w *Writer) error { return w.Words(wordResult, false, false) })
	assert.Equal(t, "the\ncat\n", plain)

	withFreq := render(t, FormatText, func(w *Writer) error { return w.Words(wordResult, true, true) })
	lines := strings.Split(strings.TrimSpace(withFreq), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"the", "2", "0.5"}, strings.Fields(lines[0]))
	assert.Equal(t, "Total words: 4", lines[2])
	assert.Equal(t, "Total unique words: 3", lines[3])
}

func TestWordsTable(t *testing.T) {
	out := render(t, FormatTable, func(w *Writer) error { return w.Words(wordResult, true, false) })
	assert.Contains(t, out, "WORD")
	assert.Contains(t, out, "the")
	assert.Contains(t, out, "0.25")
}

func TestWordsBaselineColumns(t *testing.T) {
	r := wordcountlib.Result{Entries: []wordcountlib.Entry{
		{Word: "covid", Count: 3, Relative: 0.3, Baseline: 0.001, Keyness: 300, Tag: "nn1"},
		{Word: "zoonosis", Count: 1, Relative: 0.1, Keyness: 1e8},
	}}
	out := render(t, FormatTSV, func(w *Writer) error { return w.Words(r, true, false) })
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name\tword\tcount\trelative\tbaseline\tkeyness\ttag", lines[0])
	assert.Equal(t, "\tcovid\t3\t0.3\t0.001\t300.000\tnn1", lines[1])
	assert.Equal(t, "\tzoonosis\t1\t0.1\t0\t100000000.000\t-", lines[2])

	text := render(t, FormatText, func(w *Writer) error { return w.Words(r, true, false) })
	assert.Equal(t, "nn1", strings.Fields(strings.Split(text, "\n")[0])[5])
}

func TestWordsJSON(t *testing.T) {
	out := render(t, FormatJSON, func(w *Writer) error { return w.Words(wordResult, false, true) })

	var got wordcountlib.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, wordResult, got)
}

func TestSeriesTSV(t *testing.T) {
	out := render(t, FormatTSV, func(w *Writer) error { return w.Series(series) })
	assert.Equal(t, "name\tblock\tlen\tall\na.txt\t0\t2\t0.5\na.txt\t1\t1\t0\n", out)
}

func TestSeriesText(t *testing.T) {
	out := render(t, FormatText, func(w *Writer) error { return w.Series(series) })
	assert.Equal(t, "a.txt\n# block\tlen\tall\n0\t2\t0.5\n1\t1\t0\n", out)
}

func TestSeriesChart(t *testing.T) {
	out := render(t, FormatChart, func(w *Writer) error { return w.Series(series) })
	assert.Contains(t, out, "a.txt: all")
	assert.Contains(t, out, "block 0")
	assert.Contains(t, out, strings.Repeat("█", 10))
	assert.NotContains(t, out, strings.Repeat("█", 11))
}

func TestSentences(t *testing.T) {
	reports := []statlib.SentenceReport{{
		Name:    "a.txt",
		Chunks:  []statlib.SentenceStat{{Max: 4, Min: 2, Avg: 3, Sentences: 2}},
		Summary: statlib.SentenceStat{Max: 4, Min: 2, Avg: 3, Sentences: 2},
	}}

	out := render(t, FormatText, func(w *Writer) error { return w.Sentences(reports, true, false) })
	assert.Equal(t, "a.txt\n# chunk\tsentences\tavg\tmin\n0\t2\t3.00\t2\nall\t2\t3.00\t2\n", out)

	chart := render(t, FormatChart, func(w *Writer) error { return w.Sentences(reports, true, true) })
	assert.Contains(t, chart, "avg. num. of words in sentence (3.00)")
	assert.Contains(t, chart, "min num. of words in sentence (2)")
	assert.Contains(t, chart, "max num. of words in sentence (4)")
}

func TestPOS(t *testing.T) {
	reports := []statlib.POSReport{{Name: "a.txt", Total: 4, Tags: []statlib.TagShare{{Tag: "NN", Value: 0.75}, {Tag: "DT", Value: 0.25}}}}

	out := render(t, FormatText, func(w *Writer) error { return w.POS(reports, false) })
	assert.Equal(t, "a.txt\n# tag\tshare\nNN\t0.7500\nDT\t0.2500\n", out)
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, "xml", 10).Series(series)
	assert.Error(t, err)
}

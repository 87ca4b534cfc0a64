package wordcountlib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goWordStats/corpuslib"
	"goWordStats/iolib"
)

func words(r Result) []string {
	out := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Word)
	}
	return out
}

func TestCounterBasics(t *testing.T) {
	c := New(Options{}, nil)
	c.Add("The cat, the dog.\nThe end -- fin")

	r := c.Result()
	assert.Equal(t, 7, r.Total, "dash-only words are dropped")
	assert.Equal(t, 6, r.Uniques)
	assert.Equal(t, []string{"The", "the", "fin", "end", "dog", "cat"}, words(r))
	assert.Equal(t, 2, r.Entries[0].Count)
	assert.InDelta(t, 2.0/7.0, r.Entries[0].Relative, 1e-12)
}

func TestCounterCaseInsensitive(t *testing.T) {
	c := New(Options{CaseInsensitive: true}, nil)
	c.Add("The the THE cat")

	r := c.Result()
	require.NotEmpty(t, r.Entries)
	assert.Equal(t, Entry{Word: "the", Count: 3, Relative: 0.75}, r.Entries[0])
}

func TestCounterIgnoresStillCountInTotal(t *testing.T) {
	c := New(Options{CaseInsensitive: true, Ignores: map[string]bool{"the": true}}, nil)
	c.Add("The cat and the hat")

	r := c.Result()
	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 3, r.Uniques)
	assert.NotContains(t, words(r), "the")
	assert.InDelta(t, 0.2, r.Entries[0].Relative, 1e-12)
}

func TestCounterIgnoresAreStemmed(t *testing.T) {
	c := New(Options{Stem: true, CaseInsensitive: true, Ignores: map[string]bool{"Running": true, "the.": true}}, nil)
	c.Add("The dog runs, the cat ran. Running dogs")

	r := c.Result()
	assert.Equal(t, 8, r.Total)
	assert.NotContains(t, words(r), "run")
	assert.NotContains(t, words(r), "the")
	assert.Equal(t, []string{"dog", "ran", "cat"}, words(r))
}

func TestCounterSkipNumbers(t *testing.T) {
	c := New(Options{SkipNumbers: true}, nil)
	c.Add("In 2020, 3.5 million cases; 1,000 deaths. Infinity")

	r := c.Result()
	assert.Equal(t, 8, r.Total, "numbers still count in the total")
	assert.Equal(t, []string{"million", "deaths", "cases", "Infinity", "In"}, words(r))
}

func TestCounterLimit(t *testing.T) {
	c := New(Options{Limit: 2}, nil)
	c.Add("a a a b b c")

	r := c.Result()
	assert.Equal(t, []string{"a", "b"}, words(r))
	assert.Equal(t, 3, r.Uniques, "uniques ignore the limit")
}

func TestCounterStem(t *testing.T) {
	c := New(Options{Stem: true, CaseInsensitive: true}, nil)
	c.Add("Running runs runner")

	r := c.Result()
	require.NotEmpty(t, r.Entries)
	assert.Equal(t, "run", r.Entries[0].Word)
	assert.Equal(t, 2, r.Entries[0].Count)
}

func TestCounterBaseline(t *testing.T) {
	baseline, err := corpuslib.Parse(strings.NewReader("10 !!WHOLE_CORPUS !!ANY 1\n5 the at0 1\n"))
	require.NoError(t, err)

	c := New(Options{Baseline: baseline}, nil)
	c.Add("the virus")

	r := c.Result()
	require.Len(t, r.Entries, 2)
	byWord := map[string]Entry{}
	for _, e := range r.Entries {
		byWord[e.Word] = e
	}
	assert.InDelta(t, 0.5, byWord["the"].Baseline, 1e-12)
	assert.InDelta(t, 1.0, byWord["the"].Keyness, 1e-6)
	assert.Equal(t, "at0", byWord["the"].Tag)
	assert.Zero(t, byWord["virus"].Baseline)
	assert.Empty(t, byWord["virus"].Tag)
	assert.Greater(t, byWord["virus"].Keyness, 1000.0)
}

func TestCounterEmpty(t *testing.T) {
	r := New(Options{}, nil).Result()
	assert.Empty(t, r.Entries)
	assert.Zero(t, r.Total)
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("a b"), 0644))
	require.NoError(t, os.WriteFile(two, []byte("a"), 0644))

	r, err := CountFiles([]string{one, two}, iolib.EncodingUTF8, Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total)
	assert.Equal(t, "a", r.Entries[0].Word)

	_, err = CountFiles([]string{filepath.Join(dir, "missing.txt")}, iolib.EncodingUTF8, Options{}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

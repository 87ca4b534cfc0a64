package nlplib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	a := NewAnalyzer(nil)

	sentences, err := a.Sentences("doc", "The cat sat on the mat. The dog barked loudly! Did anyone hear it?")
	require.NoError(t, err)
	assert.Len(t, sentences, 3)
	assert.Equal(t, 1, a.Cached())

	again, err := a.Sentences("doc", "ignored because the key is cached")
	require.NoError(t, err)
	assert.Equal(t, sentences, again)
}

func TestSentencesEmpty(t *testing.T) {
	sentences, err := NewAnalyzer(nil).Sentences("empty", "")
	require.NoError(t, err)
	assert.Empty(t, sentences)
}

func TestTags(t *testing.T) {
	a := NewAnalyzer(nil)

	tags, err := a.Tags("doc", []string{"The", "cat", "sat", "on", "the", "mat"})
	require.NoError(t, err)
	require.Len(t, tags, 6)
	assert.Equal(t, "DT", tags[0])
	assert.Equal(t, "NN", tags[1])
	assert.Equal(t, "IN", tags[3])
}

func TestTagsEmpty(t *testing.T) {
	tags, err := NewAnalyzer(nil).Tags("empty", nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLanguage(t *testing.T) {
	a := NewAnalyzer(nil)
	text := "It was the best of times, it was the worst of times, it was the age of wisdom, " +
		"it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity."
	assert.Equal(t, English, a.Language(text))
}

package stringlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"punctuation only", "... -- !!", []string{}},
		{"simple sentence", "The quick, brown fox!", []string{"The", "quick", "brown", "fox"}},
		{"underscore and digits", "snake_case 42 x1", []string{"snake_case", "42", "x1"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"unicode letters", "niño über", []string{"niño", "über"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestWordsLowercases(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "a"}, Words("A b. a"))
	assert.Equal(t, 3, TokensCount("A b. a"))
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "hello", StripPunctuation("«hello!»"))
	assert.Equal(t, "dont", StripPunctuation("don't"))
	assert.Equal(t, "", StripPunctuation("--"))
	assert.Equal(t, "a+b", StripPunctuation("(a+b)"), "math symbols are not punctuation")
}

func TestStemmerFilter(t *testing.T) {
	assert.Equal(t, []string{"run", "cat", ""}, StemmerFilter([]string{"running", "cats", ""}))
	assert.Equal(t, "run", Stem("runs"))
}

func TestRmNewLines(t *testing.T) {
	assert.Equal(t, "a|b|c", RmNewLines("a|\nb|\r\nc"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("33"))
	assert.True(t, IsNumeric("3.5"))
	assert.True(t, IsNumeric("1e3"))
	assert.False(t, IsNumeric("hello world"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("inf"))
	assert.False(t, IsNumeric("NaN"))
}

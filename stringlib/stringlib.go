// Package stringlib provides tokenizing and string filters beyond goLang primitives
package stringlib

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var reNewLines = regexp.MustCompile(`(\r?\n+)`)

// RmNewLines removes any newline found on the input string
func RmNewLines(t string) string {
	return reNewLines.ReplaceAllString(t, "")
}

// IsNumeric reports whether s is a finite number such as 42, 3.5 or 1e3. Words spelling
// NaN or Inf are not numbers here.
func IsNumeric(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

/***************************************************************************************************************
****************************************************************************************************************
* TOKENIZER ****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// isWordRune matches the \w class: letters, numbers and underscore
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// Tokenize splits the text on word boundaries and drops punctuation marks
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

// TokensCount returns the number of word tokens in text
func TokensCount(text string) int {
	return len(Tokenize(text))
}

// Words tokenizes and lowercases text, the token stream used by frequency counting
func Words(text string) []string {
	return LowercaseFilter(Tokenize(text))
}

// LowercaseFilter returns a lowercased copy of tokens
func LowercaseFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

// Stem returns the english snowball stem of word; the empty word stays empty
func Stem(word string) string {
	if word == "" {
		return word
	}
	return snowballeng.Stem(word, false)
}

// StemmerFilter returns the english snowball stem of every token
func StemmerFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = Stem(token)
	}
	return r
}

// IsPunctuation reports whether r belongs to any of the Unicode punctuation categories
func IsPunctuation(r rune) bool {
	return unicode.In(r, unicode.Pc, unicode.Pd, unicode.Pe, unicode.Pf, unicode.Pi, unicode.Po, unicode.Ps)
}

// StripPunctuation removes any punctuation character from the text
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, text)
}

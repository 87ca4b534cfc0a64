// Package nlplib wraps sentence segmentation, part-of-speech tagging and language detection
package nlplib

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrisport/go-lang-detector/langdet/langdetdef"
	"github.com/jdkato/prose/v2"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// English is the language the segmenter and tagger models are trained on
const English = "english"

// Analyzer runs prose over texts, keeping parse results so a text is never parsed twice in a run
type Analyzer struct {
	cache   *cache.Cache
	closest func(text string) string
	logger  *zap.Logger
}

// NewAnalyzer returns an analyzer with an empty cache
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	detector := langdetdef.NewWithDefaultLanguages()
	return &Analyzer{
		cache:   cache.New(cache.NoExpiration, 10*time.Minute),
		closest: detector.GetClosestLanguage,
		logger:  logger,
	}
}

// Sentences splits text into sentences. key identifies the text in the cache.
func (a *Analyzer) Sentences(key, text string) ([]string, error) {
	cacheKey := "sentences:" + key
	if b, found := a.cache.Get(cacheKey); found {
		a.logger.Debug("sentences from cache", zap.String("key", key))
		return b.([]string), nil
	}

	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segment %s: %w", key, err)
	}

	sentences := make([]string, 0)
	for _, s := range doc.Sentences() {
		if strings.TrimSpace(s.Text) != "" {
			sentences = append(sentences, s.Text)
		}
	}

	a.cache.Set(cacheKey, sentences, cache.NoExpiration)
	a.logger.Debug("segmented", zap.String("key", key), zap.Int("sentences", len(sentences)))

	return sentences, nil
}

// Tags returns the part-of-speech tag of every word, in order
func (a *Analyzer) Tags(key string, words []string) ([]string, error) {
	cacheKey := "tags:" + key
	if b, found := a.cache.Get(cacheKey); found {
		a.logger.Debug("tags from cache", zap.String("key", key))
		return b.([]string), nil
	}

	tags := make([]string, 0, len(words))
	if len(words) > 0 {
		doc, err := prose.NewDocument(strings.Join(words, " "), prose.WithSegmentation(false), prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("tag %s: %w", key, err)
		}
		for _, tok := range doc.Tokens() {
			tags = append(tags, tok.Tag)
		}
	}

	a.cache.Set(cacheKey, tags, cache.NoExpiration)
	a.logger.Debug("tagged", zap.String("key", key), zap.Int("tokens", len(tags)))

	return tags, nil
}

// Language returns the closest known language of text
func (a *Analyzer) Language(text string) string {
	return a.closest(text)
}

// WarnIfNotEnglish logs a warning when text does not look english
func (a *Analyzer) WarnIfNotEnglish(key, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if lang := a.Language(text); lang != English {
		a.logger.Warn("text does not look english, tagging may be poor",
			zap.String("key", key), zap.String("language", lang))
	}
}

// Cached is the number of stored parse results
func (a *Analyzer) Cached() int {
	return a.cache.ItemCount()
}

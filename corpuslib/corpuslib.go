// Reference corpus word frequencies, read from the British National Corpus
// unlemmatized list format (all.num): https://www.kilgarriff.co.uk/bnc-readme.html
//
//	6187267 the at0 4120
//	2941444 of prf 4108
//
// Each line is: total occurrences, word, POS tag, number of documents.

package corpuslib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// WholeCorpus is the pseudo word carrying the size of the corpus in all.num files
const WholeCorpus = "!!WHOLE_CORPUS"

const eps = 1e-9

// ErrEmptyCorpus is returned when a corpus file has no entries
var ErrEmptyCorpus = errors.New("corpuslib: empty corpus")

type WordInfo struct {
	NumTotal   int // repeated times appearing on the whole corpus
	POStagging string
	NumDocs    int // number of documents the word was found on
}

// Corpus holds reference frequencies for words
type Corpus struct {
	words map[string]WordInfo
	size  int
}

// Load reads a corpus file
func Load(filename string) (*Corpus, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	defer file.Close()

	c, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", filename, err)
	}
	return c, nil
}

// Parse reads corpus lines from r. The first entry for a word wins.
func Parse(r io.Reader) (*Corpus, error) {
	c := &Corpus{words: make(map[string]WordInfo)}

	var word, POStagging string
	var numTotal, numDocs int
	sum := 0
	numLine := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		numLine++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}

		if _, err := fmt.Sscanf(l, "%d %s %s %d", &numTotal, &word, &POStagging, &numDocs); err != nil {
			return nil, fmt.Errorf("line %d: %w", numLine, err)
		}

		if word == WholeCorpus {
			c.size = numTotal
			continue
		}

		if _, ok := c.words[word]; !ok {
			c.words[word] = WordInfo{numTotal, POStagging, numDocs}
			sum += numTotal
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(c.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	if c.size == 0 {
		c.size = sum
	}

	return c, nil
}

// Len is the number of distinct words
func (c *Corpus) Len() int {
	return len(c.words)
}

// Size is the number of tokens of the whole corpus
func (c *Corpus) Size() int {
	return c.size
}

// Freq returns the raw frequency of token
func (c *Corpus) Freq(token string) (numTotal int) {
	numTotal = c.words[token].NumTotal

	return
}

// Info returns everything known about token
func (c *Corpus) Info(token string) (WordInfo, bool) {
	info, ok := c.words[token]
	return info, ok
}

// Relative returns the frequency of token over the corpus size
func (c *Corpus) Relative(token string) float64 {
	if c.size == 0 {
		return 0
	}
	return float64(c.Freq(token)) / float64(c.size)
}

// Keyness contrasts a relative frequency with the baseline one. Values above 1 mean the
// word is more frequent in the text than in the reference corpus.
func Keyness(rel, baseline float64) float64 {
	return (rel + eps) / (baseline + eps)
}

package statlib

import (
	"sort"

	"goWordStats/freqlib"
	"goWordStats/stringlib"
)

// Tagger returns the part-of-speech tag of every word
type Tagger interface {
	Tags(key string, words []string) ([]string, error)
}

// TagShare is the count or share of one tag
type TagShare struct {
	Tag   string  `json:"tag"`
	Value float64 `json:"value"`
}

// POSReport is the tag distribution of one document, largest first
type POSReport struct {
	Name  string     `json:"name"`
	Total int        `json:"total"`
	Tags  []TagShare `json:"tags"`
}

// Distribution counts tags; unless raw every count is divided by the number of tags
func Distribution(tags []string, raw bool) []TagShare {
	f := make(freqlib.Table)
	f.Add(tags...)
	total := f.Total()

	shares := make([]TagShare, 0, len(f))
	for tag, n := range f {
		v := float64(n)
		if !raw {
			v /= float64(total)
		}
		shares = append(shares, TagShare{Tag: tag, Value: v})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Value == shares[j].Value {
			return shares[i].Tag < shares[j].Tag
		}
		return shares[i].Value > shares[j].Value
	})

	return shares
}

// POSStats tokenizes and tags one named text
func POSStats(tagger Tagger, name, text string, raw bool) (POSReport, error) {
	words := stringlib.Tokenize(text)
	tags, err := tagger.Tags(name, words)
	if err != nil {
		return POSReport{}, err
	}
	return POSReport{Name: name, Total: len(tags), Tags: Distribution(tags, raw)}, nil
}

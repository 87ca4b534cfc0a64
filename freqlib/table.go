package freqlib

import "sort"

// Table maps a token to the number of times it was seen
type Table map[string]int

// Add counts one occurrence of every token
func (f Table) Add(tokens ...string) {
	for _, token := range tokens {
		f[token]++
	}
}

// KV is one row of a sorted table
type KV struct {
	Key   string
	Value int
}

// Sorted returns the table by count descending; ties go by key descending
func (f Table) Sorted() []KV {
	ss := make([]KV, 0, len(f))
	for k, v := range f {
		ss = append(ss, KV{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value == ss[j].Value {
			return ss[i].Key > ss[j].Key
		}
		return ss[i].Value > ss[j].Value
	})

	return ss
}

// Total is the sum of all counts
func (f Table) Total() int {
	n := 0
	for _, v := range f {
		n += v
	}
	return n
}

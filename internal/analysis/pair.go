// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import "fmt"

// Pair is an unordered author pair stored in lexical order.
type Pair struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
}

// NewPair orders a and b.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

// PairCount is a pair with the number of sampled records that link it.
type PairCount struct {
	Pair  Pair `json:"pair" yaml:"pair"`
	Count int  `json:"count" yaml:"count"`
}

// String renders the pair result as a sentence.
func (p PairCount) String() string {
	return fmt.Sprintf("The authors who have co-authored the most articles together are %s and %s, with %d articles.",
		p.Pair.First, p.Pair.Second, p.Count)
}

// PairCounts counts, for each unordered pair, the sampled records that list
// one member as a co-author of the other. A pair whose members are both in
// the sample and list each other counts 2. Pairs are returned in first-seen
// order.
func (a *Analyzer) PairCounts() []PairCount {
	index := make(map[Pair]int)
	var out []PairCount
	for _, r := range a.records {
		for _, co := range r.CoAuthors {
			if co == r.Name {
				continue
			}
			p := NewPair(r.Name, co)
			if i, ok := index[p]; ok {
				out[i].Count++
				continue
			}
			index[p] = len(out)
			out = append(out, PairCount{Pair: p, Count: 1})
		}
	}
	return out
}

// MostCommonPair returns the first pair reaching the highest count.
func (a *Analyzer) MostCommonPair() (PairCount, error) {
	counts := a.PairCounts()
	if len(counts) == 0 {
		return PairCount{}, ErrNoPairs
	}
	best := counts[0]
	for _, pc := range counts[1:] {
		if pc.Count > best.Count {
			best = pc
		}
	}
	return best, nil
}

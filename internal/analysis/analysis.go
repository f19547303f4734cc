// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis ranks and compares the authors of a snapshot sample.
// Every ordering is stable: ties keep the order of the sample.
package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

var (
	// ErrEmptySample is returned by operations that need at least one record.
	ErrEmptySample = errors.New("sample has no authors")

	// ErrNoPairs is returned when no record lists a co-author.
	ErrNoPairs = errors.New("sample has no co-author pairs")
)

// AuthorCount pairs an author with a count.
type AuthorCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Analyzer answers questions about one sample of author records.
type Analyzer struct {
	records []types.AuthorRecord
	index   map[string]int
}

// New returns an Analyzer over records. The slice is not copied and must not
// be modified afterwards.
func New(records []types.AuthorRecord) *Analyzer {
	index := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := index[r.Name]; !ok {
			index[r.Name] = i
		}
	}
	return &Analyzer{records: records, index: index}
}

// Records returns the sample in its original order.
func (a *Analyzer) Records() []types.AuthorRecord { return a.records }

// Len returns the sample size.
func (a *Analyzer) Len() int { return len(a.records) }

// Lookup returns the record for name.
func (a *Analyzer) Lookup(name string) (types.AuthorRecord, bool) {
	i, ok := a.index[name]
	if !ok {
		return types.AuthorRecord{}, false
	}
	return a.records[i], true
}

// MostInfluential returns the records ordered by publication count, highest
// first.
func (a *Analyzer) MostInfluential() []types.AuthorRecord {
	out := append([]types.AuthorRecord(nil), a.records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NumPubs > out[j].NumPubs
	})
	return out
}

// UniqueCoauthorCounts returns every author's number of unique co-authors,
// highest first.
func (a *Analyzer) UniqueCoauthorCounts() []AuthorCount {
	out := make([]AuthorCount, len(a.records))
	for i, r := range a.records {
		out[i] = AuthorCount{Name: r.Name, Count: len(r.CoAuthors)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// MostUniqueCoauthors returns the first author with the largest number of
// unique co-authors.
func (a *Analyzer) MostUniqueCoauthors() (AuthorCount, error) {
	if len(a.records) == 0 {
		return AuthorCount{}, ErrEmptySample
	}
	best := AuthorCount{Name: a.records[0].Name, Count: len(a.records[0].CoAuthors)}
	for _, r := range a.records[1:] {
		if n := len(r.CoAuthors); n > best.Count {
			best = AuthorCount{Name: r.Name, Count: n}
		}
	}
	return best, nil
}

// NumCoauthors returns the number of unique co-authors of name, or 0 when
// the author is not in the sample.
func (a *Analyzer) NumCoauthors(name string) int {
	r, ok := a.Lookup(name)
	if !ok {
		return 0
	}
	return len(r.CoAuthors)
}

// Top returns at most n leading elements of ranked.
func Top[T any](ranked []T, n int) []T {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Outcome classifies a Comparison.
type Outcome int

const (
	// OutcomeLeader means the author has the most unique co-authors.
	OutcomeLeader Outcome = iota
	// OutcomeTied means the author matches the leader's count.
	OutcomeTied
	// OutcomeBehind means the author has fewer unique co-authors.
	OutcomeBehind
)

// Comparison relates one author's unique co-author count to the leader's.
type Comparison struct {
	Author  string
	Count   int
	Leader  string
	Best    int
	Outcome Outcome
}

// String renders the comparison as a sentence.
func (c Comparison) String() string {
	switch c.Outcome {
	case OutcomeLeader:
		return fmt.Sprintf("%s is the most influential author with %d unique co-authors.", c.Author, c.Best)
	case OutcomeTied:
		return fmt.Sprintf("%s is tied with %s for the most unique co-authors with %d.", c.Author, c.Leader, c.Best)
	default:
		return fmt.Sprintf("%s has %d unique co-authors, while the author with the most unique co-authors is %s with %d.",
			c.Author, c.Count, c.Leader, c.Best)
	}
}

// Compare relates name's unique co-author count to the sample leader's. An
// author missing from the sample counts as having no co-authors.
func (a *Analyzer) Compare(name string) (Comparison, error) {
	leader, err := a.MostUniqueCoauthors()
	if err != nil {
		return Comparison{}, err
	}
	c := Comparison{
		Author: name,
		Count:  a.NumCoauthors(name),
		Leader: leader.Name,
		Best:   leader.Count,
	}
	switch {
	case name == leader.Name:
		c.Outcome = OutcomeLeader
	case c.Count == leader.Count:
		c.Outcome = OutcomeTied
	default:
		c.Outcome = OutcomeBehind
	}
	return c, nil
}

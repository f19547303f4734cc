// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package collect

import (
	"strings"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// Aggregator accumulates articles into per-author records. The zero value is
// not usable; call NewAggregator.
type Aggregator struct {
	articles map[string]struct{}
	index    map[string]int
	records  []types.AuthorRecord
	coauthor []map[string]struct{}
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		articles: make(map[string]struct{}),
		index:    make(map[string]int),
	}
}

// Add folds one article into the records. It returns false, changing
// nothing, when an article with the same key was added before. Blank author
// names are ignored and an author listed twice in one article counts once.
func (a *Aggregator) Add(article types.Article) bool {
	key := articleKey(article)
	if _, dup := a.articles[key]; dup {
		return false
	}
	a.articles[key] = struct{}{}

	names := distinctNames(article.Authors)
	for _, name := range names {
		i := a.record(name)
		a.records[i].NumPubs++
		for _, other := range names {
			if other == name {
				continue
			}
			if _, ok := a.coauthor[i][other]; ok {
				continue
			}
			a.coauthor[i][other] = struct{}{}
			a.records[i].CoAuthors = append(a.records[i].CoAuthors, other)
		}
	}
	return true
}

// Len returns the number of distinct authors seen.
func (a *Aggregator) Len() int { return len(a.records) }

// Records returns a copy of the records in first-observation order.
func (a *Aggregator) Records() []types.AuthorRecord {
	out := make([]types.AuthorRecord, len(a.records))
	for i, r := range a.records {
		out[i] = types.AuthorRecord{
			Name:      r.Name,
			CoAuthors: append([]string{}, r.CoAuthors...),
			NumPubs:   r.NumPubs,
		}
	}
	return out
}

func (a *Aggregator) record(name string) int {
	if i, ok := a.index[name]; ok {
		return i
	}
	i := len(a.records)
	a.index[name] = i
	a.records = append(a.records, types.AuthorRecord{Name: name, CoAuthors: []string{}})
	a.coauthor = append(a.coauthor, make(map[string]struct{}))
	return i
}

// Aggregate builds author records from articles.
func Aggregate(articles []types.Article) []types.AuthorRecord {
	agg := NewAggregator()
	for _, art := range articles {
		agg.Add(art)
	}
	return agg.Records()
}

// articleKey identifies an article by arXiv ID, falling back to its title and
// author list for entries without one.
func articleKey(a types.Article) string {
	if a.ID != "" {
		return "id:" + a.ID
	}
	return "meta:" + strings.ToLower(a.Title) + "\x00" + strings.Join(a.Authors, "\x00")
}

func distinctNames(authors []string) []string {
	seen := make(map[string]struct{}, len(authors))
	names := make([]string, 0, len(authors))
	for _, raw := range authors {
		name := strings.Join(strings.Fields(raw), " ")
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

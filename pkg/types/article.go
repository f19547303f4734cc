// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Article holds the metadata of one fetched article.
type Article struct {
	// ID is the arXiv identifier without version suffix (e.g. "2301.07041").
	ID string `json:"id" yaml:"id"`

	// Title is the article title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the first-version submission time.
	Published time.Time `json:"published" yaml:"published"`

	// Categories are the arXiv category codes (e.g. "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// AuthorRecord is the aggregate for one author within one category sample.
// CoAuthors never contains Name, and NumPubs counts the distinct articles in
// which the author appeared.
type AuthorRecord struct {
	Name      string   `json:"-" yaml:"name"`
	CoAuthors []string `json:"co_authors" yaml:"co_authors"`
	NumPubs   int      `json:"num_pubs" yaml:"num_pubs"`
}

// HasCoAuthor reports whether name is among the record's co-authors.
func (r AuthorRecord) HasCoAuthor(name string) bool {
	for _, c := range r.CoAuthors {
		if c == name {
			return true
		}
	}
	return false
}

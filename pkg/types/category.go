// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the coauthor-engine
// pipeline: subject categories, fetched articles, aggregated author records
// and the configuration consumed by each stage.
package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// ErrInvalidCategory is returned when input does not name a known category.
var ErrInvalidCategory = errors.New("invalid category")

// Category is a subject area whose articles are harvested and analyzed.
type Category struct {
	// Name is the display name (e.g. "computer science").
	Name string `json:"name" yaml:"name"`

	// Slug is the file-safe form of Name (e.g. "computer_science").
	Slug string `json:"slug" yaml:"slug"`

	// Terms are the free-text arXiv search terms for the category.
	Terms []string `json:"terms" yaml:"terms"`
}

// String returns the display name.
func (c Category) String() string { return c.Name }

var categories = []Category{
	newCategory("physics"),
	newCategory("mathematics"),
	newCategory("computer science"),
	newCategory("quantitative biology"),
	newCategory("quantitative finance"),
	newCategory("statistics"),
}

func newCategory(name string) Category {
	return Category{
		Name:  name,
		Slug:  strings.ReplaceAll(name, " ", "_"),
		Terms: strings.Fields(name),
	}
}

// AllCategories returns the supported categories in canonical order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryNames returns the display names of all categories.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// ParseCategory resolves s to a Category. Matching ignores case and
// surrounding whitespace and accepts either the display name or the slug.
func ParseCategory(s string) (Category, error) {
	key := cases.Fold().String(strings.Join(strings.Fields(s), " "))
	for _, c := range categories {
		if key == c.Name || key == c.Slug {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q", ErrInvalidCategory, strings.TrimSpace(s))
}

// ParseCategories resolves each name; an empty list selects all categories.
func ParseCategories(names []string) ([]Category, error) {
	if len(names) == 0 {
		return AllCategories(), nil
	}
	out := make([]Category, 0, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

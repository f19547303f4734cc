// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantSlug string
		wantErr  bool
	}{
		{"lowercase name", "physics", "physics", false},
		{"mixed case", "Computer Science", "computer_science", false},
		{"slug", "quantitative_finance", "quantitative_finance", false},
		{"surrounding whitespace", "  Statistics \n", "statistics", false},
		{"inner whitespace collapsed", "quantitative   biology", "quantitative_biology", false},
		{"unknown", "chemistry", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, c.Slug)
		})
	}
}

func TestAllCategoriesOrderAndTerms(t *testing.T) {
	cats := AllCategories()
	require.Len(t, cats, 6)
	assert.Equal(t, "physics", cats[0].Name)
	assert.Equal(t, "statistics", cats[5].Name)
	assert.Equal(t, []string{"computer", "science"}, cats[2].Terms)

	// Callers cannot mutate the package table.
	cats[0].Name = "changed"
	assert.Equal(t, "physics", AllCategories()[0].Name)
}

func TestParseCategories(t *testing.T) {
	all, err := ParseCategories(nil)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	some, err := ParseCategories([]string{"Mathematics", "statistics"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mathematics", "statistics"}, []string{some[0].Name, some[1].Name})

	_, err = ParseCategories([]string{"physics", "astrology"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAuthorRecordHasCoAuthor(t *testing.T) {
	r := AuthorRecord{Name: "A", CoAuthors: []string{"B", "C"}}
	assert.True(t, r.HasCoAuthor("B"))
	assert.False(t, r.HasCoAuthor("A"))
}

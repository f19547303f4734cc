// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

func sample() []types.AuthorRecord {
	return []types.AuthorRecord{
		{Name: "Ada", CoAuthors: []string{"Bob", "Cy"}, NumPubs: 2},
		{Name: "Bob", CoAuthors: []string{"Ada"}, NumPubs: 3},
		{Name: "Cy", CoAuthors: []string{"Ada", "Dee", "Eve"}, NumPubs: 2},
		{Name: "Dee", CoAuthors: []string{"Cy", "Ada", "Fay"}, NumPubs: 1},
		{Name: "Gus", CoAuthors: []string{}, NumPubs: 3},
	}
}

func names(records []types.AuthorRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestMostInfluentialStableUnderTies(t *testing.T) {
	a := New(sample())
	ranked := a.MostInfluential()
	assert.Equal(t, []string{"Bob", "Gus", "Ada", "Cy", "Dee"}, names(ranked))

	// The sample itself is untouched.
	assert.Equal(t, "Ada", a.Records()[0].Name)
}

func TestUniqueCoauthorCounts(t *testing.T) {
	counts := New(sample()).UniqueCoauthorCounts()
	assert.Equal(t, []AuthorCount{
		{"Cy", 3}, {"Dee", 3}, {"Ada", 2}, {"Bob", 1}, {"Gus", 0},
	}, counts)
}

func TestMostUniqueCoauthors(t *testing.T) {
	best, err := New(sample()).MostUniqueCoauthors()
	require.NoError(t, err)
	assert.Equal(t, AuthorCount{Name: "Cy", Count: 3}, best, "first author reaching the maximum wins")

	_, err = New(nil).MostUniqueCoauthors()
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestNumCoauthors(t *testing.T) {
	a := New(sample())
	assert.Equal(t, 2, a.NumCoauthors("Ada"))
	assert.Equal(t, 0, a.NumCoauthors("Nobody"))
	assert.Equal(t, 5, a.Len())
}

func TestCompare(t *testing.T) {
	a := New(sample())
	tests := []struct {
		author  string
		outcome Outcome
		want    string
	}{
		{"Cy", OutcomeLeader, "Cy is the most influential author with 3 unique co-authors."},
		{"Dee", OutcomeTied, "Dee is tied with Cy for the most unique co-authors with 3."},
		{"Bob", OutcomeBehind, "Bob has 1 unique co-authors, while the author with the most unique co-authors is Cy with 3."},
		{"Nobody", OutcomeBehind, "Nobody has 0 unique co-authors, while the author with the most unique co-authors is Cy with 3."},
	}
	for _, tt := range tests {
		t.Run(tt.author, func(t *testing.T) {
			c, err := a.Compare(tt.author)
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, c.Outcome)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestCompareUnknownAuthorTiesWhenNobodyHasCoauthors(t *testing.T) {
	a := New([]types.AuthorRecord{{Name: "Solo", CoAuthors: []string{}, NumPubs: 1}})
	c, err := a.Compare("Nobody")
	require.NoError(t, err)
	assert.Equal(t, OutcomeTied, c.Outcome)
	assert.Equal(t, "Nobody is tied with Solo for the most unique co-authors with 0.", c.String())
}

func TestCompareEmptySample(t *testing.T) {
	_, err := New(nil).Compare("Ada")
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestTop(t *testing.T) {
	xs := []int{5, 4, 3, 2, 1}
	assert.Equal(t, []int{5, 4}, Top(xs, 2))
	assert.Equal(t, xs, Top(xs, 10))
	assert.Equal(t, xs, Top(xs, 0))
}

func TestLookup(t *testing.T) {
	a := New(sample())
	r, ok := a.Lookup("Dee")
	require.True(t, ok)
	assert.Equal(t, 1, r.NumPubs)
	_, ok = a.Lookup("dee")
	assert.False(t, ok)
}

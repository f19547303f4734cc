// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

func manyRecords(n int) []types.AuthorRecord {
	out := make([]types.AuthorRecord, n)
	for i := range out {
		out[i] = types.AuthorRecord{Name: fmt.Sprintf("Author %03d", i), NumPubs: 1}
	}
	return out
}

func TestSampleSizeAndUniqueness(t *testing.T) {
	records := manyRecords(120)
	got := Sample(records, DefaultSampleSize, NewRand(7))
	require.Len(t, got, DefaultSampleSize)

	seen := make(map[string]bool)
	for _, r := range got {
		assert.False(t, seen[r.Name], "duplicate %s", r.Name)
		seen[r.Name] = true
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	records := manyRecords(80)
	a := Sample(records, 10, NewRand(42))
	b := Sample(records, 10, NewRand(42))
	assert.Equal(t, a, b)
}

func TestSampleSmallSnapshot(t *testing.T) {
	records := manyRecords(5)
	got := Sample(records, 50, NewRand(1))
	assert.Len(t, got, 5)
	assert.ElementsMatch(t, records, got)
}

func TestSampleAll(t *testing.T) {
	records := manyRecords(5)
	got := Sample(records, 0, NewRand(1))
	assert.Equal(t, records, got)

	got[0].Name = "changed"
	assert.Equal(t, "Author 000", records[0].Name)
}

func TestSampleEmpty(t *testing.T) {
	assert.Empty(t, Sample(nil, 50, NewRand(3)))
}

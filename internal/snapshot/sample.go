// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"math/rand/v2"
	"time"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// DefaultSampleSize is the number of records analyzed per session.
const DefaultSampleSize = 50

// NewRand returns a generator seeded with seed, or from the clock when seed
// is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample draws min(n, len(records)) records uniformly without replacement,
// in draw order. n <= 0 returns every record in file order.
func Sample(records []types.AuthorRecord, n int, rng *rand.Rand) []types.AuthorRecord {
	if n <= 0 {
		return append([]types.AuthorRecord(nil), records...)
	}
	n = min(n, len(records))

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	out := make([]types.AuthorRecord, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = records[idx[i]]
	}
	return out
}

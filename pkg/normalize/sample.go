package normalize

import (
	"math/rand/v2"
	"slices"
)

// Sample keeps a uniform random subset of at most limit rows, chosen without
// replacement. The same seed and input always give the same subset. Kept
// rows stay in their original order. It returns the kept rows and the
// number of rows left out.
func Sample[T any](rows []T, limit int, seed int64) ([]T, int) {
	if limit <= 0 || len(rows) <= limit {
		return rows, 0
	}

	rnd := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	idx := rnd.Perm(len(rows))[:limit]
	slices.Sort(idx)

	res := make([]T, len(idx))
	for i, j := range idx {
		res[i] = rows[j]
	}
	return res, len(rows) - limit
}

// Package knapsack_test provides shared helpers for the solver tests:
// a deterministic random instance builder and an exhaustive reference solver.
package knapsack_test

import (
	"math/rand"

	"github.com/katalvlaran/expknap/knapsack"
)

const (
	// seedDet is the base seed for randomized tests.
	seedDet = int64(1)

	// bruteMaxN bounds instances cross-checked by exhaustive search.
	bruteMaxN = 16
)

// randomItems returns n items with profits and weights in [1, r].
func randomItems(rng *rand.Rand, n int, r int64) []knapsack.Item {
	items := make([]knapsack.Item, n)
	var i int
	for i = 0; i < n; i++ {
		items[i] = knapsack.Item{
			Profit: rng.Int63n(r) + 1,
			Weight: rng.Int63n(r) + 1,
		}
	}

	return items
}

// halfWeight returns ⌊Σw/2⌋, the capacity used throughout the benchmarks.
func halfWeight(items []knapsack.Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Weight
	}

	return sum / 2
}

// bruteForce enumerates all 2^n subsets and returns the optimal profit.
func bruteForce(items []knapsack.Item, capacity int64) int64 {
	var (
		n          = len(items)
		best       int64
		mask, i    int
		sumP, sumW int64
	)
	for mask = 0; mask < 1<<n; mask++ {
		sumP, sumW = 0, 0
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sumP += items[i].Profit
				sumW += items[i].Weight
			}
		}
		if sumW <= capacity && sumP > best {
			best = sumP
		}
	}

	return best
}

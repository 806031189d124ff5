// Benchmarks for Solve on the classic instance types.
//
// Policy:
//   - Instances are built outside the timer with fixed seeds.
//   - Capacity is half the total weight, as in the standard test suites.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/expknap/knapsack"
)

// benchmarkSolve builds one instance with profit(w) and solves it b.N times.
func benchmarkSolve(b *testing.B, n int, r int64, profit func(rng *rand.Rand, w int64) int64) {
	rng := rand.New(rand.NewSource(seedDet))
	items := make([]knapsack.Item, n)
	for i := range items {
		w := rng.Int63n(r) + 1
		items[i] = knapsack.Item{Profit: profit(rng, w), Weight: w}
	}
	capacity := halfWeight(items)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := knapsack.Solve(items, capacity, knapsack.WithVerify(false)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func uncorrelated(r int64) func(*rand.Rand, int64) int64 {
	return func(rng *rand.Rand, _ int64) int64 { return rng.Int63n(r) + 1 }
}

func weaklyCorrelated(r int64) func(*rand.Rand, int64) int64 {
	return func(rng *rand.Rand, w int64) int64 {
		r1 := r / 10
		p := rng.Int63n(2*r1+1) + w - r1
		if p <= 0 {
			p = 1
		}
		return p
	}
}

func BenchmarkSolve_Uncorrelated_n1000(b *testing.B) {
	benchmarkSolve(b, 1000, 1000, uncorrelated(1000))
}

func BenchmarkSolve_Uncorrelated_n10000(b *testing.B) {
	benchmarkSolve(b, 10000, 1000, uncorrelated(1000))
}

func BenchmarkSolve_WeaklyCorrelated_n1000(b *testing.B) {
	benchmarkSolve(b, 1000, 1000, weaklyCorrelated(1000))
}

func BenchmarkSolve_StronglyCorrelated_n100(b *testing.B) {
	benchmarkSolve(b, 100, 1000, func(_ *rand.Rand, w int64) int64 { return w + 10 })
}

func BenchmarkSolve_SubsetSum_n1000(b *testing.B) {
	benchmarkSolve(b, 1000, 1000, func(_ *rand.Rand, w int64) int64 { return w })
}

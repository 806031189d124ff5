// Package instance generates and stores 0-1 knapsack test instances.
//
// Generate reproduces the four classic instance families used to benchmark
// knapsack algorithms. Weights are drawn uniformly from [1, r]; profits
// depend on the family:
//
//   - Uncorrelated:       p uniform in [1, r].
//   - WeaklyCorrelated:   p uniform in [w − r/10, w + r/10], at least 1.
//   - StronglyCorrelated: p = w + 10.
//   - SubsetSum:          p = w.
//
// The capacity is half the total weight (rounded down), which places the
// break item in the middle of the efficiency order.
//
// Determinism: every generator draws from a *rand.Rand chosen by WithSeed or
// WithRand. Seed 0 maps to a fixed default, so the same arguments always
// produce the same instance.
//
// Instances round-trip through YAML (Load/Save), which is the file format
// accepted by the expknap command.
package instance

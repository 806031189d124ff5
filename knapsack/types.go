package knapsack

import "errors"

// MaxSum bounds both the sum of all profits and the sum of all weights of an
// instance. With sums below 2^30 every cross product computed by the solver
// stays below 2^61, so int64 arithmetic never wraps.
const MaxSum int64 = 1 << 30

// Sentinel errors returned by Solve and Verify.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNonPositiveProfit indicates an item with profit ≤ 0.
	ErrNonPositiveProfit = errors.New("knapsack: item profit must be positive")

	// ErrNonPositiveWeight indicates an item with weight ≤ 0.
	ErrNonPositiveWeight = errors.New("knapsack: item weight must be positive")

	// ErrOverflow indicates that the profit sum or the weight sum exceeds MaxSum.
	ErrOverflow = errors.New("knapsack: coefficient sums exceed MaxSum")

	// ErrIntervalStackOverflow indicates that a deferred-interval stack is full.
	// With the default depth this cannot happen.
	ErrIntervalStackOverflow = errors.New("knapsack: interval stack exhausted")

	// ErrNodeLimit indicates that the branch-and-bound node budget was exceeded.
	ErrNodeLimit = errors.New("knapsack: node limit exceeded")

	// ErrTimeLimit indicates that the wall-clock budget was exceeded.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrInvalidSolution indicates that a solution violates the postconditions
	// (infeasible weight, profit mismatch or wrong shape).
	ErrInvalidSolution = errors.New("knapsack: invalid solution")
)

// Item is a knapsack item as seen by the caller.
type Item struct {
	Profit int64
	Weight int64
}

// Result holds the outcome of Solve.
type Result struct {
	// Profit is the optimal objective value.
	Profit int64

	// Selected[i] reports whether items[i] is packed; len(Selected) == len(items).
	Selected []bool

	// Stats describes the work performed by the solver.
	Stats Stats
}

// Stats collects per-solve counters. They are informational and do not
// affect the result.
type Stats struct {
	Iterations int64 // branch-and-bound nodes visited
	Touched    int64 // items examined by the reduction filter
	Reduced    int64 // items discarded by the reduction filter
	Expansions int64 // deferred intervals popped to widen the core
	CoreSize   int   // final size of the sorted window

	// Heuristic is the initial lower bound (greedy prefix or better).
	Heuristic int64

	// Dantzig is the LP-relaxation upper bound, rounded down.
	Dantzig int64
}

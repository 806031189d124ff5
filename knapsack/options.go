package knapsack

import "time"

// Options configures Solve.
//
//   - NodeLimit:  abort with ErrNodeLimit once more than NodeLimit search nodes
//     were visited. 0 means unlimited.
//   - TimeLimit:  abort with ErrTimeLimit once the budget is spent. The deadline
//     is sampled every 4096 nodes. 0 means unlimited.
//   - StackDepth: capacity of each deferred-interval stack. 0 means "item count
//     plus one", which can never be exhausted.
//   - Verify:     check the postconditions before returning (default true).
type Options struct {
	NodeLimit  int64
	TimeLimit  time.Duration
	StackDepth int
	Verify     bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the defaults: no budgets, automatic stack depth,
// verification enabled.
func DefaultOptions() Options {
	return Options{Verify: true}
}

// WithNodeLimit bounds the number of branch-and-bound nodes.
// Panics on negative values; 0 disables the limit.
func WithNodeLimit(n int64) Option {
	if n < 0 {
		panic("knapsack: WithNodeLimit(negative)")
	}
	return func(o *Options) {
		o.NodeLimit = n
	}
}

// WithTimeLimit bounds the wall-clock time of the search.
// Panics on negative durations; 0 disables the limit.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("knapsack: WithTimeLimit(negative)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithStackDepth fixes the capacity of each deferred-interval stack.
// Panics on negative values; 0 restores the automatic depth.
func WithStackDepth(depth int) Option {
	if depth < 0 {
		panic("knapsack: WithStackDepth(negative)")
	}
	return func(o *Options) {
		o.StackDepth = depth
	}
}

// WithVerify toggles the postcondition check performed before Solve returns.
func WithVerify(on bool) Option {
	return func(o *Options) {
		o.Verify = on
	}
}

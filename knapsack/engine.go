package knapsack

import "time"

// deadlineMask sets how often the search samples the clock (every 4096 nodes).
const deadlineMask = 4095

// item is the solver's working copy of an Item. x is the index of the
// caller's item, i.e. the slot in Result.Selected the item writes through.
type item struct {
	p int64
	w int64
	x int
}

// interval is an unsorted range [f, l] of the item buffer together with the
// weight of the items placed before it when it was deferred.
type interval struct {
	f  int
	l  int
	ws int64
}

// intervalStack is a bounded LIFO of deferred intervals.
type intervalStack struct {
	buf []interval
	max int
}

func newIntervalStack(max int) intervalStack {
	return intervalStack{buf: make([]interval, 0, max), max: max}
}

// push defers iv; it fails once max intervals are stacked.
func (s *intervalStack) push(iv interval) error {
	if len(s.buf) >= s.max {
		return ErrIntervalStackOverflow
	}
	s.buf = append(s.buf, iv)

	return nil
}

// pop removes the most recently deferred interval. ok is false when empty.
func (s *intervalStack) pop() (iv interval, ok bool) {
	if len(s.buf) == 0 {
		return interval{}, false
	}
	iv = s.buf[len(s.buf)-1]
	s.buf = s.buf[:len(s.buf)-1]

	return iv, true
}

// engine holds the complete state of one Solve call. Nothing outlives it.
//
// Positions in items are used everywhere a pointer would be: the window
// [fsort, lsort] is the sorted core, br the break item, and the two stacks
// hold the deferred intervals to the left and right of the core.
type engine struct {
	items []item
	c     int64 // capacity

	// Break item and the greedy prefix sums before it.
	br  int
	wsb int64
	psb int64

	// Incumbent: z is the best profit relative to psb; exc is the change-log
	// (caller indices whose value differs from the greedy baseline).
	z   int64
	exc []int

	// Sorted window and the interval resolved by the last partsort.
	fsort int
	lsort int
	s     interval

	left  intervalStack // deferred intervals before the break item
	right intervalStack // deferred intervals after the break item

	// Search budget.
	nodeLimit   int64
	useDeadline bool
	deadline    time.Time

	stats Stats
}

// newEngine copies items into an owned buffer and sizes the stacks.
//
// Complexity: O(n).
func newEngine(items []Item, capacity int64, opts Options) *engine {
	var (
		n     = len(items)
		depth = opts.StackDepth
		e     = &engine{c: capacity}
		i     int
	)
	if depth == 0 {
		// Stacked intervals are disjoint and non-empty.
		depth = n + 1
	}

	e.items = make([]item, n)
	for i = 0; i < n; i++ {
		e.items[i] = item{p: items[i].Profit, w: items[i].Weight, x: i}
	}
	e.exc = make([]int, 0, n)
	e.left = newIntervalStack(depth)
	e.right = newIntervalStack(depth)

	e.nodeLimit = opts.NodeLimit
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// det returns a1*b2 - a2*b1. For positive weights, det(p1, w1, p2, w2) > 0
// exactly when p1/w1 > p2/w2.
func det(a1, a2, b1, b2 int64) int64 {
	return a1*b2 - a2*b1
}

// cmp compares the efficiency of the items at positions a and b.
func (e *engine) cmp(a, b int) int64 {
	return det(e.items[a].p, e.items[a].w, e.items[b].p, e.items[b].w)
}

func (e *engine) swap(a, b int) {
	e.items[a], e.items[b] = e.items[b], e.items[a]
}

// budget counts one search node and reports whether a limit was hit.
func (e *engine) budget() error {
	e.stats.Iterations++
	if e.nodeLimit > 0 && e.stats.Iterations > e.nodeLimit {
		return ErrNodeLimit
	}
	if e.useDeadline && e.stats.Iterations&deadlineMask == 0 && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

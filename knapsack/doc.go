// Package knapsack provides an exact solver for the 0-1 knapsack problem.
//
// Solve maximizes the total profit of a subset of items whose total weight
// does not exceed a capacity. It implements the expanding-core
// branch-and-bound algorithm: instead of sorting every item by efficiency
// (profit/weight) up front, it lazily sorts only a window ("core") of items
// around the break item of the LP relaxation, and widens that window only
// when the search runs out of sorted candidates on one side.
//
// Algorithm outline:
//
//  1. Partial sort: a quicksort-style partition (median-of-three pivot,
//     Hoare scheme) descends only into the part that contains the break
//     item. The other part is pushed on one of two interval stacks, one for
//     items before the break item and one for items after it.
//  2. Bounds: a greedy fill locates the break item and yields the Dantzig
//     upper bound. The lower bound is the best of the greedy prefix, a
//     forward greedy step and a backward greedy step.
//  3. Search: a depth-first branch-and-bound that adds items to the right of
//     the break item while the partial solution fits, and removes items to
//     the left of it while the solution overflows. Whenever the cursor leaves
//     the sorted window, the most recently deferred interval on that side is
//     reduced (items that cannot improve the incumbent are dropped) and
//     partially sorted.
//  4. Reconstruction: the search records only the items whose value differs
//     from the greedy baseline along the best path; flipping those yields the
//     optimal assignment.
//
// Efficiency comparisons never divide: the ratio p1/w1 against p2/w2 is
// decided by the sign of p1*w2 - w1*p2 in int64. Inputs are therefore
// bounded: the profit sum and the weight sum must each be at most MaxSum,
// which keeps every cross product far below the int64 range.
//
// Complexity:
//
//   - Worst case exponential in n (the problem is NP-hard).
//   - Sorting work is bounded by the final core size rather than n; typical
//     random instances touch a small fraction of the items.
//   - Memory: O(n) for the item buffer, the change-log and the two stacks.
//
// Errors (sentinel):
//
//   - ErrNegativeCapacity, ErrNonPositiveProfit, ErrNonPositiveWeight and
//     ErrOverflow reject invalid input before any solving begins.
//   - ErrNodeLimit / ErrTimeLimit report that an optional search budget was
//     exhausted; no partial result is returned.
//   - ErrIntervalStackOverflow reports an exhausted interval stack (only
//     reachable with a user-lowered WithStackDepth).
//   - ErrInvalidSolution reports a failed postcondition check (a bug).
//
// Example:
//
//	res, err := knapsack.Solve([]knapsack.Item{
//	    {Profit: 60, Weight: 10},
//	    {Profit: 100, Weight: 20},
//	    {Profit: 120, Weight: 30},
//	}, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Profit, res.Selected) // 220 [false true true]
package knapsack

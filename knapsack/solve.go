package knapsack

import "fmt"

// Solve returns an optimal solution of the 0-1 knapsack problem
//
//	maximize Σ p_i x_i  subject to  Σ w_i x_i ≤ capacity, x_i ∈ {0,1}.
//
// Contracts:
//   - capacity ≥ 0; every profit and weight > 0 (see validateInstance).
//   - Σprofit ≤ MaxSum and Σweight ≤ MaxSum.
//   - An empty instance yields Profit 0 and an empty Selected slice.
//   - items is never modified; Result.Selected is freshly allocated.
//
// Stages:
//  1. Validate and copy items into the engine's buffer.
//  2. If everything fits, select everything (there is no break item).
//  3. Partially sort to find the core containing the break item.
//  4. Greedy/Dantzig bounds and the baseline assignment.
//  5. Expanding-core branch-and-bound.
//  6. Flip the baseline at every index in the change-log.
//
// Errors: validation sentinels, ErrNodeLimit, ErrTimeLimit,
// ErrIntervalStackOverflow, ErrInvalidSolution (when verification is on).
// On error the Result is zero.
//
// Complexity: worst case exponential; see the package documentation.
func Solve(items []Item, capacity int64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	sumP, sumW, err := validateInstance(items, capacity)
	if err != nil {
		return Result{}, err
	}

	var (
		n   = len(items)
		res = Result{Selected: make([]bool, n)}
		i   int
	)
	if sumW <= capacity {
		for i = 0; i < n; i++ {
			res.Selected[i] = true
		}
		res.Profit = sumP
		res.Stats.Heuristic = sumP
		res.Stats.Dantzig = sumP

		return res, nil
	}

	e := newEngine(items, capacity, cfg)
	if err = e.partsort(0, n-1, 0); err != nil {
		return Result{}, fmt.Errorf("find break item: %w", err)
	}
	e.fsort, e.lsort = e.s.f, e.s.l

	e.heuristic(res.Selected)
	e.stats.Heuristic = e.psb + e.z

	if _, err = e.branch(0, e.wsb-e.c, e.br-1, e.br); err != nil {
		return Result{}, err
	}

	for _, i = range e.exc {
		res.Selected[i] = !res.Selected[i]
	}
	res.Profit = e.psb + e.z
	e.stats.CoreSize = e.lsort - e.fsort + 1
	res.Stats = e.stats

	if cfg.Verify {
		if err = Verify(items, capacity, res); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

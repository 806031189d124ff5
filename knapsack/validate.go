package knapsack

import "fmt"

// Validate reports whether Solve would accept the instance. It returns the
// same wrapped sentinels as Solve.
func Validate(items []Item, capacity int64) error {
	_, _, err := validateInstance(items, capacity)
	return err
}

// validateInstance rejects malformed input before any work is done and
// returns the profit and weight sums.
//
// Contract:
//   - capacity ≥ 0,
//   - every profit and weight > 0,
//   - Σprofit ≤ MaxSum and Σweight ≤ MaxSum.
//
// Running sums are checked after every item; since each term is itself
// bounded by MaxSum, the sums never wrap before the check fires.
//
// Complexity: O(n).
func validateInstance(items []Item, capacity int64) (int64, int64, error) {
	if capacity < 0 {
		return 0, 0, fmt.Errorf("%w: capacity=%d", ErrNegativeCapacity, capacity)
	}

	var (
		i    int
		it   Item
		sumP int64
		sumW int64
	)
	for i, it = range items {
		if it.Profit <= 0 {
			return 0, 0, fmt.Errorf("%w: item %d profit=%d", ErrNonPositiveProfit, i, it.Profit)
		}
		if it.Weight <= 0 {
			return 0, 0, fmt.Errorf("%w: item %d weight=%d", ErrNonPositiveWeight, i, it.Weight)
		}
		if it.Profit > MaxSum || it.Weight > MaxSum {
			return 0, 0, fmt.Errorf("%w: item %d (%d,%d)", ErrOverflow, i, it.Profit, it.Weight)
		}
		sumP += it.Profit
		sumW += it.Weight
		if sumP > MaxSum || sumW > MaxSum {
			return 0, 0, fmt.Errorf("%w: at item %d", ErrOverflow, i)
		}
	}

	return sumP, sumW, nil
}

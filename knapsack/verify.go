package knapsack

import "fmt"

// Verify checks that res is a feasible solution for (items, capacity) whose
// selected profit equals res.Profit. It does not prove optimality.
//
// Errors: ErrInvalidSolution wrapped with the violated condition.
//
// Complexity: O(n).
func Verify(items []Item, capacity int64, res Result) error {
	if len(res.Selected) != len(items) {
		return fmt.Errorf("%w: %d selection flags for %d items", ErrInvalidSolution, len(res.Selected), len(items))
	}

	var (
		i          int
		sumP, sumW int64
	)
	for i = range items {
		if res.Selected[i] {
			sumP += items[i].Profit
			sumW += items[i].Weight
		}
	}
	if sumW > capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInvalidSolution, sumW, capacity)
	}
	if sumP != res.Profit {
		return fmt.Errorf("%w: selected profit %d, reported %d", ErrInvalidSolution, sumP, res.Profit)
	}

	return nil
}

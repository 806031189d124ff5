package instance

import (
	"fmt"

	"github.com/katalvlaran/expknap/knapsack"
)

// correlatedOffset is the profit surplus of strongly correlated items.
const correlatedOffset = 10

// Generate builds an instance of n items with coefficients in [1, r] from
// family typ.
//
// Contracts:
//   - n ≥ 1 (ErrTooFewItems), r ≥ 1 (ErrBadRange), typ valid (ErrUnknownType).
//   - n·(r + r/10 + 10) ≤ knapsack.MaxSum, so every generated instance is
//     accepted by knapsack.Solve (ErrBadRange otherwise).
//
// Complexity: O(n) time and space.
func Generate(n, r int, typ Type, opts ...Option) (Instance, error) {
	if n < 1 {
		return Instance{}, fmt.Errorf("%w: n=%d", ErrTooFewItems, n)
	}
	if r < 1 {
		return Instance{}, fmt.Errorf("%w: r=%d", ErrBadRange, r)
	}
	if !typ.Valid() {
		return Instance{}, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
	if maxProfit := int64(r) + int64(r)/10 + correlatedOffset; int64(n) > knapsack.MaxSum/maxProfit {
		return Instance{}, fmt.Errorf("%w: n=%d r=%d exceeds MaxSum", ErrBadRange, n, r)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	var (
		rng   = cfg.rng
		rr    = int64(r)
		r1    = rr / 10
		items = make([]knapsack.Item, n)
		sumW  int64
		w, p  int64
		i     int
	)
	for i = 0; i < n; i++ {
		w = rng.Int63n(rr) + 1
		switch typ {
		case Uncorrelated:
			p = rng.Int63n(rr) + 1
		case WeaklyCorrelated:
			p = rng.Int63n(2*r1+1) + w - r1
			if p <= 0 {
				p = 1
			}
		case StronglyCorrelated:
			p = w + correlatedOffset
		case SubsetSum:
			p = w
		}
		items[i] = knapsack.Item{Profit: p, Weight: w}
		sumW += w
	}

	return Instance{Capacity: sumW / 2, Items: items}, nil
}

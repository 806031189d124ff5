package instance

import "math/rand"

// defaultSeed is used when callers pass seed 0.
const defaultSeed int64 = 1

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws from a new deterministic source. Seed 0 selects defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r; the caller keeps ownership of its state.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

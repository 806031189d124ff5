package bench

import (
	"math"
	"time"

	"github.com/katalvlaran/expknap/knapsack"
)

// checksumModulus bounds ZSum and CSum.
const checksumModulus = 1000

// Summary aggregates one benchmark run. Means are taken over Tests instances;
// times are in seconds.
type Summary struct {
	Items      int     `yaml:"n"`
	Range      int     `yaml:"r"`
	Type       string  `yaml:"type"`
	Tests      int     `yaml:"tests"`
	Iterations float64 `yaml:"iterations"`
	Touched    float64 `yaml:"touched"`
	TouchedPct float64 `yaml:"touched_pct"`
	Reduced    float64 `yaml:"reduced"`
	CoreSize   float64 `yaml:"coresize"`
	CorePct    float64 `yaml:"core_pct"`
	GreedyGap  float64 `yaml:"greedygap"`
	Gap        float64 `yaml:"gap"`
	ZSum       int64   `yaml:"zsum"`
	CSum       int64   `yaml:"csum"`
	MeanTime   float64 `yaml:"time"`
	Variance   float64 `yaml:"variance"`
	StdDev     float64 `yaml:"stddev"`
}

// accumulator folds per-instance statistics.
type accumulator struct {
	count      int
	iterations int64
	touched    int64
	reduced    int64
	coreSize   int64
	greedyGap  int64
	gap        int64
	zsum       int64
	csum       int64
	totalTime  float64
	sqTime     float64
}

func (a *accumulator) add(res knapsack.Result, capacity int64, elapsed time.Duration) {
	sec := elapsed.Seconds()

	a.count++
	a.iterations += res.Stats.Iterations
	a.touched += res.Stats.Touched
	a.reduced += res.Stats.Reduced
	a.coreSize += int64(res.Stats.CoreSize)
	a.greedyGap += res.Profit - res.Stats.Heuristic
	a.gap += res.Stats.Dantzig - res.Profit
	a.zsum = (a.zsum + res.Profit) % checksumModulus
	a.csum = (a.csum + capacity) % checksumModulus
	a.totalTime += sec
	a.sqTime += sec * sec
}

// summary fills the aggregate fields of s. The caller sets the run header.
func (a *accumulator) summary(s Summary) Summary {
	if a.count == 0 {
		return s
	}

	var (
		tests = float64(a.count)
		total = float64(s.Items) * tests
		mean  = a.totalTime / tests
	)

	s.Tests = a.count
	s.Iterations = float64(a.iterations) / tests
	s.Touched = float64(a.touched) / tests
	s.Reduced = float64(a.reduced) / tests
	s.CoreSize = float64(a.coreSize) / tests
	if total > 0 {
		s.TouchedPct = 100 * float64(a.touched) / total
		s.CorePct = 100 * float64(a.coreSize) / total
	}
	s.GreedyGap = float64(a.greedyGap) / tests
	s.Gap = float64(a.gap) / tests
	s.ZSum = a.zsum
	s.CSum = a.csum
	s.MeanTime = mean
	// Rounding can push E[t²]-E[t]² slightly below zero.
	s.Variance = math.Max(0, a.sqTime/tests-mean*mean)
	s.StdDev = math.Sqrt(s.Variance)

	return s
}

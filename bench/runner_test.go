package bench_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/expknap/bench"
	"github.com/katalvlaran/expknap/config"
	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

const (
	testItems = 200
	testRange = 1000
	testTests = 6
)

// stepClock advances by step on every reading, so each solve takes step.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestRunner_Summary(t *testing.T) {
	r := &bench.Runner{
		Config: bench.Config{Items: testItems, Range: testRange, Type: instance.WeaklyCorrelated, Tests: testTests},
		Clock:  stepClock(10 * time.Millisecond),
	}
	s, err := r.Run(context.Background())
	require.NoError(t, err)

	var (
		zsum, csum int64
		iterations int64
		coreSize   int
	)
	for v := int64(1); v <= testTests; v++ {
		inst, err := instance.Generate(testItems, testRange, instance.WeaklyCorrelated, instance.WithSeed(v))
		require.NoError(t, err)
		res, err := inst.Solve()
		require.NoError(t, err)
		zsum = (zsum + res.Profit) % 1000
		csum = (csum + inst.Capacity) % 1000
		iterations += res.Stats.Iterations
		coreSize += res.Stats.CoreSize
	}

	assert.Equal(t, testItems, s.Items)
	assert.Equal(t, testRange, s.Range)
	assert.Equal(t, "weakly-correlated", s.Type)
	assert.Equal(t, testTests, s.Tests)
	assert.Equal(t, zsum, s.ZSum)
	assert.Equal(t, csum, s.CSum)
	assert.InDelta(t, float64(iterations)/testTests, s.Iterations, 1e-9)
	assert.InDelta(t, float64(coreSize)/testTests, s.CoreSize, 1e-9)
	assert.InDelta(t, 0.01, s.MeanTime, 1e-9)
	assert.InDelta(t, 0, s.StdDev, 1e-6)
	assert.GreaterOrEqual(t, s.GreedyGap, 0.0)
	assert.GreaterOrEqual(t, s.Gap, 0.0)
	assert.LessOrEqual(t, s.CorePct, 100.0)
	assert.LessOrEqual(t, s.Reduced, s.Touched)
}

func TestRunner_SeedOffset(t *testing.T) {
	base := bench.Config{Items: 50, Range: 100, Type: instance.Uncorrelated, Tests: 3}

	a, err := (&bench.Runner{Config: base}).Run(context.Background())
	require.NoError(t, err)

	shifted := base
	shifted.Seed = 1
	shifted.Tests = 2
	b, err := (&bench.Runner{Config: shifted}).Run(context.Background())
	require.NoError(t, err)

	// Seeds 2,3 are a suffix of seeds 1,2,3: the capacity checksums differ
	// exactly by instance 1.
	first, err := instance.Generate(50, 100, instance.Uncorrelated, instance.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, a.CSum, (b.CSum+first.Capacity)%1000)
}

func TestRunner_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := &bench.Runner{
		Config:  bench.Config{Items: 100, Range: 100, Type: instance.StronglyCorrelated, Tests: 4},
		Metrics: bench.NewMetrics(reg),
	}
	s, err := r.Run(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			values[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
		}
	}
	assert.InDelta(t, 4, values["expknap_solves_total"], 0)
	assert.InDelta(t, 4, values["expknap_solve_duration_seconds"], 0)
	assert.InDelta(t, s.Iterations*4, values["expknap_branch_nodes_total"], 1e-6)
	assert.Contains(t, values, "expknap_core_size")
}

func TestRunner_SolverFailureCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := &bench.Runner{
		Config: bench.Config{
			Items: 200, Range: 1000, Type: instance.StronglyCorrelated, Tests: 1,
			Options: []knapsack.Option{knapsack.WithNodeLimit(1)},
		},
		Metrics: bench.NewMetrics(reg),
	}
	_, err := r.Run(context.Background())
	if err == nil {
		t.Skip("greedy solution closed the root node")
	}
	assert.ErrorIs(t, err, knapsack.ErrNodeLimit)

	families, gerr := reg.Gather()
	require.NoError(t, gerr)
	for _, mf := range families {
		if mf.GetName() == "expknap_solves_total" {
			assert.Equal(t, "error", mf.GetMetric()[0].GetLabel()[0].GetValue())
		}
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &bench.Runner{Config: bench.Config{Items: 10, Range: 10, Type: instance.Uncorrelated, Tests: 3}}
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_InvalidConfig(t *testing.T) {
	_, err := (&bench.Runner{Config: bench.Config{Items: 10, Range: 10, Type: instance.Uncorrelated}}).Run(context.Background())
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)

	_, err = (&bench.Runner{Config: bench.Config{Items: 0, Range: 10, Type: instance.Uncorrelated, Tests: 1}}).Run(context.Background())
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)
	assert.ErrorIs(t, err, instance.ErrTooFewItems)
}

func TestRunner_Logs(t *testing.T) {
	var buf bytes.Buffer
	r := &bench.Runner{
		Config: bench.Config{Items: 20, Range: 20, Type: instance.Uncorrelated, Tests: 2},
		Logger: config.LoggingConfig{Level: "debug", Format: "text"}.NewLogger(&buf),
	}
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "instance solved")
	assert.Contains(t, out, "run finished")
}

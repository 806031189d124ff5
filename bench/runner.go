package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

// ErrInvalidConfig indicates a run that cannot produce a single instance.
var ErrInvalidConfig = errors.New("bench: invalid run configuration")

// Config describes one benchmark series.
type Config struct {
	Items   int
	Range   int
	Type    instance.Type
	Tests   int
	Seed    int64
	Options []knapsack.Option
}

// Runner executes a benchmark series. Logger, Metrics and Clock are
// optional; Clock defaults to time.Now.
type Runner struct {
	Config  Config
	Logger  *slog.Logger
	Metrics *Metrics
	Clock   func() time.Time
}

// Run solves Config.Tests instances in seed order and returns their summary.
// Every optimum is checked with knapsack.Verify. Cancellation of ctx is
// observed between instances.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	cfg := r.Config
	if cfg.Tests < 1 {
		return Summary{}, fmt.Errorf("%w: tests=%d", ErrInvalidConfig, cfg.Tests)
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := r.Clock
	if clock == nil {
		clock = time.Now
	}

	logger.InfoContext(ctx, "run started",
		"n", cfg.Items, "r", cfg.Range, "type", cfg.Type.String(), "tests", cfg.Tests)

	var acc accumulator
	for v := 1; v <= cfg.Tests; v++ {
		if err := ctx.Err(); err != nil {
			return Summary{}, fmt.Errorf("run stopped after %d instances: %w", v-1, err)
		}

		seed := cfg.Seed + int64(v)
		inst, err := instance.Generate(cfg.Items, cfg.Range, cfg.Type, instance.WithSeed(seed))
		if err != nil {
			return Summary{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		res, elapsed, err := r.solve(inst, clock)
		if err != nil {
			r.Metrics.failed()
			return Summary{}, fmt.Errorf("instance %d (seed %d): %w", v, seed, err)
		}

		r.Metrics.observe(res, elapsed)
		acc.add(res, inst.Capacity, elapsed)

		logger.DebugContext(ctx, "instance solved",
			"seed", seed,
			"capacity", inst.Capacity,
			"profit", res.Profit,
			"iterations", res.Stats.Iterations,
			"core", res.Stats.CoreSize,
			"elapsed", elapsed)
	}

	s := acc.summary(Summary{Items: cfg.Items, Range: cfg.Range, Type: cfg.Type.String()})

	logger.InfoContext(ctx, "run finished",
		"iterations", s.Iterations, "coresize", s.CoreSize, "time", s.MeanTime)

	return s, nil
}

// solve times one Solve call and verifies the result independently of
// the WithVerify option.
func (r *Runner) solve(inst instance.Instance, clock func() time.Time) (knapsack.Result, time.Duration, error) {
	start := clock()
	res, err := inst.Solve(r.Config.Options...)
	elapsed := clock().Sub(start)
	if err != nil {
		return knapsack.Result{}, elapsed, err
	}

	if err = knapsack.Verify(inst.Items, inst.Capacity, res); err != nil {
		return knapsack.Result{}, elapsed, err
	}

	return res, elapsed, nil
}

// Package expknap is an exact solver for the 0-1 knapsack problem built on
// the expanding-core branch-and-bound algorithm.
//
// Given items with positive integer profits and weights and a capacity c,
// the solver selects the subset of maximum total profit whose total weight
// does not exceed c. Only a small "core" of items around the break item is
// ever sorted by efficiency; the core grows lazily while the search runs and
// items that provably cannot improve the incumbent are eliminated before
// they are sorted.
//
// Layout:
//
//	knapsack/      the solver: Solve, Verify, options and search statistics
//	instance/      the four classic instance families plus YAML instance files
//	bench/         benchmark runs over generated series, trace file, metrics
//	config/        viper-backed configuration for the command line tool
//	cmd/expknap/   the expknap command (run, solve, generate, version)
//	examples/      small runnable programs
//
// Quick start:
//
//	items := []knapsack.Item{{Profit: 60, Weight: 10}, {Profit: 100, Weight: 20}, {Profit: 120, Weight: 30}}
//	res, err := knapsack.Solve(items, 50)
//	// res.Profit == 220, res.Selected == [false true true]
//
// The library packages never log and never panic on bad input; they return
// sentinel errors that can be matched with errors.Is.
package expknap

// Package bench runs expknap over series of generated instances and
// summarizes the search effort.
//
// A run draws Tests instances of one family (instance v uses seed Seed+v),
// solves and verifies each, and folds the statistics into a Summary:
// mean branch-and-bound nodes, items touched and eliminated by reduction,
// core size, the gaps between the greedy heuristic, the optimum and the
// Dantzig bound, checksums of optima and capacities (mod 1000), and the
// mean, variance and standard deviation of the solve time in seconds.
//
// Summaries can be appended to a YAML trace file (TraceWriter) and solver
// activity can be exported as Prometheus metrics (Metrics).
package bench

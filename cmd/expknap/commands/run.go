package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expknap/bench"
)

const runLong = `Solve a series of generated instances and print the summary.

The instance shape comes from the run section of the config file unless
"n r type" is given on the command line. Type is 1-4 or one of
uncorrelated, weakly-correlated, strongly-correlated, subset-sum.`

// RunCommand holds the flags of the run command.
type RunCommand struct {
	globals *GlobalOptions

	tests     int
	seed      int64
	tracePath string
	metrics   bool
}

// NewRunCommand creates the run command.
func NewRunCommand(globals *GlobalOptions) *cobra.Command {
	rc := &RunCommand{globals: globals}

	cmd := &cobra.Command{
		Use:   "run [n r type]",
		Short: "Benchmark the solver on generated instances",
		Long:  runLong,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("%w: expected 0 or 3 arguments, got %d", ErrArgs, len(args))
			}
			return nil
		},
		RunE: rc.run,
	}

	cmd.Flags().IntVarP(&rc.tests, "tests", "t", 0, "Number of instances (0 = run.tests)")
	cmd.Flags().Int64Var(&rc.seed, "seed", 0, "Seed offset; instance v uses seed+v (default run.seed)")
	cmd.Flags().StringVar(&rc.tracePath, "trace", "", "Append the summary to this YAML trace file")
	cmd.Flags().BoolVar(&rc.metrics, "metrics", false, "Print solver metrics after the run")

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := rc.globals.load()
	if err != nil {
		return err
	}

	bcfg := bench.Config{
		Items:   cfg.Run.Items,
		Range:   cfg.Run.Range,
		Type:    cfg.Run.InstanceType(),
		Tests:   cfg.Run.Tests,
		Seed:    cfg.Run.Seed,
		Options: cfg.Solver.Options(),
	}
	if len(args) == 3 {
		bcfg.Items, bcfg.Range, bcfg.Type, err = parseShape(args)
		if err != nil {
			return err
		}
	}
	if rc.tests > 0 {
		bcfg.Tests = rc.tests
	}
	if cmd.Flags().Changed("seed") {
		bcfg.Seed = rc.seed
	}

	runner := &bench.Runner{Config: bcfg, Logger: logger}

	var registry *prometheus.Registry
	if rc.metrics || cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		runner.Metrics = bench.NewMetrics(registry)
	}

	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	tracePath := rc.tracePath
	if tracePath == "" && cfg.Trace.Enabled {
		tracePath = cfg.Trace.Path
	}
	if tracePath != "" {
		if err = bench.NewTraceWriter(tracePath).Append(time.Now(), summary); err != nil {
			return err
		}
		logger.Debug("trace appended", "path", tracePath)
	}

	if rc.globals.Quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	renderSummary(out, summary)

	if registry != nil {
		return renderMetrics(out, registry)
	}

	return nil
}

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expknap/instance"
	"github.com/katalvlaran/expknap/knapsack"
)

// SolveCommand holds the flags of the solve command.
type SolveCommand struct {
	globals *GlobalOptions

	all   bool
	stats bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(globals *GlobalOptions) *cobra.Command {
	sc := &SolveCommand{globals: globals}

	cmd := &cobra.Command{
		Use:   "solve <instance.yaml>",
		Short: "Solve one instance file",
		Long:  "Solve a YAML instance (capacity plus items) with the solver settings from the config.",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().BoolVarP(&sc.all, "all", "a", false, "List rejected items too")
	cmd.Flags().BoolVarP(&sc.stats, "stats", "s", false, "Print search statistics")

	return cmd
}

func (sc *SolveCommand) run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := sc.globals.load()
	if err != nil {
		return err
	}

	in, err := instance.LoadFile(args[0])
	if err != nil {
		return err
	}
	if err = in.Validate(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("instance loaded", "path", args[0], "items", len(in.Items), "capacity", in.Capacity)

	out := cmd.OutOrStdout()

	res, err := in.Solve(cfg.Solver.Options()...)
	if err != nil {
		if !sc.globals.Quiet {
			color.New(color.FgRed).Fprintf(out, "No solution (%s)\n", args[0])
		}
		return fmt.Errorf("solve %s: %w", args[0], err)
	}

	verr := knapsack.Verify(in.Items, in.Capacity, res)
	if sc.globals.Quiet {
		return verr
	}

	renderSolution(out, in, res, sc.all)
	if sc.stats || sc.globals.Verbose {
		renderStats(out, res.Stats)
	}

	if verr != nil {
		color.New(color.FgRed).Fprintf(out, "Solution rejected: %v\n", verr)
		return verr
	}

	color.New(color.FgGreen).Fprintf(out, "Optimal profit %d (%d of %d items)\n", res.Profit, countSelected(res.Selected), len(in.Items))

	return nil
}

func countSelected(sel []bool) int {
	n := 0
	for _, s := range sel {
		if s {
			n++
		}
	}

	return n
}

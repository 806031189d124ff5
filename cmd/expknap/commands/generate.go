package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/expknap/instance"
)

// GenerateCommand holds the flags of the generate command.
type GenerateCommand struct {
	globals *GlobalOptions

	seed   int64
	output string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(globals *GlobalOptions) *cobra.Command {
	gc := &GenerateCommand{globals: globals}

	cmd := &cobra.Command{
		Use:   "generate n r type",
		Short: "Write a generated instance as YAML",
		Args:  cobra.ExactArgs(3),
		RunE:  gc.run,
	}

	cmd.Flags().Int64Var(&gc.seed, "seed", 1, "Generator seed (0 = default)")
	cmd.Flags().StringVarP(&gc.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func (gc *GenerateCommand) run(cmd *cobra.Command, args []string) error {
	_, logger, err := gc.globals.load()
	if err != nil {
		return err
	}

	n, r, typ, err := parseShape(args)
	if err != nil {
		return err
	}

	in, err := instance.Generate(n, r, typ, instance.WithSeed(gc.seed))
	if err != nil {
		return err
	}

	if gc.output == "" {
		return in.Save(cmd.OutOrStdout())
	}

	if err = in.SaveFile(gc.output); err != nil {
		return err
	}
	logger.Info("instance written", "path", gc.output, "items", n, "capacity", in.Capacity)

	return nil
}

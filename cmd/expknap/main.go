// Package main provides the entry point for the expknap CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/expknap/cmd/expknap/commands"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	globals := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "expknap",
		Short: "Expanding-core 0-1 knapsack solver",
		Long: `expknap solves 0-1 knapsack instances with the expanding-core
branch-and-bound algorithm.

Commands:
  run       Solve a series of generated instances and summarize the effort
  solve     Solve one instance file
  generate  Write a generated instance as YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globals.ConfigPath, "config", "c", "", "config file (default .expknap.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&globals.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globals.Quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(commands.NewRunCommand(globals))
	rootCmd.AddCommand(commands.NewSolveCommand(globals))
	rootCmd.AddCommand(commands.NewGenerateCommand(globals))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "expknap %s (commit: %s)\n", version, commit)
		},
	}
}

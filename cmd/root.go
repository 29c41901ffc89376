package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	verbose bool
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "quboverify",
	Short: "quboverify reduces small combinatorial problems to QUBO and verifies the reductions exhaustively",
	Long: `The tool encodes Vertex Cover, Independent Set, Graph Coloring, Set Packing, Max-2-SAT and binary ILP
instances as QUBO matrices, solves both sides by brute force and writes the results as ground truth for QUBO solvers`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootopts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&rootopts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewCheckCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"fmt"

	"github.com/quboverify/quboverify/pkg/dataset"
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
	"github.com/quboverify/quboverify/pkg/reduction"
	"github.com/quboverify/quboverify/pkg/verify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOpts struct {
	autoPenalty bool
	verify      bool
	skipOracle  bool
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve <instance file>",
		Short: "reduces a single instance and prints its QUBO record",
		Long:  `reduces a single instance to QUBO, solves the QUBO by brute force and prints the resulting record as JSON`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := dataset.LoadInstance(args[0])
			if err != nil {
				return err
			}
			if solveopts.autoPenalty {
				inst = applySufficientPenalty(inst)
			}

			var red *reduction.Reduction
			var solution qubo.Solution
			if solveopts.verify {
				report, err := verify.Check(inst, verify.Options{SkipOracle: solveopts.skipOracle})
				if err != nil {
					return err
				}
				red, solution = report.Reduction, report.Solution
				logrus.Infof("Reduction verified, native optimum %v.", report.Native.Value)
			} else {
				red, err = reduction.Reduce(inst)
				if err != nil {
					return err
				}
				solution = qubo.BruteForce(red.QUBO)
			}

			record, err := dataset.NewRecord(inst, red, solution)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal record: %v", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	solveCmd.Flags().BoolVar(&solveopts.autoPenalty, "auto-penalty", false, "replace the instance's penalty by one which provably dominates the objective")
	solveCmd.Flags().BoolVar(&solveopts.verify, "verify", false, "verify the reduction against exhaustive search in the native problem space")
	solveCmd.Flags().BoolVar(&solveopts.skipOracle, "skip-oracle", false, "do not cross check optima with the MaxSAT solver when verifying")
	return solveCmd
}

func applySufficientPenalty(inst problem.Instance) problem.Instance {
	p, ok := inst.(problem.Penalized)
	if !ok {
		return inst
	}
	penalty := reduction.SufficientPenalty(inst)
	logrus.Infof("Using penalty %v instead of %v.", penalty, p.PenaltyWeight())
	return reduction.WithPenalty(inst, penalty)
}

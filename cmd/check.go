package main

import (
	"fmt"
	"math"

	"github.com/quboverify/quboverify/pkg/api"
	"github.com/quboverify/quboverify/pkg/dataset"
	"github.com/quboverify/quboverify/pkg/qubo"
	"github.com/quboverify/quboverify/pkg/reduction"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type checkOpts struct {
	strict bool
}

var checkopts = checkOpts{}

func NewCheckCmd() *cobra.Command {

	checkCmd := &cobra.Command{
		Use:   "check <record>...",
		Short: "re-verifies existing QUBO records",
		Long: `solves the QUBO matrix stored in every record by brute force and compares the result with the stored optimum.
The stored matrix is also compared with a fresh reduction of the stored source instance.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			for _, file := range files {
				record, err := dataset.ReadRecord(file)
				if err != nil {
					return err
				}
				if err := checkRecord(record, checkopts.strict); err != nil {
					return fmt.Errorf("%s: %v", file, err)
				}
				logrus.Infof("%s: %s record is consistent.", file, record.Problem)
			}
			return nil
		},
	}

	checkCmd.Flags().BoolVar(&checkopts.strict, "strict", false, "fail if the stored matrix differs from a fresh reduction of the source instance")
	return checkCmd
}

// checkRecord verifies that the stored optimum is the brute force optimum of the stored matrix and
// compares the stored matrix with a fresh reduction. Matrices produced by other encoders may differ
// from ours while being correct, so a differing matrix only fails in strict mode.
func checkRecord(record *api.Record, strict bool) error {
	stored, err := dataset.RecordModel(record)
	if err != nil {
		return err
	}
	solution := qubo.BruteForce(stored)
	if math.Abs(solution.Value-record.QUBOOptimal.Value) >= qubo.Tolerance {
		return fmt.Errorf("stored optimum %v, brute force optimum %v", record.QUBOOptimal.Value, solution.Value)
	}
	if !slices.EqualFunc(solution.Configs, record.QUBOOptimal.Configs, func(a, b []int) bool {
		return slices.Equal(a, b)
	}) {
		return fmt.Errorf("stored optimal configurations %v, brute force found %v", record.QUBOOptimal.Configs, solution.Configs)
	}

	inst, err := dataset.DecodeInstance(record.Problem, record.Source)
	if err != nil {
		return err
	}
	red, err := reduction.Reduce(inst)
	if err != nil {
		return err
	}
	if !red.QUBO.Equivalent(stored, qubo.Tolerance) {
		if strict {
			return fmt.Errorf("stored matrix differs from the reduction of the source instance")
		}
		logrus.Warnf("The stored %s matrix differs from the reduction of its source instance.", record.Problem)
	}
	return nil
}

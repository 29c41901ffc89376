// Package verify checks a QUBO reduction against exhaustive search in the problem's native space and
// against an independent MaxSAT oracle.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
	"github.com/quboverify/quboverify/pkg/reduction"
	"github.com/quboverify/quboverify/pkg/sat"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrMismatch is wrapped by every disagreement between the QUBO optimum and the native optimum.
var ErrMismatch = errors.New("reduction mismatch")

type Options struct {
	// SkipOracle disables the MaxSAT cross check.
	SkipOracle bool
}

// Report holds everything computed while checking one instance.
type Report struct {
	Instance  problem.Instance
	Reduction *reduction.Reduction
	Solution  qubo.Solution
	// Decoded are the distinct native assignments of all QUBO minimizers, in lexicographic order.
	Decoded [][]int
	Native  problem.Optimum
	Oracle  *sat.Result
}

// Check reduces inst, solves both sides exhaustively and verifies that the QUBO minimizers decode to
// exactly the optimal native assignments.
func Check(inst problem.Instance, opts Options) (*Report, error) {
	red, err := reduction.Reduce(inst)
	if err != nil {
		return nil, err
	}
	report := &Report{Instance: inst, Reduction: red}

	logrus.Debugf("Solving %s QUBO with %d variables.", inst.Name(), red.QUBO.NumVars())
	report.Solution = qubo.BruteForce(red.QUBO)
	report.Decoded = Decode(red, report.Solution.Configs)

	logrus.Debugf("Solving %s in its native space.", inst.Name())
	report.Native = problem.BruteForce(inst)

	if err := compare(inst, report); err != nil {
		return report, err
	}

	if !opts.SkipOracle {
		oracle, err := sat.Optimize(inst)
		if err != nil {
			return report, fmt.Errorf("failed to run the MaxSAT oracle on %s: %v", inst.Name(), err)
		}
		report.Oracle = oracle
		if oracle.Feasible != report.Native.Feasible {
			return report, fmt.Errorf("%w: %s oracle feasibility %v, exhaustive search feasibility %v", ErrMismatch, inst.Name(), oracle.Feasible, report.Native.Feasible)
		}
		if oracle.Feasible && math.Abs(oracle.Value-report.Native.Value) > problem.Tolerance {
			return report, fmt.Errorf("%w: %s oracle optimum %v, exhaustive search optimum %v", ErrMismatch, inst.Name(), oracle.Value, report.Native.Value)
		}
	}
	return report, nil
}

// Decode maps QUBO assignments to native assignments and removes duplicates, which arise when
// auxiliary variables take several values for the same native assignment.
func Decode(red *reduction.Reduction, configs [][]int) [][]int {
	distinct := map[string][]int{}
	for _, c := range configs {
		x := red.Extract(c)
		distinct[fmt.Sprint(x)] = x
	}
	decoded := maps.Values(distinct)
	slices.SortFunc(decoded, func(a, b []int) int {
		return slices.Compare(a, b)
	})
	return decoded
}

func compare(inst problem.Instance, report *Report) error {
	if !report.Native.Feasible {
		for _, x := range report.Decoded {
			if _, feasible := inst.Evaluate(x); feasible {
				return fmt.Errorf("%w: %s has no feasible assignment but the QUBO optimum decodes to %v", ErrMismatch, inst.Name(), x)
			}
		}
		return nil
	}
	for _, x := range report.Decoded {
		value, feasible := inst.Evaluate(x)
		if !feasible {
			return fmt.Errorf("%w: %s QUBO optimum decodes to infeasible assignment %v, the penalty is too small", ErrMismatch, inst.Name(), x)
		}
		if math.Abs(value-report.Native.Value) > problem.Tolerance {
			return fmt.Errorf("%w: %s QUBO optimum decodes to %v with value %v, native optimum is %v", ErrMismatch, inst.Name(), x, value, report.Native.Value)
		}
	}
	if !slices.EqualFunc(report.Decoded, report.Native.Configs, func(a, b []int) bool {
		return slices.Equal(a, b)
	}) {
		return fmt.Errorf("%w: %s QUBO minimizers decode to %v, native optima are %v", ErrMismatch, inst.Name(), report.Decoded, report.Native.Configs)
	}
	return nil
}

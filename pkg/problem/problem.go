package problem

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInstance is wrapped by every structural validation error.
var ErrInvalidInstance = errors.New("invalid instance")

// Tolerance is the absolute difference under which two objective values are considered equal.
const Tolerance = 1e-9

type Sense int

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Instance is a problem in its native variable space. A configuration assigns every one of the
// NumVariables variables a value in [0, Domain).
type Instance interface {
	// Name is the problem name used in the interchange records.
	Name() string
	Validate() error
	NumVariables() int
	Domain() int
	Sense() Sense
	// Evaluate returns the objective value of config and whether config satisfies all constraints.
	Evaluate(config []int) (value float64, feasible bool)
}

// Penalized is implemented by instances whose QUBO encoding depends on a penalty weight.
type Penalized interface {
	Instance
	PenaltyWeight() float64
}

// Optimum is the exact optimum of an instance together with every assignment reaching it.
type Optimum struct {
	Feasible bool
	Value    float64
	Configs  [][]int
}

// BruteForce enumerates all Domain()^NumVariables() assignments in lexicographic order and keeps
// every feasible assignment whose value ties with the best one.
func BruteForce(inst Instance) Optimum {
	n := inst.NumVariables()
	k := inst.Domain()
	maximize := inst.Sense() == Maximize

	best := Optimum{}
	config := make([]int, n)
	for {
		if value, feasible := inst.Evaluate(config); feasible {
			switch {
			case !best.Feasible, maximize && value > best.Value+Tolerance, !maximize && value < best.Value-Tolerance:
				best = Optimum{Feasible: true, Value: value, Configs: [][]int{clone(config)}}
			case math.Abs(value-best.Value) < Tolerance:
				best.Configs = append(best.Configs, clone(config))
			}
		}
		if !next(config, k) {
			break
		}
	}
	return best
}

// next advances config to its lexicographic successor, the last variable being the least
// significant digit. It returns false once all assignments were visited.
func next(config []int, k int) bool {
	for i := len(config) - 1; i >= 0; i-- {
		config[i]++
		if config[i] < k {
			return true
		}
		config[i] = 0
	}
	return false
}

func clone(config []int) []int {
	c := make([]int, len(config))
	copy(c, config)
	return c
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInstance, fmt.Sprintf(format, args...))
}

func validatePenalty(penalty float64) error {
	if !(penalty > 0) || math.IsInf(penalty, 0) {
		return invalidf("penalty must be strictly positive and finite, got %v", penalty)
	}
	return nil
}

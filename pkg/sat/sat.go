package sat

import (
	"fmt"

	"github.com/crillab/gophersat/maxsat"
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/sirupsen/logrus"
)

// Result is an optimal native assignment found by the solver.
type Result struct {
	Feasible bool
	Value    float64
	Config   []int
	// Cost is the total weight of violated soft clauses in the solver's integer units.
	Cost int
}

// Optimize solves inst exactly with the MaxSAT solver.
func Optimize(inst problem.Instance) (*Result, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.NumVariables() == 0 {
		value, feasible := inst.Evaluate(nil)
		return &Result{Feasible: feasible, Value: value, Config: []int{}}, nil
	}
	model, err := NewLoader().Load(inst)
	if err != nil {
		return nil, err
	}
	return Resolve(model)
}

// Resolve runs the solver on a loaded model and maps the solution back to native variables.
func Resolve(m *Model) (*Result, error) {
	solution, cost := maxsat.New(m.constrs...).Solve()
	if solution == nil {
		logrus.Debugf("%s has no feasible assignment.", m.inst.Name())
		return &Result{Feasible: false}, nil
	}
	config := m.decode(solution)
	value, feasible := m.inst.Evaluate(config)
	if !feasible {
		return nil, fmt.Errorf("solver returned assignment %v which violates the constraints of %s", config, m.inst.Name())
	}
	logrus.Debugf("Solver found %v with value %v at cost %d.", config, value, cost)
	return &Result{Feasible: true, Value: value, Config: config, Cost: cost}, nil
}

func (m *Model) decode(solution map[string]bool) []int {
	config := make([]int, len(m.vars))
	for i, names := range m.vars {
		if !m.oneHot {
			if solution[names[0]] {
				config[i] = 1
			}
			continue
		}
		config[i] = -1
		for value, name := range names {
			if solution[name] {
				config[i] = value
				break
			}
		}
	}
	return config
}

package reduction

import (
	"fmt"
	"math"

	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
)

// Reduction is the QUBO encoding of a problem instance together with the mapping of QUBO
// assignments back to the instance's native variables.
type Reduction struct {
	QUBO    *qubo.Model
	extract func(config []int) []int
}

// Extract maps a QUBO assignment to a native assignment of the source instance.
func (r *Reduction) Extract(config []int) []int {
	if r.extract == nil {
		c := make([]int, len(config))
		copy(c, config)
		return c
	}
	return r.extract(config)
}

// Reduce dispatches to the reduction rule of the instance's problem family.
func Reduce(inst problem.Instance) (*Reduction, error) {
	switch p := inst.(type) {
	case *problem.VertexCover:
		return VertexCover(p)
	case *problem.IndependentSet:
		return IndependentSet(p)
	case *problem.Coloring:
		return Coloring(p)
	case *problem.SetPacking:
		return SetPacking(p)
	case *problem.KSatisfiability:
		return KSatisfiability(p)
	case *problem.ILP:
		return ILP(p)
	}
	return nil, fmt.Errorf("no QUBO reduction for %T", inst)
}

// SufficientPenalty returns a penalty weight large enough that no constraint violation can pay off
// for the given instance. It returns 0 for instances without a penalty.
func SufficientPenalty(inst problem.Instance) float64 {
	switch p := inst.(type) {
	case *problem.VertexCover:
		return 1 + float64(p.NumVertices)
	case *problem.IndependentSet:
		return 1 + float64(p.NumVertices)
	case *problem.Coloring:
		return 1 + float64(p.NumVertices)
	case *problem.SetPacking:
		return 1 + sumAbs(p.Weights)
	case *problem.ILP:
		return 1 + sumAbs(p.Objective) + sumAbs(p.ConstraintsRHS)
	}
	return 0
}

// WithPenalty returns a shallow copy of inst using the given penalty weight. Instances without a
// penalty are returned unchanged.
func WithPenalty(inst problem.Instance, penalty float64) problem.Instance {
	switch p := inst.(type) {
	case *problem.VertexCover:
		c := *p
		c.Penalty = penalty
		return &c
	case *problem.IndependentSet:
		c := *p
		c.Penalty = penalty
		return &c
	case *problem.Coloring:
		c := *p
		c.Penalty = penalty
		return &c
	case *problem.SetPacking:
		c := *p
		c.Penalty = penalty
		return &c
	case *problem.ILP:
		c := *p
		c.Penalty = penalty
		return &c
	}
	return inst
}

// addProduct adds scale·(a1 + b1·x_i)(a2 + b2·x_j).
func addProduct(b *qubo.Builder, scale float64, i int, a1, b1 float64, j int, a2, b2 float64) {
	b.AddConstant(scale * a1 * a2)
	b.AddLinear(i, scale*b1*a2)
	b.AddLinear(j, scale*a1*b2)
	b.AddQuadratic(i, j, scale*b1*b2)
}

func sumAbs(values []float64) (sum float64) {
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum
}

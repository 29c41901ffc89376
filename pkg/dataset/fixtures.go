package dataset

import "github.com/quboverify/quboverify/pkg/problem"

// Fixtures returns the reference instances of the ground truth data set.
func Fixtures() []problem.Instance {
	return []problem.Instance{
		// 4 vertices, 5 edges
		&problem.VertexCover{
			Graph: problem.Graph{
				NumVertices: 4,
				Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {0, 2}},
			},
			Penalty: 8,
		},
		// the 4-cycle
		&problem.IndependentSet{
			Graph: problem.Graph{
				NumVertices: 4,
				Edges:       [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
			},
			Penalty: 8,
		},
		// triangle with 3 colors
		&problem.Coloring{
			Graph: problem.Graph{
				NumVertices: 3,
				Edges:       [][2]int{{0, 1}, {1, 2}, {0, 2}},
			},
			NumColors: 3,
			Penalty:   10,
		},
		&problem.SetPacking{
			Sets:        [][]int{{0, 2}, {1, 2}, {0, 3}},
			NumElements: 4,
			Weights:     []float64{1, 2, 1.5},
			Penalty:     8,
		},
		// (x0 ∨ x1) ∧ (¬x0 ∨ x2) ∧ (x1 ∨ ¬x2) ∧ (¬x1 ∨ ¬x2)
		&problem.KSatisfiability{
			NumVars: 3,
			Clauses: [][]problem.Literal{
				{{Variable: 0}, {Variable: 1}},
				{{Variable: 0, Negated: true}, {Variable: 2}},
				{{Variable: 1}, {Variable: 2, Negated: true}},
				{{Variable: 1, Negated: true}, {Variable: 2, Negated: true}},
			},
		},
		// min x0 + 2x1 + 3x2 s.t. x0 + x1 <= 1, x1 + x2 <= 1
		&problem.ILP{
			NumVars:         3,
			Objective:       []float64{1, 2, 3},
			ConstraintsLHS:  [][]float64{{1, 1, 0}, {0, 1, 1}},
			ConstraintsRHS:  []float64{1, 1},
			ConstraintSigns: []problem.Sign{problem.LE, problem.LE},
			Penalty:         10,
		},
	}
}

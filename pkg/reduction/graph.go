package reduction

import (
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
)

// VertexCover encodes min Σ x_i + P·Σ_{(i,j) in E} (1-x_i)(1-x_j).
func VertexCover(p *problem.VertexCover) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := qubo.NewBuilder(p.NumVertices)
	for i := 0; i < p.NumVertices; i++ {
		b.AddLinear(i, 1)
	}
	for _, e := range p.Edges {
		addProduct(b, p.Penalty, e[0], 1, -1, e[1], 1, -1)
	}
	return &Reduction{QUBO: b.Build()}, nil
}

// IndependentSet encodes min -Σ x_i + P·Σ_{(i,j) in E} x_i x_j.
func IndependentSet(p *problem.IndependentSet) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := qubo.NewBuilder(p.NumVertices)
	for i := 0; i < p.NumVertices; i++ {
		b.AddLinear(i, -1)
	}
	for _, e := range p.Edges {
		b.AddQuadratic(e[0], e[1], p.Penalty)
	}
	return &Reduction{QUBO: b.Build()}, nil
}

// Coloring uses one binary variable per vertex and color, x[v*k+c], and encodes
// P·Σ_v (1 - Σ_c x_vc)² + P·Σ_{(u,v) in E} Σ_c x_uc x_vc. A proper coloring has cost 0.
func Coloring(p *problem.Coloring) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	k := p.NumColors
	b := qubo.NewBuilder(p.NumVertices * k)
	for v := 0; v < p.NumVertices; v++ {
		b.AddConstant(p.Penalty)
		for c := 0; c < k; c++ {
			b.AddLinear(v*k+c, -p.Penalty)
			for d := c + 1; d < k; d++ {
				b.AddQuadratic(v*k+c, v*k+d, 2*p.Penalty)
			}
		}
	}
	for _, e := range p.Edges {
		for c := 0; c < k; c++ {
			b.AddQuadratic(e[0]*k+c, e[1]*k+c, p.Penalty)
		}
	}
	return &Reduction{
		QUBO: b.Build(),
		extract: func(config []int) []int {
			return decodeOneHot(config, p.NumVertices, k)
		},
	}, nil
}

// decodeOneHot returns the first set color of every vertex, or -1 if the vertex has none.
func decodeOneHot(config []int, n, k int) []int {
	colors := make([]int, n)
	for v := range colors {
		colors[v] = -1
		for c := 0; c < k; c++ {
			if config[v*k+c] == 1 {
				colors[v] = c
				break
			}
		}
	}
	return colors
}

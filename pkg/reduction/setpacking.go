package reduction

import (
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
)

// SetPacking encodes min -Σ w_j y_j + P·Σ y_j y_k over all pairs of overlapping sets.
func SetPacking(p *problem.SetPacking) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := len(p.Sets)
	b := qubo.NewBuilder(n)
	for j := 0; j < n; j++ {
		b.AddLinear(j, -p.Weights[j])
		for k := j + 1; k < n; k++ {
			if p.Overlap(j, k) {
				b.AddQuadratic(j, k, p.Penalty)
			}
		}
	}
	return &Reduction{QUBO: b.Build()}, nil
}

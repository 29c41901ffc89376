package reduction

import (
	"math"

	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
)

// SlackBits returns the number of binary slack variables every constraint row needs to be
// expressed as an equality. The slack of a row ranges over 0..b-min(Ax) for LE rows and
// 0..max(Ax)-b for GE rows and is binary encoded; EQ rows need none.
func SlackBits(p *problem.ILP) []int {
	bits := make([]int, len(p.ConstraintsLHS))
	for k, row := range p.ConstraintsLHS {
		var span float64
		switch p.ConstraintSigns[k] {
		case problem.LE:
			lo := 0.0
			for _, a := range row {
				lo += math.Min(a, 0)
			}
			span = p.ConstraintsRHS[k] - lo
		case problem.GE:
			hi := 0.0
			for _, a := range row {
				hi += math.Max(a, 0)
			}
			span = hi - p.ConstraintsRHS[k]
		}
		if span > 0 {
			bits[k] = int(math.Ceil(math.Log2(span + 1)))
		}
	}
	return bits
}

// ILP encodes min cᵗx + P·Σ_k (A_k·z - b_k)², where z extends x by the slack bits of every row. LE rows
// add their slack, GE rows subtract it, so that a zero residual is reachable exactly when x
// satisfies the row. Slack variables follow the original variables in the QUBO.
func ILP(p *problem.ILP) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.NumVars
	bits := SlackBits(p)
	total := n
	for _, s := range bits {
		total += s
	}

	b := qubo.NewBuilder(total)
	for j, c := range p.Objective {
		b.AddLinear(j, c)
	}

	col := n
	for k, row := range p.ConstraintsLHS {
		ext := make([]float64, total)
		copy(ext, row)
		sign := 1.0
		if p.ConstraintSigns[k] == problem.GE {
			sign = -1
		}
		for s := 0; s < bits[k]; s++ {
			ext[col+s] = sign * math.Pow(2, float64(s))
		}
		col += bits[k]
		addSquaredResidual(b, p.Penalty, ext, p.ConstraintsRHS[k])
	}

	return &Reduction{
		QUBO: b.Build(),
		extract: func(config []int) []int {
			x := make([]int, n)
			copy(x, config[:n])
			return x
		},
	}, nil
}

// addSquaredResidual adds scale·(Σ_j a_j·z_j - rhs)².
func addSquaredResidual(b *qubo.Builder, scale float64, a []float64, rhs float64) {
	b.AddConstant(scale * rhs * rhs)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		b.AddLinear(i, scale*(ai*ai-2*rhs*ai))
		for j := i + 1; j < len(a); j++ {
			if a[j] != 0 {
				b.AddQuadratic(i, j, 2*scale*ai*a[j])
			}
		}
	}
}

package qubo

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the absolute difference under which two energies count as a tie.
const Tolerance = 1e-9

// PracticalVars is the model size above which exhaustive enumeration becomes slow.
const PracticalVars = 20

// Solution is the minimum energy of a model and every assignment reaching it.
type Solution struct {
	Value   float64
	Configs [][]int
}

// BruteForce minimizes xᵗQx over all 2ⁿ binary vectors. Vectors are visited in lexicographic
// order with x₀ as the most significant bit, and ties within Tolerance of the first minimizer are
// all kept.
func BruteForce(m *Model) Solution {
	if m.n > PracticalVars {
		logrus.Warnf("Enumerating 2^%d assignments, this may take a while.", m.n)
	}
	if m.n == 0 {
		return Solution{Value: 0, Configs: [][]int{{}}}
	}

	best := Solution{Value: math.Inf(1)}
	x := mat.NewVecDense(m.n, nil)
	bits := make([]int, m.n)
	total := uint64(1) << uint(m.n)
	for k := uint64(0); k < total; k++ {
		for i := range bits {
			bits[i] = int(k>>uint(m.n-1-i)) & 1
			x.SetVec(i, float64(bits[i]))
		}
		value := mat.Inner(x, m.q, x)
		if value < best.Value-Tolerance {
			best = Solution{Value: value, Configs: [][]int{clone(bits)}}
		} else if math.Abs(value-best.Value) < Tolerance {
			best.Configs = append(best.Configs, clone(bits))
		}
	}
	return best
}

func clone(bits []int) []int {
	c := make([]int, len(bits))
	copy(c, bits)
	return c
}

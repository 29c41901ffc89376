package qubo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Model is the quadratic form xᵗQx over binary x plus a constant offset which is not part of the
// form. Q is kept symmetric: the coefficient of xᵢxⱼ (i != j) is split evenly between Q[i][j] and
// Q[j][i].
type Model struct {
	n      int
	q      *mat.SymDense
	offset float64
}

func newModel(n int) *Model {
	m := &Model{n: n}
	if n > 0 {
		m.q = mat.NewSymDense(n, nil)
	}
	return m
}

// FromRows builds a model from any square matrix. Upper triangular or otherwise asymmetric input is
// symmetrized as (A+Aᵗ)/2 which leaves xᵗAx unchanged.
func FromRows(rows [][]float64, offset float64) (*Model, error) {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix is not square: row %d has %d columns, expected %d", i, len(row), n)
		}
	}
	m := newModel(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.q.SetSym(i, j, (rows[i][j]+rows[j][i])/2)
		}
	}
	m.offset = offset
	return m, nil
}

func (m *Model) NumVars() int {
	return m.n
}

func (m *Model) At(i, j int) float64 {
	return m.q.At(i, j)
}

func (m *Model) Offset() float64 {
	return m.offset
}

// Energy evaluates xᵗQx. The offset is not included.
func (m *Model) Energy(x []int) float64 {
	if m.n == 0 {
		return 0
	}
	v := mat.NewVecDense(m.n, nil)
	for i, b := range x {
		v.SetVec(i, float64(b))
	}
	return mat.Inner(v, m.q, v)
}

// Objective evaluates xᵗQx plus the offset, which is the cost of the encoded problem.
func (m *Model) Objective(x []int) float64 {
	return m.Energy(x) + m.offset
}

// Rows returns the symmetric matrix as nested slices.
func (m *Model) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = make([]float64, m.n)
		for j := range rows[i] {
			rows[i][j] = m.q.At(i, j)
		}
	}
	return rows
}

// UpperRows returns the upper triangular matrix with the same quadratic form.
func (m *Model) UpperRows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = make([]float64, m.n)
		rows[i][i] = m.q.At(i, i)
		for j := i + 1; j < m.n; j++ {
			rows[i][j] = 2 * m.q.At(i, j)
		}
	}
	return rows
}

// Equivalent reports whether both models define the same quadratic form and offset within tol.
func (m *Model) Equivalent(o *Model, tol float64) bool {
	if m.n != o.n || math.Abs(m.offset-o.offset) > tol {
		return false
	}
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			if math.Abs(m.q.At(i, j)-o.q.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

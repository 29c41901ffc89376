package qubo

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestBuilder(t *testing.T) {
	g := NewGomegaWithT(t)

	b := NewBuilder(3)
	b.AddLinear(0, -1)
	b.AddLinear(2, 4)
	b.AddQuadratic(0, 1, 3)
	b.AddQuadratic(1, 0, 1)
	b.AddQuadratic(2, 2, -2)
	b.AddConstant(5)
	m := b.Build()

	g.Expect(m.NumVars()).To(Equal(3))
	g.Expect(m.Offset()).To(Equal(5.0))
	g.Expect(m.Rows()).To(Equal([][]float64{
		{-1, 2, 0},
		{2, 0, 0},
		{0, 0, 2},
	}))
	g.Expect(m.UpperRows()).To(Equal([][]float64{
		{-1, 4, 0},
		{0, 0, 0},
		{0, 0, 2},
	}))

	f := func(x []int) float64 {
		x0, x1, x2 := float64(x[0]), float64(x[1]), float64(x[2])
		return -x0 + 4*x2 + 3*x0*x1 + x1*x0 - 2*x2
	}
	for k := 0; k < 8; k++ {
		x := []int{k >> 2 & 1, k >> 1 & 1, k & 1}
		g.Expect(m.Energy(x)).To(BeNumerically("~", f(x), Tolerance))
		g.Expect(m.Objective(x)).To(BeNumerically("~", f(x)+5, Tolerance))
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want [][]float64
	}{
		{
			name: "symmetric input is kept",
			rows: [][]float64{{1, -2}, {-2, 3}},
			want: [][]float64{{1, -2}, {-2, 3}},
		},
		{
			name: "upper triangular input is split",
			rows: [][]float64{{1, -4}, {0, 3}},
			want: [][]float64{{1, -2}, {-2, 3}},
		},
		{
			name: "asymmetric input is averaged",
			rows: [][]float64{{1, -1}, {-3, 3}},
			want: [][]float64{{1, -2}, {-2, 3}},
		},
		{
			name: "empty matrix",
			rows: [][]float64{},
			want: [][]float64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			m, err := FromRows(tt.rows, 0)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(m.Rows()).To(Equal(tt.want))
		})
	}

	g := NewGomegaWithT(t)
	_, err := FromRows([][]float64{{1, 2}, {3}}, 0)
	g.Expect(err).To(HaveOccurred())
}

func TestBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		value   float64
		configs [][]int
	}{
		{
			name:    "all assignments tie on a zero matrix",
			rows:    [][]float64{{0, 0}, {0, 0}},
			value:   0,
			configs: [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		},
		{
			name:    "exclusive pair",
			rows:    [][]float64{{-1, 2}, {0, -1}},
			value:   -1,
			configs: [][]int{{0, 1}, {1, 0}},
		},
		{
			name:    "unique minimum",
			rows:    [][]float64{{-1, -1, 0}, {0, 2, 0}, {0, 0, -3}},
			value:   -4,
			configs: [][]int{{1, 0, 1}},
		},
		{
			name:    "values within tolerance tie",
			rows:    [][]float64{{-1, 5}, {0, -1 + 5e-10}},
			value:   -1,
			configs: [][]int{{0, 1}, {1, 0}},
		},
		{
			name:    "values outside of tolerance do not tie",
			rows:    [][]float64{{-1, 5}, {0, -1 + 1e-6}},
			value:   -1,
			configs: [][]int{{1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			m, err := FromRows(tt.rows, 0)
			g.Expect(err).ToNot(HaveOccurred())
			s := BruteForce(m)
			g.Expect(s.Value).To(BeNumerically("~", tt.value, Tolerance))
			g.Expect(s.Configs).To(Equal(tt.configs))
		})
	}
}

func TestBruteForceEmptyModel(t *testing.T) {
	g := NewGomegaWithT(t)
	s := BruteForce(NewBuilder(0).Build())
	g.Expect(s.Value).To(Equal(0.0))
	g.Expect(s.Configs).To(Equal([][]int{{}}))
}

func TestSymmetricAndUpperPlacementAgree(t *testing.T) {
	g := NewGomegaWithT(t)

	b := NewBuilder(4)
	b.AddLinear(0, -3)
	b.AddLinear(1, -2)
	b.AddLinear(3, -1)
	b.AddQuadratic(0, 1, 4)
	b.AddQuadratic(1, 3, 2.5)
	b.AddQuadratic(2, 3, -1)
	b.AddQuadratic(0, 3, 1)
	sym := b.Build()

	upper, err := FromRows(sym.UpperRows(), sym.Offset())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(upper.Equivalent(sym, Tolerance)).To(BeTrue())
	g.Expect(BruteForce(upper)).To(Equal(BruteForce(sym)))

	for k := 0; k < 16; k++ {
		x := []int{k >> 3 & 1, k >> 2 & 1, k >> 1 & 1, k & 1}
		g.Expect(upper.Energy(x)).To(BeNumerically("~", sym.Energy(x), Tolerance))
	}
}

func TestEquivalent(t *testing.T) {
	g := NewGomegaWithT(t)
	a, _ := FromRows([][]float64{{1, 2}, {2, 1}}, 1)
	b, _ := FromRows([][]float64{{1, 4}, {0, 1}}, 1)
	c, _ := FromRows([][]float64{{1, 4}, {0, 1}}, 2)
	d, _ := FromRows([][]float64{{1, 3}, {0, 1}}, 1)
	e, _ := FromRows([][]float64{{1}}, 1)
	g.Expect(a.Equivalent(b, Tolerance)).To(BeTrue())
	g.Expect(a.Equivalent(c, Tolerance)).To(BeFalse())
	g.Expect(a.Equivalent(d, Tolerance)).To(BeFalse())
	g.Expect(a.Equivalent(e, Tolerance)).To(BeFalse())
}

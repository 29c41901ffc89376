package sat

import (
	"fmt"
	"math"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/sirupsen/logrus"
)

// maxScale bounds the power of ten used to turn fractional weights into integers.
const maxScale = 1e6

// Model is a MaxSAT formulation of a problem instance.
type Model struct {
	inst    problem.Instance
	constrs []maxsat.Constr
	// vars holds, for every native variable, the solver variable of each value. Binary native
	// variables map to a single solver variable which is true for the value 1.
	vars   [][]string
	oneHot bool
}

type Loader struct {
	m         *Model
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{m: &Model{}}
}

// Load creates the solver variables and constraints for inst.
func (loader *Loader) Load(inst problem.Instance) (*Model, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	loader.m.inst = inst
	loader.m.vars = make([][]string, inst.NumVariables())
	_, loader.m.oneHot = inst.(*problem.Coloring)
	if !loader.m.oneHot {
		for i := range loader.m.vars {
			loader.m.vars[i] = []string{loader.ticket()}
		}
	}

	var err error
	switch p := inst.(type) {
	case *problem.VertexCover:
		for _, e := range p.Edges {
			loader.add(maxsat.HardClause(loader.lit(e[0]), loader.lit(e[1])))
		}
		for i := 0; i < p.NumVertices; i++ {
			loader.add(maxsat.SoftClause(loader.lit(i).Negation()))
		}
	case *problem.IndependentSet:
		for _, e := range p.Edges {
			loader.add(maxsat.HardClause(loader.lit(e[0]).Negation(), loader.lit(e[1]).Negation()))
		}
		for i := 0; i < p.NumVertices; i++ {
			loader.add(maxsat.SoftClause(loader.lit(i)))
		}
	case *problem.Coloring:
		loader.loadColoring(p)
	case *problem.SetPacking:
		err = loader.loadSetPacking(p)
	case *problem.KSatisfiability:
		for _, clause := range p.Clauses {
			lits := make([]maxsat.Lit, 0, len(clause))
			for _, l := range clause {
				lit := loader.lit(l.Variable)
				if l.Negated {
					lit = lit.Negation()
				}
				lits = append(lits, lit)
			}
			loader.add(maxsat.SoftClause(lits...))
		}
	case *problem.ILP:
		err = loader.loadILP(p)
	default:
		return nil, fmt.Errorf("no MaxSAT formulation for %T", inst)
	}
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Generated %d solver variables and %d constraints for %s.", loader.varsCount, len(loader.m.constrs), inst.Name())
	return loader.m, nil
}

func (loader *Loader) loadColoring(p *problem.Coloring) {
	k := p.NumColors
	for v := range loader.m.vars {
		names := make([]string, k)
		lits := make([]maxsat.Lit, k)
		for c := range names {
			names[c] = loader.ticket()
			lits[c] = maxsat.Var(names[c])
		}
		loader.m.vars[v] = names
		loader.add(maxsat.HardClause(lits...))
		for c := 0; c < k; c++ {
			for d := c + 1; d < k; d++ {
				loader.add(maxsat.HardClause(lits[c].Negation(), lits[d].Negation()))
			}
		}
	}
	for _, e := range p.Edges {
		for c := 0; c < k; c++ {
			loader.add(maxsat.HardClause(maxsat.Not(loader.m.vars[e[0]][c]), maxsat.Not(loader.m.vars[e[1]][c])))
		}
	}
}

func (loader *Loader) loadSetPacking(p *problem.SetPacking) error {
	for j := range p.Sets {
		for k := j + 1; k < len(p.Sets); k++ {
			if p.Overlap(j, k) {
				loader.add(maxsat.HardClause(loader.lit(j).Negation(), loader.lit(k).Negation()))
			}
		}
	}
	scale, err := integerScale(p.Weights...)
	if err != nil {
		return err
	}
	for j, w := range p.Weights {
		loader.prefer(loader.lit(j), w*scale)
	}
	return nil
}

func (loader *Loader) loadILP(p *problem.ILP) error {
	for k, row := range p.ConstraintsLHS {
		scale, err := integerScale(append([]float64{p.ConstraintsRHS[k]}, row...)...)
		if err != nil {
			return fmt.Errorf("constraint %d: %v", k, err)
		}
		coeffs := make([]int, len(row))
		for j, a := range row {
			coeffs[j] = toInt(a * scale)
		}
		rhs := toInt(p.ConstraintsRHS[k] * scale)
		sign := p.ConstraintSigns[k]
		if sign == problem.GE || sign == problem.EQ {
			loader.atLeast(coeffs, rhs)
		}
		if sign == problem.LE || sign == problem.EQ {
			negated := make([]int, len(coeffs))
			for j, c := range coeffs {
				negated[j] = -c
			}
			loader.atLeast(negated, -rhs)
		}
	}

	scale, err := integerScale(p.Objective...)
	if err != nil {
		return fmt.Errorf("objective: %v", err)
	}
	for j, c := range p.Objective {
		// minimizing c·x is preferring x false with weight c
		loader.prefer(loader.lit(j).Negation(), c*scale)
	}
	return nil
}

// atLeast adds the hard constraint Σ coeffs[j]·x_j >= rhs. Negative coefficients are moved onto the
// negated literal, and constraints which always hold are dropped.
func (loader *Loader) atLeast(coeffs []int, rhs int) {
	var lits []maxsat.Lit
	var weights []int
	for j, c := range coeffs {
		switch {
		case c > 0:
			lits = append(lits, loader.lit(j))
			weights = append(weights, c)
		case c < 0:
			lits = append(lits, loader.lit(j).Negation())
			weights = append(weights, -c)
			rhs -= c
		}
	}
	if rhs <= 0 {
		return
	}
	loader.add(maxsat.HardPBConstr(lits, weights, rhs))
}

// prefer adds a soft clause costing weight when lit is false. A negative weight prefers the
// negation instead.
func (loader *Loader) prefer(lit maxsat.Lit, weight float64) {
	w := toInt(weight)
	switch {
	case w > 0:
		loader.add(maxsat.WeightedClause([]maxsat.Lit{lit}, w))
	case w < 0:
		loader.add(maxsat.WeightedClause([]maxsat.Lit{lit.Negation()}, -w))
	}
}

func (loader *Loader) add(c maxsat.Constr) {
	loader.m.constrs = append(loader.m.constrs, c)
}

func (loader *Loader) lit(variable int) maxsat.Lit {
	return maxsat.Var(loader.m.vars[variable][0])
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}

// integerScale returns the smallest power of ten which makes all values integral.
func integerScale(values ...float64) (float64, error) {
	for scale := 1.0; scale <= maxScale; scale *= 10 {
		integral := true
		for _, v := range values {
			if math.Abs(v*scale-math.Round(v*scale)) > 1e-6 {
				integral = false
				break
			}
		}
		if integral {
			return scale, nil
		}
	}
	return 0, fmt.Errorf("coefficients %v can not be scaled to integers", values)
}

func toInt(v float64) int {
	return int(math.Round(v))
}

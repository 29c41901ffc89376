package reduction

import (
	"github.com/quboverify/quboverify/pkg/problem"
	"github.com/quboverify/quboverify/pkg/qubo"
)

// KSatisfiability counts unsatisfied clauses. A clause is unsatisfied iff both literals are false,
// so its cost is the product of the false indicators: 1-x for a plain literal, x for a negated one.
func KSatisfiability(p *problem.KSatisfiability) (*Reduction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := qubo.NewBuilder(p.NumVars)
	for _, clause := range p.Clauses {
		a1, b1 := falseIndicator(clause[0])
		a2, b2 := falseIndicator(clause[1])
		addProduct(b, 1, clause[0].Variable, a1, b1, clause[1].Variable, a2, b2)
	}
	return &Reduction{QUBO: b.Build()}, nil
}

// falseIndicator returns (a, b) such that a + b·x is 1 exactly when the literal is false.
func falseIndicator(l problem.Literal) (float64, float64) {
	if l.Negated {
		return 0, 1
	}
	return 1, -1
}

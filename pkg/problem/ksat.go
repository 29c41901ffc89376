package problem

// Literal is a possibly negated occurrence of a variable in a clause.
type Literal struct {
	Variable int  `json:"variable"`
	Negated  bool `json:"negated"`
}

// Satisfied reports whether the literal is true under config.
func (l Literal) Satisfied(config []int) bool {
	return (config[l.Variable] == 1) != l.Negated
}

// KSatisfiability is a Max-2-SAT instance: find an assignment satisfying as many two-literal
// clauses as possible.
type KSatisfiability struct {
	NumVars int         `json:"num_variables"`
	Clauses [][]Literal `json:"clauses"`
}

// ClauseSize is the only clause width the QUBO encoding supports.
const ClauseSize = 2

func (p *KSatisfiability) Name() string { return "KSatisfiability" }
func (p *KSatisfiability) NumVariables() int { return p.NumVars }
func (p *KSatisfiability) Domain() int { return 2 }
func (p *KSatisfiability) Sense() Sense { return Maximize }

func (p *KSatisfiability) Validate() error {
	if p.NumVars < 0 {
		return invalidf("negative variable count %d", p.NumVars)
	}
	for i, clause := range p.Clauses {
		if len(clause) != ClauseSize {
			return invalidf("clause %d has %d literals, expected %d", i, len(clause), ClauseSize)
		}
		for _, l := range clause {
			if l.Variable < 0 || l.Variable >= p.NumVars {
				return invalidf("clause %d references variable %d outside of [0,%d)", i, l.Variable, p.NumVars)
			}
		}
	}
	return nil
}

// Evaluate returns the number of satisfied clauses. Every assignment is feasible.
func (p *KSatisfiability) Evaluate(config []int) (float64, bool) {
	satisfied := 0
	for _, clause := range p.Clauses {
		for _, l := range clause {
			if l.Satisfied(config) {
				satisfied++
				break
			}
		}
	}
	return float64(satisfied), true
}

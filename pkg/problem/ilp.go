package problem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sign is the direction of a linear constraint. The numeric values are the encoding
// used in the interchange records.
type Sign int

const (
	LE Sign = -1
	EQ Sign = 0
	GE Sign = 1
)

func (s Sign) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	}
	return fmt.Sprintf("Sign(%d)", int(s))
}

// UnmarshalJSON accepts the numeric encoding as well as the names LE, GE, EQ and their operators.
func (s *Sign) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*s = Sign(v)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("constraint sign must be a number or a name: %v", err)
	}
	switch strings.ToUpper(name) {
	case "LE", "<=":
		*s = LE
	case "GE", ">=":
		*s = GE
	case "EQ", "==", "=":
		*s = EQ
	default:
		return fmt.Errorf("unknown constraint sign %q", name)
	}
	return nil
}

// ILP is a binary linear program: minimize Objective·x subject to one linear constraint per row
// of ConstraintsLHS.
type ILP struct {
	NumVars         int         `json:"num_variables"`
	Objective       []float64   `json:"objective"`
	ConstraintsLHS  [][]float64 `json:"constraints_lhs"`
	ConstraintsRHS  []float64   `json:"constraints_rhs"`
	ConstraintSigns []Sign      `json:"constraint_signs"`
	Penalty         float64     `json:"penalty"`
}

func (p *ILP) Name() string { return "ILP" }
func (p *ILP) NumVariables() int { return p.NumVars }
func (p *ILP) Domain() int { return 2 }
func (p *ILP) Sense() Sense { return Minimize }
func (p *ILP) PenaltyWeight() float64 { return p.Penalty }

func (p *ILP) Validate() error {
	if p.NumVars < 0 {
		return invalidf("negative variable count %d", p.NumVars)
	}
	if len(p.Objective) != p.NumVars {
		return invalidf("objective has %d coefficients for %d variables", len(p.Objective), p.NumVars)
	}
	rows := len(p.ConstraintsLHS)
	if len(p.ConstraintsRHS) != rows || len(p.ConstraintSigns) != rows {
		return invalidf("got %d constraint rows, %d right hand sides and %d signs", rows, len(p.ConstraintsRHS), len(p.ConstraintSigns))
	}
	for i, row := range p.ConstraintsLHS {
		if len(row) != p.NumVars {
			return invalidf("constraint %d has %d coefficients for %d variables", i, len(row), p.NumVars)
		}
		switch p.ConstraintSigns[i] {
		case LE, EQ, GE:
		default:
			return invalidf("constraint %d has unknown sign %d", i, int(p.ConstraintSigns[i]))
		}
	}
	return validatePenalty(p.Penalty)
}

// Satisfies checks every constraint row directly, independent of any penalty encoding.
func (p *ILP) Satisfies(config []int) bool {
	for i, row := range p.ConstraintsLHS {
		lhs := 0.0
		for j, a := range row {
			lhs += a * float64(config[j])
		}
		rhs := p.ConstraintsRHS[i]
		switch p.ConstraintSigns[i] {
		case LE:
			if lhs > rhs+Tolerance {
				return false
			}
		case GE:
			if lhs < rhs-Tolerance {
				return false
			}
		case EQ:
			if lhs > rhs+Tolerance || lhs < rhs-Tolerance {
				return false
			}
		}
	}
	return true
}

func (p *ILP) Evaluate(config []int) (float64, bool) {
	if !p.Satisfies(config) {
		return 0, false
	}
	cost := 0.0
	for j, c := range p.Objective {
		cost += c * float64(config[j])
	}
	return cost, true
}

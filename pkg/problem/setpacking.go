package problem

// SetPacking asks for a maximum weight selection of pairwise disjoint sets.
type SetPacking struct {
	Sets        [][]int   `json:"sets"`
	NumElements int       `json:"num_elements"`
	Weights     []float64 `json:"weights"`
	Penalty     float64   `json:"penalty"`
}

func (p *SetPacking) Name() string { return "SetPacking" }
func (p *SetPacking) NumVariables() int { return len(p.Sets) }
func (p *SetPacking) Domain() int { return 2 }
func (p *SetPacking) Sense() Sense { return Maximize }
func (p *SetPacking) PenaltyWeight() float64 { return p.Penalty }

func (p *SetPacking) Validate() error {
	if len(p.Weights) != len(p.Sets) {
		return invalidf("got %d weights for %d sets", len(p.Weights), len(p.Sets))
	}
	for i, set := range p.Sets {
		for _, e := range set {
			if e < 0 || e >= p.NumElements {
				return invalidf("set %d contains element %d outside of [0,%d)", i, e, p.NumElements)
			}
		}
	}
	return validatePenalty(p.Penalty)
}

func (p *SetPacking) Evaluate(config []int) (float64, bool) {
	used := map[int]bool{}
	weight := 0.0
	for i, selected := range config {
		if selected == 0 {
			continue
		}
		// a set listing an element twice does not conflict with itself
		own := map[int]bool{}
		for _, e := range p.Sets[i] {
			if used[e] && !own[e] {
				return 0, false
			}
			own[e] = true
		}
		for e := range own {
			used[e] = true
		}
		weight += p.Weights[i]
	}
	return weight, true
}

// Overlap reports whether set i and set j share at least one element.
func (p *SetPacking) Overlap(i, j int) bool {
	members := map[int]bool{}
	for _, e := range p.Sets[i] {
		members[e] = true
	}
	for _, e := range p.Sets[j] {
		if members[e] {
			return true
		}
	}
	return false
}

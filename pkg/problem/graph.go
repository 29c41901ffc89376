package problem

// Graph is an undirected graph on vertices 0..NumVertices-1.
type Graph struct {
	NumVertices int      `json:"num_vertices"`
	Edges       [][2]int `json:"edges"`
}

func (g *Graph) validate() error {
	if g.NumVertices < 0 {
		return invalidf("negative vertex count %d", g.NumVertices)
	}
	for i, e := range g.Edges {
		for _, v := range e {
			if v < 0 || v >= g.NumVertices {
				return invalidf("edge %d (%d,%d) references a vertex outside of [0,%d)", i, e[0], e[1], g.NumVertices)
			}
		}
	}
	return nil
}

// VertexCover asks for the smallest vertex set touching every edge.
type VertexCover struct {
	Graph
	Penalty float64 `json:"penalty"`
}

func (p *VertexCover) Name() string { return "VertexCovering" }
func (p *VertexCover) NumVariables() int { return p.NumVertices }
func (p *VertexCover) Domain() int { return 2 }
func (p *VertexCover) Sense() Sense { return Minimize }
func (p *VertexCover) PenaltyWeight() float64 { return p.Penalty }

func (p *VertexCover) Validate() error {
	if err := p.Graph.validate(); err != nil {
		return err
	}
	return validatePenalty(p.Penalty)
}

func (p *VertexCover) Evaluate(config []int) (float64, bool) {
	for _, e := range p.Edges {
		if config[e[0]] == 0 && config[e[1]] == 0 {
			return 0, false
		}
	}
	return float64(count(config)), true
}

// IndependentSet asks for the largest vertex set without two adjacent members.
type IndependentSet struct {
	Graph
	Penalty float64 `json:"penalty"`
}

func (p *IndependentSet) Name() string { return "IndependentSet" }
func (p *IndependentSet) NumVariables() int { return p.NumVertices }
func (p *IndependentSet) Domain() int { return 2 }
func (p *IndependentSet) Sense() Sense { return Maximize }
func (p *IndependentSet) PenaltyWeight() float64 { return p.Penalty }

func (p *IndependentSet) Validate() error {
	if err := p.Graph.validate(); err != nil {
		return err
	}
	return validatePenalty(p.Penalty)
}

func (p *IndependentSet) Evaluate(config []int) (float64, bool) {
	for _, e := range p.Edges {
		if config[e[0]] == 1 && config[e[1]] == 1 {
			return 0, false
		}
	}
	return float64(count(config)), true
}

// Coloring asks for an assignment of one of NumColors colors to every vertex such that adjacent
// vertices differ. It is a pure feasibility problem: every proper coloring has value 0.
type Coloring struct {
	Graph
	NumColors int     `json:"num_colors"`
	Penalty   float64 `json:"penalty"`
}

func (p *Coloring) Name() string { return "Coloring" }
func (p *Coloring) NumVariables() int { return p.NumVertices }
func (p *Coloring) Domain() int { return p.NumColors }
func (p *Coloring) Sense() Sense { return Minimize }
func (p *Coloring) PenaltyWeight() float64 { return p.Penalty }

func (p *Coloring) Validate() error {
	if err := p.Graph.validate(); err != nil {
		return err
	}
	if p.NumColors <= 0 {
		return invalidf("color count must be positive, got %d", p.NumColors)
	}
	return validatePenalty(p.Penalty)
}

// Evaluate expects config to hold one color index per vertex.
func (p *Coloring) Evaluate(config []int) (float64, bool) {
	for _, c := range config {
		if c < 0 || c >= p.NumColors {
			return 0, false
		}
	}
	for _, e := range p.Edges {
		if config[e[0]] == config[e[1]] {
			return 0, false
		}
	}
	return 0, true
}

func count(config []int) (n int) {
	for _, x := range config {
		n += x
	}
	return n
}

package qubo

// Builder accumulates the terms of a quadratic pseudo-boolean function. Since xᵢ² = xᵢ for binary
// variables, linear terms live on the diagonal.
type Builder struct {
	m *Model
}

func NewBuilder(n int) *Builder {
	return &Builder{m: newModel(n)}
}

// AddLinear adds v·xᵢ.
func (b *Builder) AddLinear(i int, v float64) {
	b.m.q.SetSym(i, i, b.m.q.At(i, i)+v)
}

// AddQuadratic adds v·xᵢxⱼ. A repeated variable collapses into a linear term.
func (b *Builder) AddQuadratic(i, j int, v float64) {
	if i == j {
		b.AddLinear(i, v)
		return
	}
	b.m.q.SetSym(i, j, b.m.q.At(i, j)+v/2)
}

// AddConstant adds v to the offset.
func (b *Builder) AddConstant(v float64) {
	b.m.offset += v
}

// Build returns the accumulated model. The builder must not be used afterwards.
func (b *Builder) Build() *Model {
	m := b.m
	b.m = nil
	return m
}

package gcc

// Inequality enforces dom(x) ∩ dom(y) = ∅ => E_{x,y} = 0. Unlike
// Equality and Exclusion this compares whole domains on every call,
// so it watches ANY_INT on both sides and runs at the next priority band
// since it is strictly more expensive per-call than the ASSIGN-watching
// propagators.
type Inequality struct {
	X, Y Entity
	Lit  Entity
}

// NewInequality builds the propagator for the pair (x, y) reified by lit.
func NewInequality(x, y, lit Entity) *Inequality {
	return &Inequality{X: x, Y: y, Lit: lit}
}

// Name implements Propagator.
func (p *Inequality) Name() string { return "Inequality" }

// Priority implements Propagator.
func (p *Inequality) Priority() Priority { return PriorityLatticeDomain }

// InitialiseAtRoot implements Propagator.
func (p *Inequality) InitialiseAtRoot(ctx InitialisationContext) error {
	if err := ctx.Register(p.X, AnyInt, 0); err != nil {
		return err
	}
	if err := ctx.Register(p.Y, AnyInt, 1); err != nil {
		return err
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *Inequality) Propagate(ctx PropagationContext) (Status, error) {
	if ctx.IsLiteralFalse(p.Lit) {
		return NoChange, nil
	}

	disjoint := true
	ctx.IterateDomain(p.X, func(v int) {
		if ctx.Contains(p.Y, v) {
			disjoint = false
		}
	})
	if !disjoint {
		return NoChange, nil
	}

	reason := append(ctx.DescribeDomain(p.X), ctx.DescribeDomain(p.Y)...)
	status, err := ctx.AssignLiteral(p.Lit, false, reason)
	if err != nil {
		return Conflict, err
	}
	return status, nil
}

package gcc

// Equality enforces x = v ∧ y = v => E_{x,y} = 1: once both variables are
// fixed to the same value, the reifying literal is assigned true.
type Equality struct {
	X, Y Entity
	Lit  Entity
}

// NewEquality builds the propagator for the pair (x, y) reified by lit.
func NewEquality(x, y, lit Entity) *Equality {
	return &Equality{X: x, Y: y, Lit: lit}
}

// Name implements Propagator.
func (p *Equality) Name() string { return "Equality" }

// Priority implements Propagator.
func (p *Equality) Priority() Priority { return PriorityLatticeAssign }

// InitialiseAtRoot implements Propagator.
func (p *Equality) InitialiseAtRoot(ctx InitialisationContext) error {
	if err := ctx.Register(p.X, Assign, 0); err != nil {
		return err
	}
	if err := ctx.Register(p.Y, Assign, 1); err != nil {
		return err
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *Equality) Propagate(ctx PropagationContext) (Status, error) {
	if ctx.IsLiteralTrue(p.Lit) {
		return NoChange, nil
	}
	if !ctx.IsFixed(p.X) || !ctx.IsFixed(p.Y) {
		return NoChange, nil
	}
	v := ctx.LowerBound(p.X)
	if ctx.LowerBound(p.Y) != v {
		return NoChange, nil
	}
	reason := Reason{EqP(p.X, v), EqP(p.Y, v)}
	status, err := ctx.AssignLiteral(p.Lit, true, reason)
	if err != nil {
		return Conflict, err
	}
	if status == DomainChange {
		statsOrNop(ctx.Statistics()).IncEqualityPropagations()
	}
	return status, nil
}

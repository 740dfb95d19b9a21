package gcc

// Exclusion enforces E_{x,y} = 0 ∧ x = v => y != v. Two symmetric
// instances are posted per pair so both directions are covered; this
// instance prunes Y from X's assignment.
type Exclusion struct {
	X, Y Entity
	Lit  Entity
}

// NewExclusion builds the propagator that prunes dom(y) when lit is false
// and x is fixed. Post both NewExclusion(x, y, lit) and
// NewExclusion(y, x, lit) to cover both directions.
func NewExclusion(x, y, lit Entity) *Exclusion {
	return &Exclusion{X: x, Y: y, Lit: lit}
}

// Name implements Propagator.
func (p *Exclusion) Name() string { return "Exclusion" }

// Priority implements Propagator.
func (p *Exclusion) Priority() Priority { return PriorityLatticeAssign }

// InitialiseAtRoot implements Propagator.
func (p *Exclusion) InitialiseAtRoot(ctx InitialisationContext) error {
	if err := ctx.Register(p.Lit, UpperBound, 0); err != nil {
		return err
	}
	if err := ctx.Register(p.X, Assign, 1); err != nil {
		return err
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *Exclusion) Propagate(ctx PropagationContext) (Status, error) {
	if !ctx.IsLiteralFalse(p.Lit) || !ctx.IsFixed(p.X) {
		return NoChange, nil
	}
	v := ctx.LowerBound(p.X)
	reason := Reason{LitIsFalse(p.Lit), EqP(p.X, v)}
	status, err := ctx.Remove(p.Y, v, reason)
	if err != nil {
		return Conflict, err
	}
	return status, nil
}

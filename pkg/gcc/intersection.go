package gcc

// Intersection enforces E_{x,y} = 1 => dom(x) = dom(y) = dom(x) ∩ dom(y).
// Once the equality literal fires, every value present in one side but
// absent from the other is pruned, with a reason naming the literal and
// the witnessing exclusion on the opposite variable.
type Intersection struct {
	X, Y Entity
	Lit  Entity
}

// NewIntersection builds the propagator for the pair (x, y) reified by
// lit.
func NewIntersection(x, y, lit Entity) *Intersection {
	return &Intersection{X: x, Y: y, Lit: lit}
}

// Name implements Propagator.
func (p *Intersection) Name() string { return "Intersection" }

// Priority implements Propagator.
func (p *Intersection) Priority() Priority { return PriorityLatticeAssign }

// InitialiseAtRoot implements Propagator.
func (p *Intersection) InitialiseAtRoot(ctx InitialisationContext) error {
	if err := ctx.Register(p.Lit, LowerBound, 0); err != nil {
		return err
	}
	if err := ctx.Register(p.X, AnyInt, 1); err != nil {
		return err
	}
	if err := ctx.Register(p.Y, AnyInt, 2); err != nil {
		return err
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *Intersection) Propagate(ctx PropagationContext) (Status, error) {
	if !ctx.IsLiteralTrue(p.Lit) {
		return NoChange, nil
	}

	changed := false

	var toRemoveFromX []int
	ctx.IterateDomain(p.X, func(v int) {
		if !ctx.Contains(p.Y, v) {
			toRemoveFromX = append(toRemoveFromX, v)
		}
	})
	for _, v := range toRemoveFromX {
		reason := Reason{LitIsTrue(p.Lit), NEqP(p.Y, v)}
		status, err := ctx.Remove(p.X, v, reason)
		if err != nil {
			return Conflict, err
		}
		if status == DomainChange {
			changed = true
		}
	}

	var toRemoveFromY []int
	ctx.IterateDomain(p.Y, func(v int) {
		if !ctx.Contains(p.X, v) {
			toRemoveFromY = append(toRemoveFromY, v)
		}
	})
	for _, v := range toRemoveFromY {
		reason := Reason{LitIsTrue(p.Lit), NEqP(p.X, v)}
		status, err := ctx.Remove(p.Y, v, reason)
		if err != nil {
			return Conflict, err
		}
		if status == DomainChange {
			changed = true
		}
	}

	if changed {
		return DomainChange, nil
	}
	return NoChange, nil
}

// initAsPropagation adapts an InitialisationContext to PropagationContext
// for the zero-statistics, zero-mutation-beyond-context root call every
// propagator performs during InitialiseAtRoot. The host engine's concrete
// InitialisationContext is expected to also satisfy PropagationContext;
// this helper documents that assumption at a single call site per
// propagator rather than repeating a type assertion everywhere.
func initAsPropagation(ctx InitialisationContext) PropagationContext {
	if pc, ok := ctx.(PropagationContext); ok {
		return pc
	}
	panic("gcc: InitialisationContext must also implement PropagationContext")
}

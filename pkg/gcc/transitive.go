package gcc

// Transitive enforces E_{x,y} = 1 ∧ E_{y,z} = 1 => E_{x,z} = 1, and its two
// mixed corollaries: E_{x,y} = 1 ∧ E_{y,z} = 0 => E_{x,z} = 0, and
// E_{x,y} = 0 ∧ E_{y,z} = 1 => E_{x,z} = 0. It is only ever posted for a
// triple whose three pairwise literals are all present in the equality
// map; pairs absent from the map are not constrained by this family.
type Transitive struct {
	XY, YZ, XZ Entity
}

// NewTransitive builds the propagator over the three pairwise literals of
// a triple (x, y, z).
func NewTransitive(xy, yz, xz Entity) *Transitive {
	return &Transitive{XY: xy, YZ: yz, XZ: xz}
}

// Name implements Propagator.
func (p *Transitive) Name() string { return "Transitive" }

// Priority implements Propagator.
func (p *Transitive) Priority() Priority { return PriorityLatticeAssign }

// InitialiseAtRoot implements Propagator.
func (p *Transitive) InitialiseAtRoot(ctx InitialisationContext) error {
	if err := ctx.Register(p.XY, Assign, 0); err != nil {
		return err
	}
	if err := ctx.Register(p.YZ, Assign, 1); err != nil {
		return err
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *Transitive) Propagate(ctx PropagationContext) (Status, error) {
	xyTrue, xyFalse := ctx.IsLiteralTrue(p.XY), ctx.IsLiteralFalse(p.XY)
	yzTrue, yzFalse := ctx.IsLiteralTrue(p.YZ), ctx.IsLiteralFalse(p.YZ)

	switch {
	case xyTrue && yzTrue:
		reason := Reason{LitIsTrue(p.XY), LitIsTrue(p.YZ)}
		status, err := ctx.AssignLiteral(p.XZ, true, reason)
		if err != nil {
			return Conflict, err
		}
		return status, nil
	case xyTrue && yzFalse:
		reason := Reason{LitIsTrue(p.XY), LitIsFalse(p.YZ)}
		status, err := ctx.AssignLiteral(p.XZ, false, reason)
		if err != nil {
			return Conflict, err
		}
		return status, nil
	case xyFalse && yzTrue:
		reason := Reason{LitIsFalse(p.XY), LitIsTrue(p.YZ)}
		status, err := ctx.AssignLiteral(p.XZ, false, reason)
		if err != nil {
			return Conflict, err
		}
		return status, nil
	default:
		return NoChange, nil
	}
}

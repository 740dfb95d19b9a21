package gcc

import "github.com/sirupsen/logrus"

// GccLowerboundConflicts detects infeasibility of a value's lower
// cardinality bound: for a value v requiring at least l_v occurrences, it
// checks both the trivial count of variables that can still take v and,
// when that passes, a Schiermeyer independent-set bound over the
// E = 0 edges among those variables.
type GccLowerboundConflicts struct {
	X      []Entity
	E      *EqualityMap
	Values []ValueSpec

	logger *logrus.Entry
}

// NewGccLowerboundConflicts builds the propagator over variables x, the
// equality map e, and the value specifications values.
func NewGccLowerboundConflicts(x []Entity, e *EqualityMap, values []ValueSpec) *GccLowerboundConflicts {
	return &GccLowerboundConflicts{X: x, E: e, Values: values, logger: discardLogger}
}

// Name implements Propagator.
func (p *GccLowerboundConflicts) Name() string { return "GccLowerboundConflicts" }

// Priority implements Propagator.
func (p *GccLowerboundConflicts) Priority() Priority { return PriorityLatticeDomain }

// InitialiseAtRoot implements Propagator.
func (p *GccLowerboundConflicts) InitialiseAtRoot(ctx InitialisationContext) error {
	for i, x := range p.X {
		if err := ctx.Register(x, AnyInt, i); err != nil {
			return err
		}
	}
	localID := len(p.X)
	var regErr error
	p.E.Pairs(func(_, _ int, lit Entity) {
		if regErr != nil {
			return
		}
		regErr = ctx.Register(lit, UpperBound, localID)
		localID++
	})
	if regErr != nil {
		return regErr
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *GccLowerboundConflicts) Propagate(ctx PropagationContext) (Status, error) {
	for _, spec := range p.Values {
		if spec.OMin == 0 {
			continue
		}
		if status, err := p.checkValue(ctx, spec); status == Conflict {
			return status, err
		}
	}
	return NoChange, nil
}

func (p *GccLowerboundConflicts) checkValue(ctx PropagationContext, spec ValueSpec) (Status, error) {
	var canTake []int
	for i, x := range p.X {
		if ctx.Contains(x, spec.Value) {
			canTake = append(canTake, i)
		}
	}

	if len(canTake) < spec.OMin {
		reason := p.cannotTakeReason(spec.Value, canTake)
		statsOrNop(ctx.Statistics()).IncMaxIndependentSetConflicts()
		p.logger.WithField("value", spec.Value).Debug("too few candidates for lower bound")
		return Conflict, NewConflictError(p.Name(), reason)
	}

	edges := p.countIneqEdges(ctx, canTake)
	bound := schiermeyerMISBound(len(canTake), edges)
	if bound < spec.OMin {
		reason := p.misReason(ctx, spec.Value, canTake)
		statsOrNop(ctx.Statistics()).IncMaxIndependentSetConflicts()
		p.logger.WithFields(logrus.Fields{
			"value": spec.Value,
			"bound": bound,
		}).Debug("Schiermeyer bound below lower limit")
		return Conflict, NewConflictError(p.Name(), reason)
	}
	return NoChange, nil
}

// cannotTakeReason builds { [x_i != v] : i not in canTake }.
func (p *GccLowerboundConflicts) cannotTakeReason(value int, canTake []int) Reason {
	can := make(map[int]bool, len(canTake))
	for _, i := range canTake {
		can[i] = true
	}
	var reason Reason
	for i, x := range p.X {
		if !can[i] {
			reason = append(reason, NEqP(x, value))
		}
	}
	return reason
}

// countIneqEdges counts the pairs (i, j) within canTake whose equality
// literal is currently false. misReason collects the same literals for the
// MIS conflict reason.
func (p *GccLowerboundConflicts) countIneqEdges(ctx Assignments, canTake []int) int {
	count := 0
	for a := 0; a < len(canTake); a++ {
		for b := a + 1; b < len(canTake); b++ {
			lit, ok := p.E.GetEquality(canTake[a], canTake[b])
			if ok && ctx.IsLiteralFalse(lit) {
				count++
			}
		}
	}
	return count
}

// misReason builds the conflict explanation: every E = 0 edge used in the
// MIS bound's edge count, plus [x_i != v] for every i not in canTake.
func (p *GccLowerboundConflicts) misReason(ctx Assignments, value int, canTake []int) Reason {
	var reason Reason
	for a := 0; a < len(canTake); a++ {
		for b := a + 1; b < len(canTake); b++ {
			lit, ok := p.E.GetEquality(canTake[a], canTake[b])
			if ok && ctx.IsLiteralFalse(lit) {
				reason = append(reason, LitIsFalse(lit))
			}
		}
	}
	reason = append(reason, p.cannotTakeReason(value, canTake)...)
	return reason
}

package gcc

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// GccUpperBound enforces upper limits across equality classes: a class of
// k >= 2 variables known pairwise equal (via E = 1) contributes k
// occurrences of whatever value they share, and a value v with upper limit
// u_v is removed from the class once k plus the variables outside it
// already fixed to v exceeds u_v. Variables in no such class are not
// pruned by this propagator.
type GccUpperBound struct {
	X      []Entity
	E      *EqualityMap
	Values []ValueSpec

	byValue map[int]ValueSpec
	logger  *logrus.Entry
}

// NewGccUpperBound builds the propagator over variables x (indices 0..n-1
// correspond to x[0..n-1]), the equality map e, and the value
// specifications values.
func NewGccUpperBound(x []Entity, e *EqualityMap, values []ValueSpec) *GccUpperBound {
	byValue := make(map[int]ValueSpec, len(values))
	for _, vs := range values {
		byValue[vs.Value] = vs
	}
	return &GccUpperBound{X: x, E: e, Values: values, byValue: byValue, logger: discardLogger}
}

// Name implements Propagator.
func (p *GccUpperBound) Name() string { return "GccUpperBound" }

// Priority implements Propagator.
func (p *GccUpperBound) Priority() Priority { return PriorityGlobal }

// InitialiseAtRoot implements Propagator.
func (p *GccUpperBound) InitialiseAtRoot(ctx InitialisationContext) error {
	for i, x := range p.X {
		if err := ctx.Register(x, Assign, i); err != nil {
			return err
		}
	}
	localID := len(p.X)
	var regErr error
	p.E.Pairs(func(_, _ int, lit Entity) {
		if regErr != nil {
			return
		}
		regErr = ctx.Register(lit, LowerBound, localID)
		localID++
	})
	if regErr != nil {
		return regErr
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// Propagate implements Propagator.
func (p *GccUpperBound) Propagate(ctx PropagationContext) (Status, error) {
	n := len(p.X)
	uf := newUnionFind(n)
	p.E.Pairs(func(i, j int, lit Entity) {
		if ctx.IsLiteralTrue(lit) {
			uf.union(i, j)
		}
	})

	changed := false
	for _, class := range uf.classes() {
		if len(class) < 2 {
			continue
		}

		setReason := p.buildSetReason(ctx, class)
		assignedNotInSet := p.assignedOutsideSet(ctx, class)

		rep := p.X[class[0]]

		var domainValues []int
		ctx.IterateDomain(rep, func(v int) { domainValues = append(domainValues, v) })

		for _, v := range domainValues {
			spec, ok := p.byValue[v]
			if !ok {
				continue
			}
			uV := spec.OMax
			witnesses := assignedNotInSet[v]
			if len(class)+len(witnesses) <= uV {
				continue
			}

			need := uV - minInt(len(class), uV)
			if need > len(witnesses) {
				need = len(witnesses)
			}
			reason := make(Reason, 0, len(setReason)+need)
			reason = append(reason, setReason...)
			for k := 0; k < need; k++ {
				reason = append(reason, EqP(witnesses[k], v))
			}

			for _, idx := range class {
				status, err := ctx.Remove(p.X[idx], v, reason)
				if err != nil {
					return Conflict, err
				}
				if status == DomainChange {
					changed = true
				}
			}
		}
	}

	if changed {
		statsOrNop(ctx.Statistics()).IncUpperBoundPropagations()
		p.logger.WithField("propagator", p.Name()).Debug("tightened domains via equality class")
		return DomainChange, nil
	}
	return NoChange, nil
}

// buildSetReason rebuilds the explanation for why every member of class
// is known-equal from the literals currently at 1, rather than trusting a
// union-find parent chain that may point through an edge not currently
// true.
func (p *GccUpperBound) buildSetReason(ctx PropagationContext, class []int) Reason {
	var reason Reason
	for a := 0; a < len(class); a++ {
		for b := a + 1; b < len(class); b++ {
			i, j := class[a], class[b]
			lit, ok := p.E.GetEquality(i, j)
			if !ok {
				continue
			}
			if ctx.IsLiteralTrue(lit) {
				reason = append(reason, LitIsTrue(lit))
			}
		}
	}
	return reason
}

// assignedOutsideSet returns, per value, the entities outside class
// already fixed to that value, in ascending index order.
func (p *GccUpperBound) assignedOutsideSet(ctx PropagationContext, class []int) map[int][]Entity {
	inSet := make(map[int]bool, len(class))
	for _, idx := range class {
		inSet[idx] = true
	}
	out := make(map[int][]Entity)
	indices := make([]int, 0, len(p.X))
	for i := range p.X {
		if !inSet[i] {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	for _, i := range indices {
		x := p.X[i]
		if ctx.IsFixed(x) {
			v := ctx.LowerBound(x)
			out[v] = append(out[v], x)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

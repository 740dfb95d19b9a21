package gcc

// fakeContext is a minimal in-memory PropagationContext/InitialisationContext
// used to unit-test propagators in isolation, without pulling in the
// pkg/gccengine trail machinery. Integer entities map to a Domain;
// literal entities map to a *bool (nil = unassigned).
type fakeContext struct {
	domains  map[Entity]Domain
	literals map[Entity]*bool
	stats    *fakeStats
	log      []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		domains:  make(map[Entity]Domain),
		literals: make(map[Entity]*bool),
		stats:    newFakeStats(),
	}
}

func (c *fakeContext) newIntVar(lo, hi int) Entity {
	e := Entity(len(c.domains) + len(c.literals))
	c.domains[e] = NewBitSetDomain(lo, hi)
	return e
}

func (c *fakeContext) newLiteral() Entity {
	e := Entity(1000 + len(c.literals))
	var b *bool
	c.literals[e] = b
	return e
}

func (c *fakeContext) Contains(x Entity, v int) bool { return c.domains[x].Has(v) }
func (c *fakeContext) LowerBound(x Entity) int       { return c.domains[x].Min() }
func (c *fakeContext) UpperBound(x Entity) int       { return c.domains[x].Max() }
func (c *fakeContext) IsFixed(x Entity) bool         { return c.domains[x].IsSingleton() }

func (c *fakeContext) IterateDomain(x Entity, f func(value int)) {
	c.domains[x].IterateValues(f)
}

func (c *fakeContext) DescribeDomain(x Entity) Reason {
	d := c.domains[x]
	reason := Reason{GEqP(x, d.Min()), LEqP(x, d.Max())}
	d.Holes(func(v int) { reason = append(reason, NEqP(x, v)) })
	return reason
}

func (c *fakeContext) IsLiteralTrue(lit Entity) bool {
	b := c.literals[lit]
	return b != nil && *b
}

func (c *fakeContext) IsLiteralFalse(lit Entity) bool {
	b := c.literals[lit]
	return b != nil && !*b
}

func (c *fakeContext) Remove(x Entity, v int, r Reason) (Status, error) {
	d := c.domains[x]
	if !d.Has(v) {
		return NoChange, nil
	}
	nd := d.Remove(v)
	c.domains[x] = nd
	if nd.Count() == 0 {
		return Conflict, NewConflictError("test", r)
	}
	return DomainChange, nil
}

func (c *fakeContext) AssignLiteral(lit Entity, b bool, r Reason) (Status, error) {
	cur := c.literals[lit]
	if cur != nil {
		if *cur == b {
			return NoChange, nil
		}
		return Conflict, NewConflictError("test", r)
	}
	c.literals[lit] = &b
	return DomainChange, nil
}

func (c *fakeContext) Statistics() StatisticsSink { return c.stats }

func (c *fakeContext) Register(entity Entity, wakeUp WakeUpCondition, localID int) error {
	return nil
}

// fakeStats is a StatisticsSink that records every increment for test
// assertions instead of discarding them like NopStatistics.
type fakeStats struct {
	upperBoundPropagations       int
	inequalitySetsPropagations   int
	maxIndependentSetConflicts   int
	extendedPropagatorsConflicts int
	equalityPropagations         int
	explanations                 [][2]int
}

func newFakeStats() *fakeStats { return &fakeStats{} }

func (s *fakeStats) IncUpperBoundPropagations()       { s.upperBoundPropagations++ }
func (s *fakeStats) IncInequalitySetsPropagations()   { s.inequalitySetsPropagations++ }
func (s *fakeStats) IncMaxIndependentSetConflicts()   { s.maxIndependentSetConflicts++ }
func (s *fakeStats) IncExtendedPropagatorsConflicts() { s.extendedPropagatorsConflicts++ }
func (s *fakeStats) IncEqualityPropagations()         { s.equalityPropagations++ }
func (s *fakeStats) ObserveExplanation(equalityVars, totalSize int) {
	s.explanations = append(s.explanations, [2]int{equalityVars, totalSize})
}

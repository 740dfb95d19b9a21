package gcc

// ExtendedResolutionGCC is the bundled constraint gcc_extended_resolution
// (X, V, E). Posting it builds every pairwise-lattice propagator for each
// pair recorded in E (one intersection, which prunes both sides, exclusion
// in both directions, equality, inequality, and transitive for every
// ordered triple whose three pairs are all present in E), plus one GccUpperBound, one
// GccInequalitySets, and one GccLowerboundConflicts shared across all of
// V.
type ExtendedResolutionGCC struct {
	X      []Entity
	Values []ValueSpec
	E      *EqualityMap

	propagators []Propagator
}

// NewExtendedResolutionGCC builds the constraint over variables x, value
// specifications values, and equality map e. Posting is deferred to Post.
func NewExtendedResolutionGCC(x []Entity, values []ValueSpec, e *EqualityMap) *ExtendedResolutionGCC {
	return &ExtendedResolutionGCC{X: x, Values: values, E: e}
}

// Build constructs the full propagator bundle without initialising any of
// it at root, so a host that needs to attribute each Register call to its
// owning propagator (for wake-up scheduling) can drive InitialiseAtRoot
// itself instead of going through Post.
func (c *ExtendedResolutionGCC) Build() []Propagator {
	c.propagators = c.buildPropagators()
	return c.propagators
}

// Post implements Constraint. It builds the full propagator bundle and
// initialises each one at root, in construction order, aborting the whole
// post on the first error, which is returned as is. Hosts that need per-propagator
// wake-up attribution should call Build and drive initialisation
// themselves instead.
func (c *ExtendedResolutionGCC) Post(ctx InitialisationContext) error {
	for _, prop := range c.Build() {
		if err := prop.InitialiseAtRoot(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ImpliedBy implements Constraint. Half-reification is not implemented.
func (c *ExtendedResolutionGCC) ImpliedBy(_ InitialisationContext, _ Entity) error {
	return ErrNotImplementedHalfReification
}

// Propagators returns the propagator bundle built by the most recent
// Build or Post call, in the order they were constructed, for hosts that manage
// their own scheduling loop instead of delegating to a solver-provided
// one.
func (c *ExtendedResolutionGCC) Propagators() []Propagator {
	return c.propagators
}

func (c *ExtendedResolutionGCC) buildPropagators() []Propagator {
	var props []Propagator

	c.E.Pairs(func(i, j int, lit Entity) {
		xi, xj := c.X[i], c.X[j]
		props = append(props,
			NewIntersection(xi, xj, lit),
			NewEquality(xi, xj, lit),
			NewExclusion(xi, xj, lit),
			NewExclusion(xj, xi, lit),
			NewInequality(xi, xj, lit),
		)
	})

	// Naive O(n^3) scan: every ordered triple (i, j, k) whose three pairs
	// are all present in E gets its own Transitive instance, so an
	// unordered triple gets six: each choice of middle variable j, once
	// per orientation. E is usually sparse and this runs once at posting
	// time.
	n := len(c.X)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xy, ok := c.E.GetEquality(i, j)
			if !ok {
				continue
			}
			for k := 0; k < n; k++ {
				yz, ok := c.E.GetEquality(j, k)
				if !ok {
					continue
				}
				xz, ok := c.E.GetEquality(i, k)
				if !ok {
					continue
				}
				props = append(props, NewTransitive(xy, yz, xz))
			}
		}
	}

	props = append(props,
		NewGccUpperBound(c.X, c.E, c.Values),
		NewGccInequalitySets(c.X, c.E),
		NewGccLowerboundConflicts(c.X, c.E, c.Values),
	)

	return props
}

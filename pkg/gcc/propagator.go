package gcc

// Priority orders propagators within a single fixpoint pass. Lower values
// run first; the core never relies on a specific ordering for
// correctness, only for how quickly a fixpoint is reached.
type Priority int

const (
	// PriorityLatticeAssign is for the cheap lattice propagators:
	// intersection, transitive, equality, exclusion.
	PriorityLatticeAssign Priority = iota
	// PriorityLatticeDomain is for inequality, which must compare whole
	// domains on every call rather than just react to an assignment, and
	// for the lower-bound conflicts propagator.
	PriorityLatticeDomain
	// PriorityGlobal is for the two heavy GCC-wide propagators: upper
	// bound and inequality sets.
	PriorityGlobal
)

// Propagator is the contract every extended-resolution propagator
// implements. The host engine owns scheduling; a propagator only reacts
// to a Propagate call and never calls back into the scheduler itself.
type Propagator interface {
	// Name identifies the propagator in diagnostics and statistics.
	Name() string

	// InitialiseAtRoot registers wake-up subscriptions and performs any
	// propagation possible before search starts. Returning an error
	// (a failed registration, or the *ConflictError of a root-level
	// inconsistency) aborts posting.
	InitialiseAtRoot(ctx InitialisationContext) error

	// Propagate runs one fixpoint iteration. A non-nil error always
	// wraps a *ConflictError; the engine is responsible for converting
	// it into a nogood.
	Propagate(ctx PropagationContext) (Status, error)

	// Priority reports the scheduling class the engine should queue this
	// propagator under.
	Priority() Priority
}

// Constraint is a posted, named collection of propagators. Posting
// initialises every constituent propagator at root and stops at the first
// error any of them returns, so a single root-level conflict anywhere
// aborts the whole post.
type Constraint interface {
	// Post registers every propagator the constraint owns against ctx
	// and runs their root-level initialisation.
	Post(ctx InitialisationContext) error

	// ImpliedBy would post the half-reified form of the constraint
	// (activated by reif = true without requiring reif = false to hold
	// the negation). This package does not implement half-reification;
	// ImpliedBy always returns ErrNotImplementedHalfReification.
	ImpliedBy(ctx InitialisationContext, reif Entity) error
}

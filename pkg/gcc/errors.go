package gcc

import pkgerrors "github.com/pkg/errors"

// sentinel error kinds, per the error handling design: a posting produced
// an immediate root-level inconsistency, a propagator detected a conflict
// during search, or a programmer invoked the unimplemented half-reification
// path. Domain empties and literal contradictions are never recovered
// locally. The sentinels are built with pkgerrors.New, so errors.Cause
// recovers them through any pkgerrors.Wrap layers a caller adds.
var (
	// ErrEmptyDomainAtRoot indicates that posting a propagator produced an
	// immediate inconsistency before search even began. Nothing in this
	// package returns it: a root-level inconsistency found during
	// InitialiseAtRoot is returned as a *ConflictError.
	ErrEmptyDomainAtRoot = pkgerrors.New("gcc: empty domain at root")

	// ErrNotImplementedHalfReification is returned by Constraint.ImpliedBy,
	// which this package deliberately does not implement.
	ErrNotImplementedHalfReification = pkgerrors.New("gcc: half-reification is not implemented")
)

// ConflictError carries the Reason a propagator emitted to justify an
// Inconsistency conflict. The engine consumes Reason for nogood learning;
// the error's message is for humans only.
type ConflictError struct {
	Propagator string
	Reason     Reason
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return "gcc: conflict in " + e.Propagator + ": " + e.Reason.String()
}

// NewConflictError builds a ConflictError, wrapped so pkgerrors.Cause can
// still recover it through any number of fmt.Errorf/pkgerrors.Wrap layers
// an engine might add on the way up.
func NewConflictError(propagator string, reason Reason) error {
	return pkgerrors.WithStack(&ConflictError{Propagator: propagator, Reason: reason})
}

// AsConflict extracts the ConflictError at the root of err's cause chain,
// if any.
func AsConflict(err error) (*ConflictError, bool) {
	cause := pkgerrors.Cause(err)
	ce, ok := cause.(*ConflictError)
	return ce, ok
}

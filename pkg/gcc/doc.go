// Package gcc implements the core of a Global Cardinality Constraint (GCC)
// propagation subsystem strengthened by extended resolution: auxiliary
// Boolean literals reify pairwise equality of integer variables, and a
// family of small propagators keep those literals consistent with the
// integer domains while two larger propagators enforce the cardinality
// bounds themselves.
//
// The package is engine-agnostic: it borrows integer variables, domains,
// and literals from a host solver through the interfaces in context.go and
// never allocates or owns solver state itself. A propagator instance is
// created once at posting time, registered with the host engine during
// InitialiseAtRoot, and invoked repeatedly until the search that owns it
// ends. Every propagate call rebuilds its scratch structures (union-find,
// flow graphs, Tarjan stacks) from scratch; nothing survives between calls
// except the propagator's immutable configuration.
//
// Parsing, branching, restart policy, and nogood learning live outside
// this package. The package produces reasons — conjunctions of predicates
// entailed by the current partial assignment — and leaves the host engine
// to consume them for conflict analysis.
package gcc

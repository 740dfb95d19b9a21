// Package gccengine is a concrete, trailed reference engine that
// implements the interfaces pkg/gcc borrows from a host solver:
// Assignments, PropagationContext, and InitialisationContext. It exists
// so the extended-resolution GCC propagators can be exercised end to end
// — posted, propagated to fixpoint, searched over, and backtracked —
// without requiring a full CP solver.
package gccengine

import (
	"github.com/pkg/errors"

	"github.com/JasperHeijne/gcc-extended-res/pkg/gcc"
)

// varKind distinguishes an integer variable from a 0/1 literal in the
// store's single flat entity space, since gcc.Entity is engine-opaque and
// the engine is free to interpret it however it likes.
type varKind int

const (
	kindInt varKind = iota
	kindLit
)

// change is a single trailed mutation, grounded on the teacher's
// FDChange/trail discipline: one entry per domain swap, replayed in
// reverse on Undo.
type change struct {
	entity gcc.Entity
	domain gcc.Domain
}

type watcher struct {
	propagator gcc.Propagator
	condition  gcc.WakeUpCondition
	localID    int
}

// Store owns every integer domain and literal domain in a posted model,
// trails every mutation, and restores it transparently on Undo. It
// implements gcc.Assignments, gcc.PropagationContext, and
// gcc.InitialisationContext. Store does not schedule propagators itself;
// every domain change that satisfies a watcher's condition is forwarded
// to the Scheduler handed to NewStore, which owns fixpoint draining.
type Store struct {
	kinds   map[gcc.Entity]varKind
	domains map[gcc.Entity]gcc.Domain
	trail   []change
	stats   gcc.StatisticsSink

	watchers map[gcc.Entity][]watcher
	sched    *Scheduler

	// registering is set by RegisterFor around a single
	// InitialiseAtRoot call so Register knows which propagator is
	// subscribing; gcc.InitialisationContext.Register carries no
	// propagator argument of its own.
	registering gcc.Propagator
}

// NewStore creates an empty store reporting into stats and notifying sched
// of every domain change. A nil stats is replaced with a sink that
// discards every observation.
func NewStore(stats gcc.StatisticsSink, sched *Scheduler) *Store {
	if stats == nil {
		stats = gcc.NopStatistics{}
	}
	return &Store{
		kinds:    make(map[gcc.Entity]varKind),
		domains:  make(map[gcc.Entity]gcc.Domain),
		stats:    stats,
		watchers: make(map[gcc.Entity][]watcher),
		sched:    sched,
	}
}

// NewIntVar creates an integer variable with domain [lo, hi] and returns
// its entity handle.
func (s *Store) NewIntVar(lo, hi int) gcc.Entity {
	e := gcc.Entity(len(s.kinds))
	s.kinds[e] = kindInt
	s.domains[e] = gcc.NewBitSetDomain(lo, hi)
	return e
}

// NewLiteral creates an unassigned Boolean literal and returns its entity
// handle.
func (s *Store) NewLiteral() gcc.Entity {
	e := gcc.Entity(len(s.kinds))
	s.kinds[e] = kindLit
	s.domains[e] = gcc.NewBitSetDomain(0, 1)
	return e
}

// RegisterFor runs register, a call to some propagator's InitialiseAtRoot,
// with s.registering set so Register attributes subscriptions correctly.
func (s *Store) RegisterFor(p gcc.Propagator, register func(ctx gcc.InitialisationContext) error) error {
	s.registering = p
	defer func() { s.registering = nil }()
	return register(s)
}

// Snapshot returns the current trail length, to be passed back to Undo on
// backtrack.
func (s *Store) Snapshot() int { return len(s.trail) }

// Undo restores every trailed mutation recorded since to, in reverse
// order, per the engine's transparent-backtracking contract.
func (s *Store) Undo(to int) {
	for i := len(s.trail) - 1; i >= to; i-- {
		ch := s.trail[i]
		s.domains[ch.entity] = ch.domain
	}
	s.trail = s.trail[:to]
}

func (s *Store) record(e gcc.Entity) {
	s.trail = append(s.trail, change{entity: e, domain: s.domains[e]})
}

// --- gcc.Assignments ---

// Contains implements gcc.Assignments.
func (s *Store) Contains(x gcc.Entity, v int) bool { return s.domains[x].Has(v) }

// LowerBound implements gcc.Assignments.
func (s *Store) LowerBound(x gcc.Entity) int { return s.domains[x].Min() }

// UpperBound implements gcc.Assignments.
func (s *Store) UpperBound(x gcc.Entity) int { return s.domains[x].Max() }

// IsFixed implements gcc.Assignments.
func (s *Store) IsFixed(x gcc.Entity) bool { return s.domains[x].IsSingleton() }

// IterateDomain implements gcc.Assignments.
func (s *Store) IterateDomain(x gcc.Entity, f func(value int)) { s.domains[x].IterateValues(f) }

// DescribeDomain implements gcc.Assignments.
func (s *Store) DescribeDomain(x gcc.Entity) gcc.Reason {
	d := s.domains[x]
	reason := gcc.Reason{gcc.GEqP(x, d.Min()), gcc.LEqP(x, d.Max())}
	d.Holes(func(v int) { reason = append(reason, gcc.NEqP(x, v)) })
	return reason
}

// IsLiteralTrue implements gcc.Assignments.
func (s *Store) IsLiteralTrue(lit gcc.Entity) bool {
	d := s.domains[lit]
	return d.IsSingleton() && d.SingletonValue() == 1
}

// IsLiteralFalse implements gcc.Assignments.
func (s *Store) IsLiteralFalse(lit gcc.Entity) bool {
	d := s.domains[lit]
	return d.IsSingleton() && d.SingletonValue() == 0
}

// --- gcc.PropagationContext ---

// Remove implements gcc.PropagationContext.
func (s *Store) Remove(x gcc.Entity, v int, r gcc.Reason) (gcc.Status, error) {
	before := s.domains[x]
	if !before.Has(v) {
		return gcc.NoChange, nil
	}
	after := before.Remove(v)
	s.record(x)
	s.domains[x] = after
	if after.Count() == 0 {
		return gcc.Conflict, gcc.NewConflictError("store", r)
	}
	s.notify(x, before, after)
	return gcc.DomainChange, nil
}

// AssignLiteral implements gcc.PropagationContext.
func (s *Store) AssignLiteral(lit gcc.Entity, b bool, r gcc.Reason) (gcc.Status, error) {
	want := 0
	if b {
		want = 1
	}
	before := s.domains[lit]
	if before.IsSingleton() {
		if before.SingletonValue() == want {
			return gcc.NoChange, nil
		}
		return gcc.Conflict, gcc.NewConflictError("store", r)
	}
	if !before.Has(want) {
		return gcc.Conflict, gcc.NewConflictError("store", r)
	}
	after := gcc.Domain(gcc.NewBitSetDomainFromValues(0, 1, []int{want}))
	s.record(lit)
	s.domains[lit] = after
	s.notify(lit, before, after)
	return gcc.DomainChange, nil
}

// Statistics implements gcc.PropagationContext.
func (s *Store) Statistics() gcc.StatisticsSink { return s.stats }

// notify forwards a domain change to every watcher of entity whose
// condition is satisfied, via the scheduler.
func (s *Store) notify(entity gcc.Entity, before, after gcc.Domain) {
	if s.sched == nil {
		return
	}
	assigned := after.IsSingleton()
	lowerMoved := after.Min() != before.Min()
	upperMoved := after.Max() != before.Max()
	for _, w := range s.watchers[entity] {
		switch w.condition {
		case gcc.Assign:
			if assigned {
				s.sched.Wake(w.propagator)
			}
		case gcc.LowerBound:
			if lowerMoved {
				s.sched.Wake(w.propagator)
			}
		case gcc.UpperBound:
			if upperMoved {
				s.sched.Wake(w.propagator)
			}
		case gcc.AnyInt:
			s.sched.Wake(w.propagator)
		}
	}
}

// --- gcc.InitialisationContext ---

// Register implements gcc.InitialisationContext.
func (s *Store) Register(entity gcc.Entity, wakeUp gcc.WakeUpCondition, localID int) error {
	if _, ok := s.kinds[entity]; !ok {
		return errors.Errorf("gccengine: Register called on unknown entity %d", entity)
	}
	if s.registering == nil {
		return errors.New("gccengine: Register called outside RegisterFor")
	}
	s.watchers[entity] = append(s.watchers[entity], watcher{
		propagator: s.registering,
		condition:  wakeUp,
		localID:    localID,
	})
	return nil
}

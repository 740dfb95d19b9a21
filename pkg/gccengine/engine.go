package gccengine

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/JasperHeijne/gcc-extended-res/pkg/gcc"
)

// Engine is the reference host: a trailed Store, a priority scheduler,
// and the set of propagators posted against them. It plays the role the
// teacher's FDStore plays for its own constraints, generalized to the
// gcc package's engine-agnostic propagator contract.
type Engine struct {
	Store       *Store
	scheduler   *Scheduler
	propagators []gcc.Propagator
}

// NewEngine creates an empty engine. stats may be nil.
func NewEngine(stats gcc.StatisticsSink) *Engine {
	sched := NewScheduler()
	return &Engine{
		Store:     NewStore(stats, sched),
		scheduler: sched,
	}
}

// NewIntVar creates an integer variable with domain [lo, hi].
func (e *Engine) NewIntVar(lo, hi int) gcc.Entity { return e.Store.NewIntVar(lo, hi) }

// NewLiteral creates an unassigned Boolean literal.
func (e *Engine) NewLiteral() gcc.Entity { return e.Store.NewLiteral() }

// Post posts c against the store. It requires c to expose Build, so the
// engine can drive each propagator's InitialiseAtRoot itself and attribute
// its Register calls correctly; constraints that only implement the plain
// Constraint.Post contract must be posted through PostPropagators instead.
func (e *Engine) Post(c gcc.Constraint) error {
	builder, ok := c.(propagatorBuilder)
	if !ok {
		return pkgerrors.Errorf("gccengine: %T does not expose Build(), cannot attribute wake-up registration", c)
	}
	return e.PostPropagators(builder.Build())
}

// PostPropagators registers each propagator's root-level initialisation
// against the store, attributing every Register call it makes to that
// propagator, then drains the fixpoint queue once so the side effects of
// InitialiseAtRoot settle before search or further posting proceeds.
func (e *Engine) PostPropagators(ps []gcc.Propagator) error {
	for _, p := range ps {
		if err := e.Store.RegisterFor(p, p.InitialiseAtRoot); err != nil {
			return err
		}
		e.propagators = append(e.propagators, p)
	}
	e.scheduler.WakeAll(e.propagators)
	return e.Propagate()
}

// propagatorBuilder lets Post collect individual propagators before
// initialisation, so the engine can attribute each Register call to its
// owning propagator instead of only invoking the opaque Constraint.Post.
// pkg/gcc's ExtendedResolutionGCC satisfies this via its Build method.
type propagatorBuilder interface {
	Build() []gcc.Propagator
}

// Propagate drains the wake-up queue to fixpoint, running every woken
// propagator's Propagate call in priority order until none remain
// pending or a conflict is found.
func (e *Engine) Propagate() error {
	return e.scheduler.Drain(func(p gcc.Propagator) (gcc.Status, error) {
		return p.Propagate(e.Store)
	})
}

// Propagators exposes every propagator posted so far, for diagnostics and
// tests.
func (e *Engine) Propagators() []gcc.Propagator { return e.propagators }

package gccengine

import "github.com/JasperHeijne/gcc-extended-res/pkg/gcc"

// Scheduler owns the priority-ordered wake-up queue the engine drains to
// fixpoint between decisions: global propagators (priority 2) only run
// once every lattice propagator (priority 0, 1) has nothing left to do,
// mirroring the three-tier priority discipline the propagators declare
// through gcc.Propagator.Priority.
type Scheduler struct {
	queued [3]map[gcc.Propagator]bool
	order  [3][]gcc.Propagator
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	s := &Scheduler{}
	for i := range s.queued {
		s.queued[i] = make(map[gcc.Propagator]bool)
	}
	return s
}

// Wake enqueues p if it is not already pending. Safe to call repeatedly
// for the same propagator within one fixpoint pass; duplicates collapse.
func (s *Scheduler) Wake(p gcc.Propagator) {
	pr := int(p.Priority())
	if s.queued[pr][p] {
		return
	}
	s.queued[pr][p] = true
	s.order[pr] = append(s.order[pr], p)
}

// WakeAll enqueues every propagator in ps, used to force the first
// fixpoint pass after posting.
func (s *Scheduler) WakeAll(ps []gcc.Propagator) {
	for _, p := range ps {
		s.Wake(p)
	}
}

// Drain runs propagate once per dequeued propagator, lowest priority
// first, until every queue is empty — the fixpoint loop. A propagator
// woken again while Drain is running (because some other propagator's
// Propagate mutated a domain it watches) is requeued and visited again
// before Drain returns. Returns the first conflict encountered, if any.
func (s *Scheduler) Drain(propagate func(p gcc.Propagator) (gcc.Status, error)) error {
	for {
		p := s.popLowest()
		if p == nil {
			return nil
		}
		if _, err := propagate(p); err != nil {
			return err
		}
	}
}

func (s *Scheduler) popLowest() gcc.Propagator {
	for pr := 0; pr < len(s.order); pr++ {
		for len(s.order[pr]) > 0 {
			p := s.order[pr][0]
			s.order[pr] = s.order[pr][1:]
			if s.queued[pr][p] {
				delete(s.queued[pr], p)
				return p
			}
		}
	}
	return nil
}

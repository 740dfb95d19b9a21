package gccengine

import (
	"sort"

	"github.com/JasperHeijne/gcc-extended-res/pkg/gcc"
)

// Solution maps every searched variable to the value it was fixed to.
type Solution map[gcc.Entity]int

// Search runs a depth-first labeling search over vars: smallest-domain-first
// variable selection, ascending value order, backtracking through the
// store's trail on every failed branch. It returns the first solution
// found, or ok=false if the search space is exhausted without one.
func (e *Engine) Search(vars []gcc.Entity) (Solution, bool) {
	return e.search(vars)
}

func (e *Engine) search(vars []gcc.Entity) (Solution, bool) {
	x, found := e.selectSmallestDomain(vars)
	if !found {
		return e.collectSolution(vars), true
	}

	var values []int
	e.Store.IterateDomain(x, func(v int) { values = append(values, v) })
	sort.Ints(values)

	for _, v := range values {
		mark := e.Store.Snapshot()
		if e.tryAssign(x, v) {
			if sol, ok := e.search(vars); ok {
				return sol, true
			}
		}
		e.Store.Undo(mark)
	}
	return nil, false
}

// tryAssign fixes x to v by removing every other value in its domain, then
// drains the fixpoint queue. It reports whether the branch survived.
func (e *Engine) tryAssign(x gcc.Entity, v int) bool {
	var toRemove []int
	e.Store.IterateDomain(x, func(val int) {
		if val != v {
			toRemove = append(toRemove, val)
		}
	})
	reason := gcc.Reason{gcc.EqP(x, v)}
	for _, val := range toRemove {
		if status, err := e.Store.Remove(x, val, reason); err != nil || status == gcc.Conflict {
			return false
		}
	}
	return e.Propagate() == nil
}

func (e *Engine) selectSmallestDomain(vars []gcc.Entity) (gcc.Entity, bool) {
	best := gcc.NoEntity
	bestSize := -1
	for _, x := range vars {
		size := 0
		e.Store.IterateDomain(x, func(int) { size++ })
		if size <= 1 {
			continue
		}
		if bestSize == -1 || size < bestSize {
			bestSize = size
			best = x
		}
	}
	if best == gcc.NoEntity {
		return gcc.NoEntity, false
	}
	return best, true
}

func (e *Engine) collectSolution(vars []gcc.Entity) Solution {
	sol := make(Solution, len(vars))
	for _, x := range vars {
		sol[x] = e.Store.LowerBound(x)
	}
	return sol
}

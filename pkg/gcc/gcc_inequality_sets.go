package gcc

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// GccInequalitySets enforces that a clique of mutually-unequal variables
// (witnessed by E = 0 edges) can be simultaneously satisfied by distinct
// values, and prunes any value that appears in no maximum matching for
// the clique. The clique itself is re-selected by a deterministic
// heuristic on every call, since watched literals and domains can have
// changed since the last invocation.
type GccInequalitySets struct {
	X []Entity
	E *EqualityMap

	logger *logrus.Entry
}

// NewGccInequalitySets builds the propagator over variables x and the
// equality map e.
func NewGccInequalitySets(x []Entity, e *EqualityMap) *GccInequalitySets {
	return &GccInequalitySets{X: x, E: e, logger: discardLogger}
}

// Name implements Propagator.
func (p *GccInequalitySets) Name() string { return "GccInequalitySets" }

// Priority implements Propagator.
func (p *GccInequalitySets) Priority() Priority { return PriorityGlobal }

// InitialiseAtRoot implements Propagator.
func (p *GccInequalitySets) InitialiseAtRoot(ctx InitialisationContext) error {
	for i, x := range p.X {
		if err := ctx.Register(x, AnyInt, i); err != nil {
			return err
		}
	}
	localID := len(p.X)
	var regErr error
	p.E.Pairs(func(_, _ int, lit Entity) {
		if regErr != nil {
			return
		}
		regErr = ctx.Register(lit, UpperBound, localID)
		localID++
	})
	if regErr != nil {
		return regErr
	}
	_, err := p.Propagate(initAsPropagation(ctx))
	return err
}

// isIneq reports whether the equality literal for (i, j) is currently
// false, i.e. the pair is a known inequality edge.
func (p *GccInequalitySets) isIneq(ctx Assignments, i, j int) bool {
	lit, ok := p.E.GetEquality(i, j)
	if !ok {
		return false
	}
	return ctx.IsLiteralFalse(lit)
}

// selectClique runs the deterministic clique-selection heuristic: sort by
// (ineq_count desc, dom_size asc, index asc), then greedily grow a clique
// from each candidate seed in that order until one exceeds size 2.
func (p *GccInequalitySets) selectClique(ctx Assignments) []int {
	n := len(p.X)
	ineqCount := make([]int, n)
	domSize := make([]int, n)
	for i := 0; i < n; i++ {
		domSize[i] = domainCount(ctx, p.X[i])
		for j := 0; j < n; j++ {
			if i != j && p.isIneq(ctx, i, j) {
				ineqCount[i]++
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if ineqCount[ia] != ineqCount[ib] {
			return ineqCount[ia] > ineqCount[ib]
		}
		if domSize[ia] != domSize[ib] {
			return domSize[ia] < domSize[ib]
		}
		return ia < ib
	})

	for _, seed := range order {
		clique := []int{seed}
		for _, w := range order {
			if w == seed {
				continue
			}
			allIneq := true
			for _, c := range clique {
				if !p.isIneq(ctx, w, c) {
					allIneq = false
					break
				}
			}
			if allIneq {
				clique = append(clique, w)
			}
		}
		if len(clique) > 2 {
			return clique
		}
	}
	return nil
}

func domainCount(ctx Assignments, x Entity) int {
	n := 0
	ctx.IterateDomain(x, func(int) { n++ })
	return n
}

// Propagate implements Propagator.
func (p *GccInequalitySets) Propagate(ctx PropagationContext) (Status, error) {
	clique := p.selectClique(ctx)
	if clique == nil {
		return NoChange, nil
	}
	k := len(clique)

	valueSet := make(map[int]bool)
	for _, idx := range clique {
		ctx.IterateDomain(p.X[idx], func(v int) { valueSet[v] = true })
	}
	values := make([]int, 0, len(valueSet))
	for v := range valueSet {
		values = append(values, v)
	}
	sort.Ints(values)

	valueNodeOf := make(map[int]int, len(values))
	const source = 0
	for i, v := range values {
		valueNodeOf[v] = k + 1 + i
	}
	sink := k + len(values) + 1
	size := sink + 1

	g := newFlowGraph(size)
	for i, idx := range clique {
		varNode := i + 1
		g.addEdge(source, varNode)
		ctx.IterateDomain(p.X[idx], func(v int) {
			g.addEdge(varNode, valueNodeOf[v])
		})
	}
	for _, v := range values {
		g.addEdge(valueNodeOf[v], sink)
	}

	cliqueReason := p.cliqueInequalityReason(clique)

	flow := g.maxFlow(source, sink)
	if flow < k {
		reason := p.buildInfeasibleReason(ctx, clique, cliqueReason)
		statsOrNop(ctx.Statistics()).IncExtendedPropagatorsConflicts()
		statsOrNop(ctx.Statistics()).ObserveExplanation(len(cliqueReason), len(reason))
		p.logger.WithFields(logrus.Fields{
			"propagator": p.Name(),
			"cliqueSize": k,
			"maxFlow":    flow,
		}).Debug("inequality clique infeasible")
		return Conflict, NewConflictError(p.Name(), reason)
	}

	return p.pruneViaSCC(ctx, g, clique, valueNodeOf, cliqueReason)
}

// cliqueInequalityReason builds the witness that every pair within the
// clique is pairwise unequal: [lit = 0] for every unordered pair (a, b)
// in clique.
func (p *GccInequalitySets) cliqueInequalityReason(clique []int) Reason {
	var reason Reason
	for a := 0; a < len(clique); a++ {
		for b := a + 1; b < len(clique); b++ {
			lit, ok := p.E.GetEquality(clique[a], clique[b])
			if !ok {
				continue
			}
			reason = append(reason, LitIsFalse(lit))
		}
	}
	return reason
}

// buildInfeasibleReason extends cliqueReason with the domain description
// of every clique variable plus one additional variable outside the
// clique (any index not yet included), per the max-flow-infeasible
// conflict contract.
func (p *GccInequalitySets) buildInfeasibleReason(ctx Assignments, clique []int, cliqueReason Reason) Reason {
	reason := make(Reason, 0, len(cliqueReason))
	reason = append(reason, cliqueReason...)
	for _, idx := range clique {
		reason = append(reason, ctx.DescribeDomain(p.X[idx])...)
	}
	inClique := make(map[int]bool, len(clique))
	for _, idx := range clique {
		inClique[idx] = true
	}
	for i := range p.X {
		if !inClique[i] {
			reason = append(reason, ctx.DescribeDomain(p.X[i])...)
			break
		}
	}
	return reason
}

// pruneViaSCC implements the domain-pruning half of the propagator: when
// max flow equals k, every (variable, value) edge crossing from one SCC
// of the residual graph to a different one corresponds to a value the
// variable can never take in any maximum matching.
func (p *GccInequalitySets) pruneViaSCC(
	ctx PropagationContext,
	g *flowGraph,
	clique []int,
	valueNodeOf map[int]int,
	cliqueReason Reason,
) (Status, error) {
	const source = 0
	k := len(clique)
	sccOf, components := g.tarjanSCC()

	changed := false
	for compIdx := len(components) - 1; compIdx >= 0; compIdx-- {
		for _, v := range components[compIdx] {
			if v < 1 || v > k {
				continue // not a variable node
			}
			varIdx := clique[v-1]

			var prunedValues []int
			for _, u := range g.adj[v] {
				if u == source || g.capacity(v, u) <= 0 {
					continue
				}
				if sccOf[u] == sccOf[v] {
					continue
				}
				value, ok := nodeToValue(u, valueNodeOf)
				if !ok {
					continue
				}
				prunedValues = append(prunedValues, value)
			}
			sort.Ints(prunedValues)

			for _, value := range prunedValues {
				uNode := valueNodeOf[value]
				reachable := g.reachableFrom(uNode)
				reason := make(Reason, 0, len(cliqueReason))
				reason = append(reason, cliqueReason...)
				for idx, x := range p.X {
					node := variableNodeInClique(idx, clique)
					if node >= 0 && reachable[node] {
						reason = append(reason, ctx.DescribeDomain(x)...)
					}
				}

				status, err := ctx.Remove(p.X[varIdx], value, reason)
				if err != nil {
					return Conflict, err
				}
				if status == DomainChange {
					changed = true
				}
				g.removeEdge(v, uNode)
			}
		}
	}

	if changed {
		statsOrNop(ctx.Statistics()).IncInequalitySetsPropagations()
		return DomainChange, nil
	}
	return NoChange, nil
}

func nodeToValue(node int, valueNodeOf map[int]int) (int, bool) {
	for v, n := range valueNodeOf {
		if n == node {
			return v, true
		}
	}
	return 0, false
}

func variableNodeInClique(globalIdx int, clique []int) int {
	for i, idx := range clique {
		if idx == globalIdx {
			return i + 1
		}
	}
	return -1
}

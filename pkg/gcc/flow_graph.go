package gcc

// flowGraph is a small directed graph used by GccInequalitySets to model
// one clique's feasibility as a unit-capacity max-flow problem. Nodes are
// plain integer IDs; the adjacency list carries both directions of every
// edge and residualCapacities tracks which direction currently has
// capacity. Rebuilt from scratch on every Propagate call, so a map-based
// representation is acceptable even though a dense matrix would also
// work at this scale.
type flowGraph struct {
	size               int
	adj                [][]int
	residualCapacities map[edgeKey]int
}

type edgeKey struct {
	u, v int
}

func newFlowGraph(size int) *flowGraph {
	return &flowGraph{
		size:               size,
		adj:                make([][]int, size),
		residualCapacities: make(map[edgeKey]int),
	}
}

// addEdge adds a unit-capacity edge u -> v along with its zero-capacity
// reverse, as Ford-Fulkerson's residual-graph formulation requires.
func (g *flowGraph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.residualCapacities[edgeKey{u, v}] = 1
	if _, ok := g.residualCapacities[edgeKey{v, u}]; !ok {
		g.residualCapacities[edgeKey{v, u}] = 0
	}
}

func (g *flowGraph) capacity(u, v int) int {
	return g.residualCapacities[edgeKey{u, v}]
}

// augment finds one DFS augmenting path from source to sink in the
// residual graph and, if found, pushes one unit of flow along it.
// Returns whether a path was found.
func (g *flowGraph) augment(source, sink int) bool {
	visited := make([]bool, g.size)
	parent := make([]int, g.size)
	for i := range parent {
		parent[i] = -1
	}

	stack := []int{source}
	visited[source] = true
	found := false
	for len(stack) > 0 && !found {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.adj[u] {
			if visited[w] || g.capacity(u, w) <= 0 {
				continue
			}
			visited[w] = true
			parent[w] = u
			if w == sink {
				found = true
				break
			}
			stack = append(stack, w)
		}
	}
	if !found {
		return false
	}

	for v := sink; v != source; {
		u := parent[v]
		g.residualCapacities[edgeKey{u, v}]--
		g.residualCapacities[edgeKey{v, u}]++
		v = u
	}
	return true
}

// maxFlow runs Ford-Fulkerson with DFS augmenting paths until no further
// augmenting path exists, returning the total flow pushed from source to
// sink.
func (g *flowGraph) maxFlow(source, sink int) int {
	flow := 0
	for g.augment(source, sink) {
		flow++
	}
	return flow
}

// tarjanSCC computes strongly connected components of the residual graph
// restricted to edges with strictly positive residual capacity. Returns
// scc[node] = component index, along with the components themselves in
// Tarjan's discovery order (each finished component is a reverse
// topological predecessor of the ones discovered after it).
func (g *flowGraph) tarjanSCC() (sccOf []int, components [][]int) {
	sccOf = make([]int, g.size)
	for i := range sccOf {
		sccOf[i] = -1
	}

	indices := make([]int, g.size)
	lowlink := make([]int, g.size)
	onStack := make([]bool, g.size)
	for i := range indices {
		indices[i] = -1
	}
	index := 0
	var stack []int

	var strongconnect func(int)
	strongconnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g.adj[v] {
			if g.capacity(v, w) <= 0 {
				continue
			}
			if indices[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlink[v] {
					lowlink[v] = indices[w]
				}
			}
		}

		if lowlink[v] == indices[v] {
			var comp []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				sccOf[w] = len(components)
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			components = append(components, comp)
		}
	}

	for v := 0; v < g.size; v++ {
		if indices[v] == -1 {
			strongconnect(v)
		}
	}
	return sccOf, components
}

// removeEdge zeroes out the residual capacity of u -> v so a pruned
// (variable, value) pair is not reconsidered within the same Propagate
// call.
func (g *flowGraph) removeEdge(u, v int) {
	g.residualCapacities[edgeKey{u, v}] = 0
}

// reachableFrom returns, via DFS over edges with positive residual
// capacity, every node reachable from start (start included).
func (g *flowGraph) reachableFrom(start int) []bool {
	reached := make([]bool, g.size)
	stack := []int{start}
	reached[start] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range g.adj[u] {
			if reached[w] || g.capacity(u, w) <= 0 {
				continue
			}
			reached[w] = true
			stack = append(stack, w)
		}
	}
	return reached
}

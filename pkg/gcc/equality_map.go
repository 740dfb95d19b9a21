package gcc

// EqualityMap is a partial mapping from unordered pairs {i, j}, i != j, of
// variable indices to the literal reifying their equality. The posting
// layer maintains the semantic contract E_{i,j} = 1 => x_i = x_j and
// E_{i,j} = 0 => x_i != x_j, with transitive closure, outside the core;
// the core treats an EqualityMap as opaque lookup input. Not every pair
// need be present.
type EqualityMap struct {
	entries map[pairKey]Entity
}

type pairKey struct {
	lo, hi int
}

func canonicalPair(i, j int) pairKey {
	if i < j {
		return pairKey{lo: i, hi: j}
	}
	return pairKey{lo: j, hi: i}
}

// NewEqualityMap creates an empty equality map.
func NewEqualityMap() *EqualityMap {
	return &EqualityMap{entries: make(map[pairKey]Entity)}
}

// Set records the literal reifying x_i = x_j. i and j must differ; Set
// panics otherwise, since a pair can never equal itself under this model.
func (m *EqualityMap) Set(i, j int, lit Entity) {
	if i == j {
		panic("gcc: equality map pair must have distinct indices")
	}
	m.entries[canonicalPair(i, j)] = lit
}

// GetEquality canonicalises the lookup over either direction: (i, j) and
// (j, i) resolve to the same literal. Returns NoEntity, false if the pair
// is absent.
func (m *EqualityMap) GetEquality(i, j int) (Entity, bool) {
	if i == j {
		return NoEntity, false
	}
	lit, ok := m.entries[canonicalPair(i, j)]
	if !ok {
		return NoEntity, false
	}
	return lit, true
}

// Pairs calls f once per recorded pair, with i < j, in no particular
// order.
func (m *EqualityMap) Pairs(f func(i, j int, lit Entity)) {
	for k, lit := range m.entries {
		f(k.lo, k.hi, lit)
	}
}

// Len reports the number of recorded pairs.
func (m *EqualityMap) Len() int { return len(m.entries) }

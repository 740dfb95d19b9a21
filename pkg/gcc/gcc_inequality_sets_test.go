package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGccInequalitySetsScenarioS4 reproduces S4: x1, x2, x3 in {0,1};
// lit12 = lit13 = lit23 = 0. Max flow through the 3-variable/2-value
// bipartite graph is 2 < 3, so the clique is infeasible and the
// propagator must return a conflict.
func TestGccInequalitySetsScenarioS4(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(0, 1)
	x2 := ctx.newIntVar(0, 1)
	x3 := ctx.newIntVar(0, 1)
	e := NewEqualityMap()
	l12, l13, l23 := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()
	e.Set(0, 1, l12)
	e.Set(0, 2, l13)
	e.Set(1, 2, l23)
	_, _ = ctx.AssignLiteral(l12, false, nil)
	_, _ = ctx.AssignLiteral(l13, false, nil)
	_, _ = ctx.AssignLiteral(l23, false, nil)

	p := NewGccInequalitySets([]Entity{x1, x2, x3}, e)
	status, err := p.Propagate(ctx)
	assert.Equal(t, Conflict, status)
	require.Error(t, err)

	ce, ok := AsConflict(err)
	require.True(t, ok)
	assert.Contains(t, ce.Reason, LitIsFalse(l12))
	assert.Contains(t, ce.Reason, LitIsFalse(l13))
	assert.Contains(t, ce.Reason, LitIsFalse(l23))
}

func TestGccInequalitySetsNoCliqueReturnsNoChange(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(0, 5)
	x2 := ctx.newIntVar(0, 5)
	e := NewEqualityMap()
	lit := ctx.newLiteral()
	e.Set(0, 1, lit)
	_, _ = ctx.AssignLiteral(lit, false, nil)

	p := NewGccInequalitySets([]Entity{x1, x2}, e)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status, "exclusion already handles size-2 inequality pairs")
}

func TestGccInequalitySetsFeasibleCliquePrunesNothingWhenEnoughValues(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(0, 3)
	x2 := ctx.newIntVar(0, 3)
	x3 := ctx.newIntVar(0, 3)
	e := NewEqualityMap()
	l12, l13, l23 := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()
	e.Set(0, 1, l12)
	e.Set(0, 2, l13)
	e.Set(1, 2, l23)
	_, _ = ctx.AssignLiteral(l12, false, nil)
	_, _ = ctx.AssignLiteral(l13, false, nil)
	_, _ = ctx.AssignLiteral(l23, false, nil)

	p := NewGccInequalitySets([]Entity{x1, x2, x3}, e)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestSelectCliqueDeterministicOrdering(t *testing.T) {
	ctx := newFakeContext()
	// Four variables; 0,1,2 pairwise unequal (a clique of size 3), 3 is
	// unconstrained. Domain sizes favour 0 as the most-constrained seed.
	x0 := ctx.newIntVar(0, 1)
	x1 := ctx.newIntVar(0, 2)
	x2 := ctx.newIntVar(0, 3)
	x3 := ctx.newIntVar(0, 9)
	e := NewEqualityMap()
	l01, l02, l12 := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()
	e.Set(0, 1, l01)
	e.Set(0, 2, l02)
	e.Set(1, 2, l12)
	_, _ = ctx.AssignLiteral(l01, false, nil)
	_, _ = ctx.AssignLiteral(l02, false, nil)
	_, _ = ctx.AssignLiteral(l12, false, nil)

	p := NewGccInequalitySets([]Entity{x0, x1, x2, x3}, e)
	clique := p.selectClique(ctx)
	require.Len(t, clique, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, clique)
}

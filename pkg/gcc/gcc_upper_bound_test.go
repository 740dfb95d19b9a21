package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGccUpperBoundScenarioS5 reproduces S5: x1, x2, x3 in [1,3];
// V = {(1,0,1), (2,0,1), (3,0,2)}; lit12 := 1. After propagation,
// dom(x1) = dom(x2) = {3}.
func TestGccUpperBoundScenarioS5(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(1, 3)
	x2 := ctx.newIntVar(1, 3)
	x3 := ctx.newIntVar(1, 3)
	e := NewEqualityMap()
	lit12 := ctx.newLiteral()
	e.Set(0, 1, lit12)
	_, _ = ctx.AssignLiteral(lit12, true, nil)

	values := []ValueSpec{
		NewValueSpec(1, 0, 1),
		NewValueSpec(2, 0, 1),
		NewValueSpec(3, 0, 2),
	}

	p := NewGccUpperBound([]Entity{x1, x2, x3}, e, values)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.Equal(t, "{3}", ctx.domains[x1].String())
	assert.Equal(t, "{3}", ctx.domains[x2].String())
	assert.Equal(t, 1, ctx.stats.upperBoundPropagations)
}

func TestGccUpperBoundNoOpWithoutEqualityClasses(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(1, 3)
	x2 := ctx.newIntVar(1, 3)
	e := NewEqualityMap()
	values := []ValueSpec{NewValueSpec(1, 0, 2)}

	p := NewGccUpperBound([]Entity{x1, x2}, e, values)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestGccUpperBoundConflictWhenClassExceedsLimit(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(1, 1)
	x2 := ctx.newIntVar(1, 1)
	e := NewEqualityMap()
	lit := ctx.newLiteral()
	e.Set(0, 1, lit)
	_, _ = ctx.AssignLiteral(lit, true, nil)

	values := []ValueSpec{NewValueSpec(1, 0, 1)}

	p := NewGccUpperBound([]Entity{x1, x2}, e, values)
	status, err := p.Propagate(ctx)
	assert.Equal(t, Conflict, status)
	require.Error(t, err)
}

func TestGccUpperBoundSetReasonOnlyIncludesTrueLiterals(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(1, 3)
	x2 := ctx.newIntVar(1, 3)
	x3 := ctx.newIntVar(1, 3)
	e := NewEqualityMap()
	lit12 := ctx.newLiteral()
	lit23 := ctx.newLiteral()
	e.Set(0, 1, lit12)
	e.Set(1, 2, lit23)
	_, _ = ctx.AssignLiteral(lit12, true, nil)
	// lit23 is left unassigned: x3 is not known-equal to the class.

	uf := newUnionFind(3)
	uf.union(0, 1)
	p := NewGccUpperBound([]Entity{x1, x2, x3}, e, nil)
	reason := p.buildSetReason(ctx, []int{0, 1})
	require.Len(t, reason, 1)
	assert.Equal(t, LitIsTrue(lit12), reason[0])
}

package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityAssignsLiteralWhenBothFixedToSameValue(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(4, 4)
	y := ctx.newIntVar(4, 4)
	lit := ctx.newLiteral()

	p := NewEquality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.True(t, ctx.IsLiteralTrue(lit))
	assert.Equal(t, 1, ctx.stats.equalityPropagations)
}

func TestEqualityNoChangeWhenFixedToDifferentValues(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(4, 4)
	y := ctx.newIntVar(5, 5)
	lit := ctx.newLiteral()

	p := NewEquality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
	assert.False(t, ctx.IsLiteralTrue(lit))
}

func TestEqualityNoChangeWhenNotBothFixed(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(4, 4)
	y := ctx.newIntVar(1, 5)
	lit := ctx.newLiteral()

	p := NewEquality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestEqualityEarlyExitsWhenAlreadyTrue(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(4, 4)
	y := ctx.newIntVar(4, 4)
	lit := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit, true, nil)

	p := NewEquality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
	assert.Equal(t, 0, ctx.stats.equalityPropagations)
}

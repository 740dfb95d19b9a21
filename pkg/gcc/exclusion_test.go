package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionPrunesWhenLiteralFalseAndXFixed(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(3, 3)
	y := ctx.newIntVar(1, 5)
	lit := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit, false, nil)

	p := NewExclusion(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.False(t, ctx.domains[y].Has(3))
}

func TestExclusionNoChangeWhenLiteralUnknown(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(3, 3)
	y := ctx.newIntVar(1, 5)
	lit := ctx.newLiteral()

	p := NewExclusion(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestExclusionNoChangeWhenXNotFixed(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(1, 3)
	y := ctx.newIntVar(1, 5)
	lit := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit, false, nil)

	p := NewExclusion(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestExclusionConflictWhenYFixedToExcludedValue(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(3, 3)
	y := ctx.newIntVar(3, 3)
	lit := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit, false, nil)

	xy := NewExclusion(x, y, lit)
	status, err := xy.Propagate(ctx)
	assert.Equal(t, Conflict, status)
	require.Error(t, err)
}

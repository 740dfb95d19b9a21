package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInequalityAssignsFalseOnDisjointDomains(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(1, 3)
	y := ctx.newIntVar(5, 8)
	lit := ctx.newLiteral()

	p := NewInequality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.True(t, ctx.IsLiteralFalse(lit))
}

func TestInequalityNoChangeWhenDomainsOverlap(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(1, 5)
	y := ctx.newIntVar(3, 8)
	lit := ctx.newLiteral()

	p := NewInequality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

func TestInequalityNoChangeWhenAlreadyFalse(t *testing.T) {
	ctx := newFakeContext()
	x := ctx.newIntVar(1, 3)
	y := ctx.newIntVar(5, 8)
	lit := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit, false, nil)

	p := NewInequality(x, y, lit)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

// TestInequalityCliqueTrivialS3 reproduces S3: x1 in [1,1], x2 in [1,2],
// x3 in [5,5]; lit12 = lit13 = lit23 = 0. Only lit12 = 0 is asserted in
// this unit test, since it is the one the Exclusion step needs; the
// inequality propagator itself would derive lit13 and lit23 from the
// disjoint domains. Expected after Exclusion runs: dom(x2) = {2}.
func TestInequalityCliqueTrivialS3(t *testing.T) {
	ctx := newFakeContext()
	x1 := ctx.newIntVar(1, 1)
	x2 := ctx.newIntVar(1, 2)
	x3 := ctx.newIntVar(5, 5)
	lit12 := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(lit12, false, nil)

	exclusion := NewExclusion(x1, x2, lit12)
	status, err := exclusion.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.Equal(t, "{2}", ctx.domains[x2].String())
	_ = x3
}

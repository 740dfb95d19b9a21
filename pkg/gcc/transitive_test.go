package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransitiveScenarioS2 reproduces S2: lit12 := 1, lit23 := 1 (lit13
// unassigned) should assign lit13 = 1 with reason {lit12 = 1, lit23 = 1}.
func TestTransitiveScenarioS2(t *testing.T) {
	ctx := newFakeContext()
	xy := ctx.newLiteral()
	yz := ctx.newLiteral()
	xz := ctx.newLiteral()
	_, _ = ctx.AssignLiteral(xy, true, nil)
	_, _ = ctx.AssignLiteral(yz, true, nil)

	p := NewTransitive(xy, yz, xz)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, DomainChange, status)
	assert.True(t, ctx.IsLiteralTrue(xz))
}

func TestTransitiveMixedCaseForcesFalse(t *testing.T) {
	t.Run("xy=1,yz=0", func(t *testing.T) {
		ctx := newFakeContext()
		xy, yz, xz := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()
		_, _ = ctx.AssignLiteral(xy, true, nil)
		_, _ = ctx.AssignLiteral(yz, false, nil)

		p := NewTransitive(xy, yz, xz)
		status, err := p.Propagate(ctx)
		require.NoError(t, err)
		assert.Equal(t, DomainChange, status)
		assert.True(t, ctx.IsLiteralFalse(xz))
	})

	t.Run("xy=0,yz=1", func(t *testing.T) {
		ctx := newFakeContext()
		xy, yz, xz := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()
		_, _ = ctx.AssignLiteral(xy, false, nil)
		_, _ = ctx.AssignLiteral(yz, true, nil)

		p := NewTransitive(xy, yz, xz)
		status, err := p.Propagate(ctx)
		require.NoError(t, err)
		assert.Equal(t, DomainChange, status)
		assert.True(t, ctx.IsLiteralFalse(xz))
	})
}

func TestTransitiveNoChangeWhenBothUnknown(t *testing.T) {
	ctx := newFakeContext()
	xy, yz, xz := ctx.newLiteral(), ctx.newLiteral(), ctx.newLiteral()

	p := NewTransitive(xy, yz, xz)
	status, err := p.Propagate(ctx)
	require.NoError(t, err)
	assert.Equal(t, NoChange, status)
}

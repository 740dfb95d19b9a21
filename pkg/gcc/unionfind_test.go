package gcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionFindClasses(t *testing.T) {
	uf := newUnionFind(5)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(3, 4)

	classes := uf.classes()
	require.Len(t, classes, 2)

	var sizes []int
	for _, c := range classes {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{3, 2}, sizes)
}

func TestUnionFindSingletonsRemainSeparate(t *testing.T) {
	uf := newUnionFind(3)
	classes := uf.classes()
	assert.Len(t, classes, 3)
	for _, c := range classes {
		assert.Len(t, c, 1)
	}
}

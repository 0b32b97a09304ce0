package setfamily_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroids/setfamily"
)

func mustFamily(t *testing.T, ground []int, subsets [][]int) *setfamily.Family[int] {
	t.Helper()
	f, err := setfamily.New(ground, subsets)
	require.NoError(t, err)

	return f
}

func TestNew_StrayElement(t *testing.T) {
	_, err := setfamily.New([]int{0, 1, 2}, [][]int{{0, 9}})
	assert.ErrorIs(t, err, setfamily.ErrGroundSet)
}

func TestNew_MergesDuplicates(t *testing.T) {
	f := mustFamily(t, []int{0, 1, 2}, [][]int{{0, 1}, {1, 0}, {0, 1}, {2}})
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Contains([]int{0, 1}))
	assert.True(t, f.Contains([]int{2}))
}

func TestNew_GroundNormalization(t *testing.T) {
	f := mustFamily(t, []int{3, 1, 2, 1}, nil)
	assert.Equal(t, []int{1, 2, 3}, f.Ground())
	assert.Equal(t, 3, f.GroundSize())
}

func TestContains_Verbatim(t *testing.T) {
	f := mustFamily(t, []int{0, 1, 2, 3}, [][]int{{0, 1, 2}})
	assert.True(t, f.Contains([]int{2, 1, 0}), "order must not matter")
	assert.False(t, f.Contains([]int{0, 1}), "strict subset is not membership")
	assert.False(t, f.Contains([]int{0, 9}), "stray element is never contained")
}

func TestEach_StableAndRestartable(t *testing.T) {
	f := mustFamily(t, []int{0, 1, 2, 3}, [][]int{{0, 1, 2}, {3}, {1, 2}})
	var first, second [][]int
	f.Each(func(sub []int) bool {
		first = append(first, sub)

		return true
	})
	f.Each(func(sub []int) bool {
		second = append(second, sub)

		return true
	})
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
	// Canonical order is size-ascending.
	assert.Len(t, first[0], 1)
	assert.Len(t, first[2], 3)
}

func TestEach_EarlyStop(t *testing.T) {
	f := mustFamily(t, []int{0, 1, 2}, [][]int{{0}, {1}, {2}})
	seen := 0
	f.Each(func([]int) bool {
		seen++

		return false
	})
	assert.Equal(t, 1, seen)
}

func TestEqual(t *testing.T) {
	a := mustFamily(t, []int{0, 1, 2}, [][]int{{0, 1}, {2}})
	b := mustFamily(t, []int{2, 1, 0}, [][]int{{2}, {1, 0}})
	c := mustFamily(t, []int{0, 1, 2}, [][]int{{0, 1}})
	d := mustFamily(t, []int{0, 1, 2, 3}, [][]int{{0, 1}, {2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "different collections")
	assert.False(t, a.Equal(d), "different ground sets")
}

func TestPosition(t *testing.T) {
	f := mustFamily(t, []int{0, 1, 2}, [][]int{{0, 1}, {2}})
	pos, ok := f.Position([]int{2})
	require.True(t, ok)
	assert.Equal(t, []int{2}, f.FromBits(f.Bits(pos)))

	_, ok = f.Position([]int{0, 2})
	assert.False(t, ok)
}

func TestEmptyGround(t *testing.T) {
	f := mustFamily(t, nil, [][]int{{}})
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Contains(nil))
}

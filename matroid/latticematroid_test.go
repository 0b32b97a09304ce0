package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroids/lattice"
	"github.com/katalvlaran/matroids/matroid"
)

// u23lattice is the lattice of flats of U(2, 3): bottom, three points, top.
func u23lattice(t *testing.T) *matroid.LatticeMatroid[int] {
	t.Helper()
	m, err := matroid.NewLatticeMatroid([]int{0, 1, 2},
		[][]int{{}, {0}, {1}, {2}, {0, 1, 2}})
	require.NoError(t, err)

	return m
}

func TestNewLatticeMatroid_Empty(t *testing.T) {
	_, err := matroid.NewLatticeMatroid[int]([]int{0}, nil)
	assert.ErrorIs(t, err, lattice.ErrEmptyLattice)
}

func TestLattice_U23(t *testing.T) {
	m := u23lattice(t)
	assert.True(t, m.IsValid())
	assert.Equal(t, 2, m.FullRank())

	r, err := m.Rank([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	r, err = m.Rank([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, r, "two points already span U(2,3)")

	cl, err := m.Closure([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, cl)

	ok, err := m.IsClosed([]int{1})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLattice_PosetRankSuppliesPartitionKey(t *testing.T) {
	m := u23lattice(t)
	assert.Len(t, m.Flats(0), 1)
	assert.Len(t, m.Flats(1), 3)
	assert.Len(t, m.Flats(2), 1)
}

func TestLattice_MissingGroundSetInvalid(t *testing.T) {
	m, err := matroid.NewLatticeMatroid([]int{0, 1, 2},
		[][]int{{}, {0}, {1}, {2}})
	require.NoError(t, err)
	assert.False(t, m.IsValid())
}

func TestLattice_NonGeometricInvalid(t *testing.T) {
	// A chain is a lattice but not atomic, so not geometric.
	m, err := matroid.NewLatticeMatroid([]int{0, 1},
		[][]int{{}, {0}, {0, 1}})
	require.NoError(t, err)
	assert.False(t, m.IsValid())
}

func TestLattice_WhitneyNumbers(t *testing.T) {
	m := u23lattice(t)
	w, err := m.WhitneyNumbers()
	require.NoError(t, err)
	// Characteristic polynomial of U(2,3) is t² − 3t + 2.
	assert.Equal(t, []int64{1, -3, 2}, w)
}

func TestLattice_WhitneyNumbersNoBottom(t *testing.T) {
	m, err := matroid.NewLatticeMatroid([]int{0, 1}, [][]int{{0}, {1}})
	require.NoError(t, err)
	_, err = m.WhitneyNumbers()
	assert.ErrorIs(t, err, matroid.ErrNoBottom)
}

func TestLattice_Relabel(t *testing.T) {
	m := u23lattice(t)
	rm := m.Relabel(map[int]int{0: 9})
	assert.Equal(t, []int{1, 2, 9}, rm.GroundSet())
	assert.True(t, rm.IsValid())

	r, err := rm.Rank([]int{9, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

func TestLattice_Equal(t *testing.T) {
	a := u23lattice(t)
	b := u23lattice(t)
	assert.True(t, a.Equal(b))

	c, err := matroid.NewLatticeMatroid([]int{0, 1, 2},
		[][]int{{}, {0}, {1}, {2}})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestNewLatticeMatroidFrom_CircuitsSource(t *testing.T) {
	cm, err := matroid.NewCircuitsMatroid([]int{0, 1, 2},
		[][]int{{0, 1, 2}})
	require.NoError(t, err)

	lm, err := matroid.NewLatticeMatroidFrom[int](cm)
	require.NoError(t, err)
	assert.True(t, lm.IsValid())
	assert.Equal(t, 2, lm.FullRank())

	r, err := lm.Rank([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

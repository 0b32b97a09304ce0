package matroid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroids/matroid"
)

// u24circuits is the uniform matroid U(2, 4): every 3-subset a circuit.
func u24circuits(t *testing.T) *matroid.CircuitsMatroid[int] {
	t.Helper()
	m, err := matroid.NewCircuitsMatroid(
		[]int{0, 1, 2, 3},
		[][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
	)
	require.NoError(t, err)

	return m
}

func TestNewCircuitsMatroid_StrayElement(t *testing.T) {
	_, err := matroid.NewCircuitsMatroid([]int{0, 1}, [][]int{{0, 7}})
	assert.ErrorIs(t, err, matroid.ErrGroundSet)
}

func TestCircuits_U24RankAndValidity(t *testing.T) {
	m := u24circuits(t)
	assert.True(t, m.IsValid())
	assert.Equal(t, 2, m.FullRank())

	r, err := m.Rank([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = m.Rank([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = m.Rank(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r)
}

func TestCircuits_MinimalityViolation(t *testing.T) {
	m, err := matroid.NewCircuitsMatroid([]int{0, 1, 2}, [][]int{{0, 1}, {0, 1, 2}})
	require.NoError(t, err, "construction never validates axioms")
	assert.False(t, m.IsValid())
}

func TestCircuits_EmptyCircuitInvalid(t *testing.T) {
	m, err := matroid.NewCircuitsMatroid([]int{0, 1}, [][]int{{}})
	require.NoError(t, err)
	assert.False(t, m.IsValid())
}

func TestCircuits_EliminationViolation(t *testing.T) {
	// {0,1} and {1,2} share 1, but {0,2} contains no circuit.
	m, err := matroid.NewCircuitsMatroid([]int{0, 1, 2}, [][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.False(t, m.IsValid())
}

func TestCircuits_FreeMatroid(t *testing.T) {
	m, err := matroid.NewCircuitsMatroid([]int{0, 1, 2}, nil)
	require.NoError(t, err)
	assert.True(t, m.IsValid())
	assert.Equal(t, 3, m.FullRank())

	ok, err := m.IsIndependent([]int{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCircuits_IsIndependent(t *testing.T) {
	m := u24circuits(t)
	for _, tc := range []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{0}, true},
		{[]int{0, 3}, true},
		{[]int{0, 1, 2}, false},
		{[]int{0, 1, 2, 3}, false},
	} {
		got, err := m.IsIndependent(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "IsIndependent(%v)", tc.in)
	}
}

func TestCircuits_MaxIndependentSubset(t *testing.T) {
	m := u24circuits(t)
	sub, err := m.MaxIndependentSubset([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, sub, 2, "size must equal the rank regardless of removal choice")

	ok, err := m.IsIndependent(sub)
	require.NoError(t, err)
	assert.True(t, ok)

	sub, err = m.MaxIndependentSubset([]int{0, 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, sub, "independent input returns itself")
}

func TestCircuits_ContainedCircuit(t *testing.T) {
	m := u24circuits(t)
	c, err := m.ContainedCircuit([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, c, 3)

	_, err = m.ContainedCircuit([]int{0, 1})
	assert.ErrorIs(t, err, matroid.ErrNoCircuit)
}

func TestCircuits_Closure(t *testing.T) {
	m := u24circuits(t)
	cl, err := m.Closure([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, cl, "two points span the whole line in U(2,4)")

	cl, err = m.Closure([]int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, cl)
}

func TestCircuits_Flats(t *testing.T) {
	m := u24circuits(t)
	fl, err := m.Flats(1)
	require.NoError(t, err)
	assert.Len(t, fl, 4, "each point is its own rank-1 flat")

	fl, err = m.Flats(2)
	require.NoError(t, err)
	require.Len(t, fl, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, fl[0])
}

func TestCircuits_Relabel(t *testing.T) {
	m := u24circuits(t)
	shift := map[int]int{0: 10, 1: 11, 2: 12, 3: 13}
	rm := m.Relabel(shift)

	assert.Equal(t, []int{10, 11, 12, 13}, rm.GroundSet())
	assert.Equal(t, 2, rm.FullRank())

	r, err := rm.Rank([]int{10, 11})
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.True(t, rm.IsValid())
}

func TestCircuits_RelabelPartialMapping(t *testing.T) {
	m := u24circuits(t)
	rm := m.Relabel(map[int]int{3: 7})
	assert.Equal(t, []int{0, 1, 2, 7}, rm.GroundSet(), "unmapped elements keep their label")
}

func TestCircuits_Equal(t *testing.T) {
	a := u24circuits(t)
	b := u24circuits(t)
	assert.True(t, a.Equal(b))

	c, err := matroid.NewCircuitsMatroid([]int{0, 1, 2, 3}, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestNewCircuitsMatroidFrom_FlatsSource(t *testing.T) {
	fm, err := matroid.NewFlatsMatroid([]int{0, 1}, map[int][][]int{
		0: {{}},
		1: {{0}, {1}},
		2: {{0, 1}},
	})
	require.NoError(t, err)

	cm, err := matroid.NewCircuitsMatroidFrom[int](fm)
	require.NoError(t, err)
	assert.Empty(t, cm.Circuits(), "the free matroid on two elements has no circuits")
	assert.Equal(t, 2, cm.FullRank())
}

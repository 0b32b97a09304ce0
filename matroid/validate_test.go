package matroid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroids/catalog"
	"github.com/katalvlaran/matroids/matroid"
)

func TestValidContext_Cancelled(t *testing.T) {
	m := u24circuits(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.ValidContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidContext_FlatsCancelled(t *testing.T) {
	m := freeTwo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.ValidContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidContext_LatticeCancelled(t *testing.T) {
	m := u23lattice(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.ValidContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidContext_AgreesWithIsValid(t *testing.T) {
	good := u24circuits(t)
	ok, err := good.ValidContext(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	bad, err := matroid.NewCircuitsMatroid([]int{0, 1, 2}, [][]int{{0, 1}, {0, 1, 2}})
	require.NoError(t, err)
	ok, err = bad.ValidContext(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValid_LargerCircuitFamily(t *testing.T) {
	// U(3, 6): all 4-subsets of a 6-element ground set, 15 circuits.
	m, err := catalog.Uniform(3, 6)
	require.NoError(t, err)
	assert.True(t, m.IsValid())
	assert.Equal(t, 3, m.FullRank())
}

func TestIsValid_DerivedFlatsOfK4(t *testing.T) {
	fm, err := matroid.NewFlatsMatroidFrom[string](catalog.K4())
	require.NoError(t, err)
	assert.True(t, fm.IsValid())
	assert.Equal(t, 3, fm.FullRank())
}

func TestIsValid_ConcurrentQueries(t *testing.T) {
	// Validity and rank queries race freely on an immutable façade.
	m := u24circuits(t)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			assert.True(t, m.IsValid())
			r, err := m.Rank([]int{0, 1, 2})
			assert.NoError(t, err)
			assert.Equal(t, 2, r)
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

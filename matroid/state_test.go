package matroid_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matroids/catalog"
	"github.com/katalvlaran/matroids/matroid"
)

func TestState_RoundTripCircuits(t *testing.T) {
	m := u24circuits(t)
	s := m.ExportState()
	assert.Equal(t, matroid.KindCircuits, s.Kind)

	back, err := matroid.FromState(s)
	require.NoError(t, err)
	cm, ok := back.(*matroid.CircuitsMatroid[int])
	require.True(t, ok)
	assert.True(t, m.Equal(cm))
}

func TestState_RoundTripFlats(t *testing.T) {
	m := catalog.Fano()
	s := m.ExportState()
	assert.Equal(t, matroid.KindFlats, s.Kind)
	assert.Equal(t, "Fano", s.Name)

	back, err := matroid.FromState(s)
	require.NoError(t, err)
	fm, ok := back.(*matroid.FlatsMatroid[string])
	require.True(t, ok)
	assert.True(t, m.Equal(fm))
	assert.Equal(t, "Fano", fm.Name())
}

func TestState_RoundTripLattice(t *testing.T) {
	m := u23lattice(t)
	back, err := matroid.FromState(m.ExportState())
	require.NoError(t, err)
	lm, ok := back.(*matroid.LatticeMatroid[int])
	require.True(t, ok)
	assert.True(t, m.Equal(lm))
}

func TestState_UnknownKind(t *testing.T) {
	_, err := matroid.FromState(matroid.State[int]{Kind: 0})
	assert.ErrorIs(t, err, matroid.ErrStateKind)
}

func TestState_CBORRoundTrip(t *testing.T) {
	m := catalog.K4()
	s := m.ExportState()

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	var got matroid.State[string]
	read, err := got.ReadFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, n, read)

	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	back, err := matroid.FromState(got)
	require.NoError(t, err)
	assert.True(t, m.Equal(back.(*matroid.CircuitsMatroid[string])))
}

func TestState_CBORDeterministic(t *testing.T) {
	s := u24circuits(t).ExportState()
	var a, b bytes.Buffer
	_, err := s.WriteTo(&a)
	require.NoError(t, err)
	_, err = s.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

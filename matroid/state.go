package matroid

import (
	"bytes"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/constraints"
)

// Kind identifies the encoding of an exported State.
type Kind uint8

const (
	// KindCircuits marks a circuits-encoded state.
	KindCircuits Kind = iota + 1
	// KindFlats marks a rank-indexed flats state.
	KindFlats
	// KindLattice marks a lattice-of-flats state.
	KindLattice
)

// State is the persistence boundary: the construction data sufficient to
// rebuild an equivalent matroid through FromState. Exactly one of
// Circuits, Flats, or Sets is populated, matching Kind.
//
// State serializes deterministically to CBOR via WriteTo/ReadFrom; the
// surrounding file or stream format is the caller's concern.
type State[E constraints.Ordered] struct {
	Kind      Kind          `cbor:"kind"`
	Name      string        `cbor:"name,omitempty"`
	GroundSet []E           `cbor:"groundset"`
	Circuits  [][]E         `cbor:"circuits,omitempty"`
	Flats     map[int][][]E `cbor:"flats,omitempty"`
	Sets      [][]E         `cbor:"sets,omitempty"`
}

// ExportState returns the construction data of the circuits encoding.
func (m *CircuitsMatroid[E]) ExportState() State[E] {
	return State[E]{
		Kind:      KindCircuits,
		Name:      m.name,
		GroundSet: m.fam.Ground(),
		Circuits:  m.fam.Sets(),
	}
}

// ExportState returns the construction data of the flats encoding.
func (m *FlatsMatroid[E]) ExportState() State[E] {
	return State[E]{
		Kind:      KindFlats,
		Name:      m.name,
		GroundSet: m.fam.Ground(),
		Flats:     m.FlatsByRank(),
	}
}

// ExportState returns the construction data of the lattice encoding.
func (m *LatticeMatroid[E]) ExportState() State[E] {
	return State[E]{
		Kind:      KindLattice,
		Name:      m.name,
		GroundSet: m.GroundSet(),
		Sets:      m.lat.Family().Sets(),
	}
}

// FromState reconstructs a matroid from exported construction data.
// Round trip: FromState(m.ExportState()) equals m — same ground set,
// rank, and defining-set collection.
func FromState[E constraints.Ordered](s State[E]) (Matroid[E], error) {
	opts := []Option{WithName(s.Name)}
	switch s.Kind {
	case KindCircuits:
		return NewCircuitsMatroid(s.GroundSet, s.Circuits, opts...)
	case KindFlats:
		return NewFlatsMatroid(s.GroundSet, s.Flats, opts...)
	case KindLattice:
		return NewLatticeMatroid(s.GroundSet, s.Sets, opts...)
	default:
		return nil, ErrStateKind
	}
}

// WriteTo serializes the state as deterministic CBOR.
func (s *State[E]) WriteTo(w io.Writer) (int64, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err = em.NewEncoder(&buf).Encode(s); err != nil {
		return 0, err
	}
	n, err := w.Write(buf.Bytes())

	return int64(n), err
}

// ReadFrom deserializes a state previously written by WriteTo.
func (s *State[E]) ReadFrom(r io.Reader) (int64, error) {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return 0, err
	}
	dec := dm.NewDecoder(r)
	if err = dec.Decode(s); err != nil {
		return int64(dec.NumBytesRead()), err
	}

	return int64(dec.NumBytesRead()), nil
}

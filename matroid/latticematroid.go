package matroid

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/matroids/lattice"
)

// LatticeMatroid encodes a matroid by its lattice of flats: the supplied
// subsets ordered by inclusion, with the poset's own rank function
// supplying the rank-partition key. Immutable after construction.
type LatticeMatroid[E constraints.Ordered] struct {
	lat   *lattice.Lattice[E]
	flats *FlatsMatroid[E] // same collection, partitioned by poset height
	name  string
}

// NewLatticeMatroid builds the lattice encoding from a ground set and the
// subsets forming the lattice under inclusion. Duplicates merge silently;
// ErrGroundSet on stray elements; lattice.ErrEmptyLattice when sets is
// empty. Axioms are NOT checked here — call IsValid.
func NewLatticeMatroid[E constraints.Ordered](ground []E, sets [][]E, opts ...Option) (*LatticeMatroid[E], error) {
	lat, err := lattice.New(ground, sets)
	if err != nil {
		return nil, err
	}

	// Partition the collection by poset height and reuse the flats oracle.
	fam := lat.Family()
	byRank := make(map[int][][]E)
	var h int
	for i := 0; i < fam.Len(); i++ {
		h, _ = lat.Rank(i)
		byRank[h] = append(byRank[h], fam.FromBits(fam.Bits(i)))
	}
	flats, err := NewFlatsMatroid(fam.Ground(), byRank)
	if err != nil {
		return nil, err
	}

	return &LatticeMatroid[E]{
		lat:   lat,
		flats: flats,
		name:  buildOptions(opts).name,
	}, nil
}

// NewLatticeMatroidFrom builds the lattice encoding from any matroid,
// pulling its flats lattice directly when stored and deriving the flats
// at every rank from the rank oracle otherwise.
func NewLatticeMatroidFrom[E constraints.Ordered](m Matroid[E], opts ...Option) (*LatticeMatroid[E], error) {
	if len(opts) == 0 && m.Name() != "" {
		opts = []Option{WithName(m.Name())}
	}
	if src, ok := m.(*LatticeMatroid[E]); ok {
		return NewLatticeMatroid(src.GroundSet(), src.lat.Family().Sets(), opts...)
	}
	fm, err := NewFlatsMatroidFrom(m)
	if err != nil {
		return nil, err
	}
	var sets [][]E
	for _, r := range fm.Ranks() {
		sets = append(sets, fm.Flats(r)...)
	}

	return NewLatticeMatroid(m.GroundSet(), sets, opts...)
}

// GroundSet returns the sorted ground-set elements.
func (m *LatticeMatroid[E]) GroundSet() []E { return m.flats.GroundSet() }

// Name returns the custom display name, empty when unset.
func (m *LatticeMatroid[E]) Name() string { return m.name }

// Lattice returns the underlying inclusion poset.
func (m *LatticeMatroid[E]) Lattice() *lattice.Lattice[E] { return m.lat }

// FullRank returns the poset height of the whole lattice.
func (m *LatticeMatroid[E]) FullRank() int { return m.flats.FullRank() }

// Rank returns the poset rank of the minimal lattice flat containing X.
func (m *LatticeMatroid[E]) Rank(X []E) (int, error) { return m.flats.Rank(X) }

// Closure returns the minimal lattice flat containing X.
func (m *LatticeMatroid[E]) Closure(X []E) ([]E, error) { return m.flats.Closure(X) }

// IsClosed reports whether X is an element of the lattice.
func (m *LatticeMatroid[E]) IsClosed(X []E) (bool, error) { return m.flats.IsClosed(X) }

// IsIndependent reports whether X is independent under the poset rank.
func (m *LatticeMatroid[E]) IsIndependent(X []E) (bool, error) { return m.flats.IsIndependent(X) }

// Flats returns the lattice elements at poset rank k.
func (m *LatticeMatroid[E]) Flats(k int) [][]E { return m.flats.Flats(k) }

// Circuits derives the circuits from the rank oracle.
func (m *LatticeMatroid[E]) Circuits() ([][]E, error) { return DeriveCircuits[E](m) }

// IsValid reports whether the collection is a matroid's lattice of flats:
// the ground set itself must be a lattice flat and the poset must be a
// geometric lattice (graded, atomic, semimodular).
func (m *LatticeMatroid[E]) IsValid() bool {
	if !m.lat.Family().Contains(m.GroundSet()) {
		return false
	}

	return m.lat.IsGeometric()
}

// ValidContext is IsValid with a call-site cancellation check; the
// geometric-lattice test itself runs to completion once started.
func (m *LatticeMatroid[E]) ValidContext(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return m.IsValid(), nil
}

// Mobius returns the Möbius function matrix of the flats lattice.
// The returned matrix is shared; callers must not modify it.
func (m *LatticeMatroid[E]) Mobius() [][]int64 { return m.lat.Mobius() }

// WhitneyNumbers returns the signed Whitney numbers of the first kind:
// entry k sums μ(bottom, x) over all flats x at poset rank k.
// Returns ErrNoBottom when the poset lacks a unique bottom element.
func (m *LatticeMatroid[E]) WhitneyNumbers() ([]int64, error) {
	bottom, ok := m.lat.Bottom()
	if !ok {
		return nil, ErrNoBottom
	}
	mu := m.lat.Mobius()
	out := make([]int64, m.lat.Height()+1)
	var h int
	for i := 0; i < m.lat.Len(); i++ {
		h, _ = m.lat.Rank(i)
		out[h] += mu[bottom][i]
	}

	return out, nil
}

// Relabel returns a new matroid over a relabeled ground set. Elements
// missing from mapping keep their label.
func (m *LatticeMatroid[E]) Relabel(mapping map[E]E) *LatticeMatroid[E] {
	nm, _ := NewLatticeMatroid(
		relabelSlice(mapping, m.GroundSet()),
		relabelSets(mapping, m.lat.Family().Sets()),
		WithName(m.name),
	)

	return nm
}

// Equal reports whether both matroids have identical ground sets and
// lattice collections; the poset, and with it every rank, is derived from
// the collection, so collection equality is matroid equality.
func (m *LatticeMatroid[E]) Equal(o *LatticeMatroid[E]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.lat.Family().Equal(o.lat.Family())
}

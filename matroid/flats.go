package matroid

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matroids/setfamily"
)

// FlatsMatroid encodes a matroid by its flats — the closure-invariant
// subsets — partitioned by rank. The rank oracle scans partitions in
// increasing rank order. Immutable after construction.
type FlatsMatroid[E constraints.Ordered] struct {
	fam    *setfamily.Family[E]
	ranks  []int         // rank keys present, ascending
	byRank map[int][]int // rank key → positions in fam
	rankOf []int         // fam position → rank key
	full   *bitset.BitSet
	rank   int // highest rank key present
	name   string
}

// NewFlatsMatroid builds the flats encoding from a ground set and a
// rank-indexed flat collection. A flat listed under several ranks is kept
// at the smallest; duplicates within a rank merge silently. Returns
// ErrRankKey on a negative rank key and ErrGroundSet on stray elements.
// Axioms are NOT checked here — call IsValid.
func NewFlatsMatroid[E constraints.Ordered](ground []E, flats map[int][][]E, opts ...Option) (*FlatsMatroid[E], error) {
	keys := make([]int, 0, len(flats))
	for r := range flats {
		if r < 0 {
			return nil, ErrRankKey
		}
		keys = append(keys, r)
	}
	slices.Sort(keys)

	var all [][]E
	for _, r := range keys {
		all = append(all, flats[r]...)
	}
	fam, err := setfamily.New(ground, all)
	if err != nil {
		return nil, err
	}

	m := &FlatsMatroid[E]{
		fam:    fam,
		byRank: make(map[int][]int, len(keys)),
		rankOf: make([]int, fam.Len()),
		name:   buildOptions(opts).name,
	}
	for i := range m.rankOf {
		m.rankOf[i] = -1
	}
	var (
		r, pos int
		ok     bool
	)
	for _, r = range keys {
		for _, sub := range flats[r] {
			if pos, ok = fam.Position(sub); ok && m.rankOf[pos] < 0 {
				m.rankOf[pos] = r
			}
		}
	}
	for pos, r = range m.rankOf {
		if _, ok = m.byRank[r]; !ok {
			m.ranks = append(m.ranks, r)
		}
		m.byRank[r] = append(m.byRank[r], pos)
	}
	slices.Sort(m.ranks)
	if len(m.ranks) > 0 {
		m.rank = m.ranks[len(m.ranks)-1]
	}
	m.full, _ = fam.ToBits(fam.Ground())

	return m, nil
}

// NewFlatsMatroidFrom builds the flats encoding from any matroid, sharing
// the stored flats when the source has them and deriving flats at every
// rank 0..FullRank from the rank oracle otherwise.
func NewFlatsMatroidFrom[E constraints.Ordered](m Matroid[E], opts ...Option) (*FlatsMatroid[E], error) {
	if len(opts) == 0 && m.Name() != "" {
		opts = []Option{WithName(m.Name())}
	}
	switch src := m.(type) {
	case *FlatsMatroid[E]:
		return NewFlatsMatroid(src.GroundSet(), src.FlatsByRank(), opts...)
	case *LatticeMatroid[E]:
		return NewFlatsMatroid(src.GroundSet(), src.flats.FlatsByRank(), opts...)
	}
	top, err := FullRank(m)
	if err != nil {
		return nil, err
	}
	byRank := make(map[int][][]E, top+1)
	var fl [][]E
	for k := 0; k <= top; k++ {
		if fl, err = DeriveFlats(m, k); err != nil {
			return nil, err
		}
		byRank[k] = fl
	}

	return NewFlatsMatroid(m.GroundSet(), byRank, opts...)
}

// GroundSet returns the sorted ground-set elements.
func (m *FlatsMatroid[E]) GroundSet() []E { return m.fam.Ground() }

// Name returns the custom display name, empty when unset.
func (m *FlatsMatroid[E]) Name() string { return m.name }

// FullRank returns the highest rank key present.
func (m *FlatsMatroid[E]) FullRank() int { return m.rank }

// Ranks returns the rank keys present, ascending.
func (m *FlatsMatroid[E]) Ranks() []int { return slices.Clone(m.ranks) }

// Flats returns the flats stored at rank k, nil when none.
func (m *FlatsMatroid[E]) Flats(k int) [][]E {
	positions, ok := m.byRank[k]
	if !ok {
		return nil
	}
	out := make([][]E, len(positions))
	for i, pos := range positions {
		out[i] = m.fam.FromBits(m.fam.Bits(pos))
	}

	return out
}

// FlatsByRank returns the whole rank-indexed collection.
func (m *FlatsMatroid[E]) FlatsByRank() map[int][][]E {
	out := make(map[int][][]E, len(m.ranks))
	for _, r := range m.ranks {
		out[r] = m.Flats(r)
	}

	return out
}

// Rank returns the smallest rank key whose partition holds a superset of
// X. When no flat covers X — possible only on invalid data missing the
// ground-set flat — the scan falls back to the matroid's own rank.
func (m *FlatsMatroid[E]) Rank(X []E) (int, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return 0, err
	}
	if pos := m.coveringFlat(x); pos >= 0 {
		return m.rankOf[pos], nil
	}

	return m.rank, nil
}

// Closure returns the minimal flat containing X, found by the same
// increasing-rank scan as Rank. Falls back to the ground set when the
// data holds no covering flat.
func (m *FlatsMatroid[E]) Closure(X []E) ([]E, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return nil, err
	}
	if pos := m.coveringFlat(x); pos >= 0 {
		return m.fam.FromBits(m.fam.Bits(pos)), nil
	}

	return m.fam.Ground(), nil
}

// IsClosed reports whether X appears verbatim in some rank partition.
func (m *FlatsMatroid[E]) IsClosed(X []E) (bool, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return false, err
	}

	return m.fam.ContainsBits(x), nil
}

// IsIndependent reports whether X is independent: its rank equals its
// cardinality.
func (m *FlatsMatroid[E]) IsIndependent(X []E) (bool, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return false, err
	}
	r := m.rank
	if pos := m.coveringFlat(x); pos >= 0 {
		r = m.rankOf[pos]
	}

	return r == int(x.Count()), nil
}

// Circuits derives the circuits from the rank oracle.
func (m *FlatsMatroid[E]) Circuits() ([][]E, error) {
	return DeriveCircuits[E](m)
}

// Relabel returns a new matroid over a relabeled ground set. Elements
// missing from mapping keep their label.
func (m *FlatsMatroid[E]) Relabel(mapping map[E]E) *FlatsMatroid[E] {
	byRank := make(map[int][][]E, len(m.ranks))
	for _, r := range m.ranks {
		byRank[r] = relabelSets(mapping, m.Flats(r))
	}
	nm, _ := NewFlatsMatroid(relabelSlice(mapping, m.fam.Ground()), byRank, WithName(m.name))

	return nm
}

// Equal reports whether both matroids have identical ground sets, ranks,
// and rank-indexed flat collections.
func (m *FlatsMatroid[E]) Equal(o *FlatsMatroid[E]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rank == o.rank && m.fam.Equal(o.fam) && slices.Equal(m.rankOf, o.rankOf)
}

// coveringFlat returns the position of the first flat (increasing rank
// scan) that is a superset of x, or -1 when none exists.
func (m *FlatsMatroid[E]) coveringFlat(x *bitset.BitSet) int {
	for _, r := range m.ranks {
		for _, pos := range m.byRank[r] {
			if m.fam.Bits(pos).IsSuperSet(x) {
				return pos
			}
		}
	}

	return -1
}

package matroid

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matroids/setfamily"
)

// CircuitsMatroid encodes a matroid by its circuits — the minimal
// dependent subsets — partitioned by size for the rank oracle's
// increasing-size scans. Immutable after construction.
type CircuitsMatroid[E constraints.Ordered] struct {
	fam    *setfamily.Family[E]
	sizes  []int         // circuit sizes present, ascending
	bySize map[int][]int // size → positions in fam (canonical order)
	full   *bitset.BitSet
	rank   int // rank of the ground set, fixed at construction
	name   string
}

// NewCircuitsMatroid builds the circuits encoding from a ground set and a
// circuit collection. Duplicate circuits merge silently; ErrGroundSet on
// stray elements. Axioms are NOT checked here — call IsValid.
func NewCircuitsMatroid[E constraints.Ordered](ground []E, circuits [][]E, opts ...Option) (*CircuitsMatroid[E], error) {
	fam, err := setfamily.New(ground, circuits)
	if err != nil {
		return nil, err
	}

	return newCircuitsFromFamily(fam, buildOptions(opts).name), nil
}

// NewCircuitsMatroidFrom builds the circuits encoding from any matroid,
// sharing the circuit collection when the source already stores one and
// deriving it from the rank oracle otherwise.
func NewCircuitsMatroidFrom[E constraints.Ordered](m Matroid[E], opts ...Option) (*CircuitsMatroid[E], error) {
	name := buildOptions(opts).name
	if name == "" {
		name = m.Name()
	}
	if src, ok := m.(*CircuitsMatroid[E]); ok {
		return newCircuitsFromFamily(src.fam, name), nil
	}
	circuits, err := DeriveCircuits(m)
	if err != nil {
		return nil, err
	}
	fam, err := setfamily.New(m.GroundSet(), circuits)
	if err != nil {
		return nil, err
	}

	return newCircuitsFromFamily(fam, name), nil
}

func newCircuitsFromFamily[E constraints.Ordered](fam *setfamily.Family[E], name string) *CircuitsMatroid[E] {
	m := &CircuitsMatroid[E]{
		fam:    fam,
		bySize: make(map[int][]int),
		name:   name,
	}
	var i, size int
	for i = 0; i < fam.Len(); i++ {
		size = int(fam.Bits(i).Count())
		if _, ok := m.bySize[size]; !ok {
			m.sizes = append(m.sizes, size)
		}
		m.bySize[size] = append(m.bySize[size], i)
	}
	slices.Sort(m.sizes)
	m.full, _ = fam.ToBits(fam.Ground())
	m.rank = int(m.maxIndepBits(m.full).Count())

	return m
}

// GroundSet returns the sorted ground-set elements.
func (m *CircuitsMatroid[E]) GroundSet() []E { return m.fam.Ground() }

// Name returns the custom display name, empty when unset.
func (m *CircuitsMatroid[E]) Name() string { return m.name }

// Circuits returns all circuits in canonical (size-ascending) order.
func (m *CircuitsMatroid[E]) Circuits() [][]E { return m.fam.Sets() }

// FullRank returns the rank of the whole ground set.
func (m *CircuitsMatroid[E]) FullRank() int { return m.rank }

// IsIndependent reports whether X contains no circuit, scanning the size
// partitions in increasing order up to |X|.
func (m *CircuitsMatroid[E]) IsIndependent(X []E) (bool, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return false, err
	}

	return m.isIndepBits(x), nil
}

// Rank returns the size of a largest independent subset of X.
func (m *CircuitsMatroid[E]) Rank(X []E) (int, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return 0, err
	}

	return int(m.maxIndepBits(x).Count()), nil
}

// MaxIndependentSubset returns a maximal independent subset of X. When X
// is dependent the element removed from each violating circuit is the
// smallest in ground-set order; any choice yields the same size (= rank
// of X), so only the size is guaranteed, not the particular subset.
func (m *CircuitsMatroid[E]) MaxIndependentSubset(X []E) ([]E, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return nil, err
	}

	return m.fam.FromBits(m.maxIndepBits(x)), nil
}

// ContainedCircuit returns the first circuit (in canonical order) that is
// a subset of X. Returns ErrNoCircuit when X is independent.
func (m *CircuitsMatroid[E]) ContainedCircuit(X []E) ([]E, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return nil, err
	}
	if c := m.containedCircuitBits(x); c != nil {
		return m.fam.FromBits(c), nil
	}

	return nil, ErrNoCircuit
}

// Closure returns the closure of X: X plus every element whose addition
// leaves the rank unchanged.
func (m *CircuitsMatroid[E]) Closure(X []E) ([]E, error) {
	x, err := m.fam.ToBits(X)
	if err != nil {
		return nil, err
	}

	return m.fam.FromBits(m.closureBits(x)), nil
}

// Flats returns all rank-k flats, derived from the rank oracle as the
// distinct closures of independent k-subsets.
func (m *CircuitsMatroid[E]) Flats(k int) ([][]E, error) {
	return DeriveFlats[E](m, k)
}

// Relabel returns a new matroid over a relabeled ground set. Elements
// missing from mapping keep their label. The result preserves ranks iff
// mapping is injective on the ground set.
func (m *CircuitsMatroid[E]) Relabel(mapping map[E]E) *CircuitsMatroid[E] {
	// Relabeled circuits always lie inside the relabeled ground set.
	nm, _ := NewCircuitsMatroid(
		relabelSlice(mapping, m.fam.Ground()),
		relabelSets(mapping, m.fam.Sets()),
		WithName(m.name),
	)

	return nm
}

// Equal reports whether both matroids have identical ground sets, ranks,
// and circuit collections (verbatim, not up to isomorphism).
func (m *CircuitsMatroid[E]) Equal(o *CircuitsMatroid[E]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rank == o.rank && m.fam.Equal(o.fam)
}

// isIndepBits scans size partitions ascending, stopping at |x|.
func (m *CircuitsMatroid[E]) isIndepBits(x *bitset.BitSet) bool {
	size := int(x.Count())
	for _, k := range m.sizes {
		if k > size {
			break
		}
		for _, pos := range m.bySize[k] {
			if x.IsSuperSet(m.fam.Bits(pos)) {
				return false
			}
		}
	}

	return true
}

// maxIndepBits greedily deletes one element from every circuit still
// contained in the working set, scanning circuits in increasing size.
// One pass suffices: the working set only shrinks, so a circuit ruled out
// never becomes contained again.
func (m *CircuitsMatroid[E]) maxIndepBits(x *bitset.BitSet) *bitset.BitSet {
	work := x.Clone()
	var (
		c     *bitset.BitSet
		first uint
	)
	for _, k := range m.sizes {
		if uint(k) > work.Count() {
			break
		}
		for _, pos := range m.bySize[k] {
			c = m.fam.Bits(pos)
			if work.IsSuperSet(c) {
				first, _ = c.NextSet(0)
				work.Clear(first)
			}
		}
	}

	return work
}

// containedCircuitBits returns the first circuit contained in x, nil when
// x is independent.
func (m *CircuitsMatroid[E]) containedCircuitBits(x *bitset.BitSet) *bitset.BitSet {
	size := int(x.Count())
	for _, k := range m.sizes {
		if k > size {
			break
		}
		for _, pos := range m.bySize[k] {
			if x.IsSuperSet(m.fam.Bits(pos)) {
				return m.fam.Bits(pos)
			}
		}
	}

	return nil
}

// closureBits returns x plus every element not raising its rank.
func (m *CircuitsMatroid[E]) closureBits(x *bitset.BitSet) *bitset.BitSet {
	r := m.maxIndepBits(x).Count()
	out := x.Clone()
	n := uint(m.fam.GroundSize())
	var (
		i uint
		y *bitset.BitSet
	)
	for i = 0; i < n; i++ {
		if x.Test(i) {
			continue
		}
		y = x.Clone()
		y.Set(i)
		if m.maxIndepBits(y).Count() == r {
			out.Set(i)
		}
	}

	return out
}

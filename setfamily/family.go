package setfamily

import (
	"encoding/binary"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Family is an immutable collection of distinct subsets over a fixed,
// sorted ground set. Subsets are stored as bitsets indexed by the position
// of each element in the sorted ground set.
//
// A Family is safe for concurrent read access: no method mutates state
// after New returns.
type Family[E constraints.Ordered] struct {
	ground []E       // sorted, duplicate-free ground set
	index  map[E]int // element → position in ground

	sets  []*bitset.BitSet // canonical order: by size, then by key
	byKey map[string]int   // canonical subset key → position in sets
}

// New builds a Family over ground containing the given subsets.
// Duplicate ground elements and duplicate subsets are merged silently.
// Returns ErrGroundSet if any subset element is outside ground.
// Complexity: O(m·n/w + m log m).
func New[E constraints.Ordered](ground []E, subsets [][]E) (*Family[E], error) {
	// 1. Normalize the ground set: sorted, duplicate-free.
	g := slices.Clone(ground)
	slices.Sort(g)
	g = slices.Compact(g)

	f := &Family[E]{
		ground: g,
		index:  make(map[E]int, len(g)),
		byKey:  make(map[string]int),
	}
	var i int
	var e E
	for i, e = range g {
		f.index[e] = i
	}

	// 2. Convert each subset to a bitset, rejecting stray elements and
	// merging duplicates.
	var (
		b   *bitset.BitSet
		err error
		k   string
		ok  bool
	)
	for _, sub := range subsets {
		if b, err = f.ToBits(sub); err != nil {
			return nil, err
		}
		k = bitsKey(b)
		if _, ok = f.byKey[k]; ok {
			continue
		}
		f.byKey[k] = -1 // position assigned after sorting
		f.sets = append(f.sets, b)
	}

	// 3. Fix a canonical in-instance order: increasing size, then key.
	slices.SortFunc(f.sets, func(a, b *bitset.BitSet) int {
		if ca, cb := a.Count(), b.Count(); ca != cb {
			if ca < cb {
				return -1
			}

			return 1
		}

		return strings.Compare(bitsKey(a), bitsKey(b))
	})
	for i, b = range f.sets {
		f.byKey[bitsKey(b)] = i
	}

	return f, nil
}

// Ground returns a copy of the sorted ground set.
func (f *Family[E]) Ground() []E { return slices.Clone(f.ground) }

// GroundSize returns the number of ground-set elements.
func (f *Family[E]) GroundSize() int { return len(f.ground) }

// Len returns the number of distinct subsets in the collection.
func (f *Family[E]) Len() int { return len(f.sets) }

// Index returns the position of e in the sorted ground set.
func (f *Family[E]) Index(e E) (int, bool) {
	i, ok := f.index[e]

	return i, ok
}

// ToBits converts a subset given as element labels into a bitset over the
// ground-set index. Returns ErrGroundSet on stray elements; duplicates in
// sub collapse onto the same bit.
func (f *Family[E]) ToBits(sub []E) (*bitset.BitSet, error) {
	b := bitset.New(uint(len(f.ground)))
	var (
		i  int
		ok bool
	)
	for _, e := range sub {
		if i, ok = f.index[e]; !ok {
			return nil, ErrGroundSet
		}
		b.Set(uint(i))
	}

	return b, nil
}

// FromBits converts a bitset back into sorted element labels.
func (f *Family[E]) FromBits(b *bitset.BitSet) []E {
	out := make([]E, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, f.ground[i])
	}

	return out
}

// Bits returns the i-th stored subset in canonical order.
// The returned bitset is shared with the Family and must not be modified.
func (f *Family[E]) Bits(i int) *bitset.BitSet { return f.sets[i] }

// Contains reports whether the exact subset appears in the collection.
func (f *Family[E]) Contains(sub []E) bool {
	b, err := f.ToBits(sub)
	if err != nil {
		return false
	}

	return f.ContainsBits(b)
}

// ContainsBits reports whether the exact bitset appears in the collection.
func (f *Family[E]) ContainsBits(b *bitset.BitSet) bool {
	_, ok := f.byKey[bitsKey(b)]

	return ok
}

// Position returns the canonical-order position of the exact subset, if
// present.
func (f *Family[E]) Position(sub []E) (int, bool) {
	b, err := f.ToBits(sub)
	if err != nil {
		return 0, false
	}

	return f.PositionBits(b)
}

// PositionBits returns the canonical-order position of the exact bitset,
// if present.
func (f *Family[E]) PositionBits(b *bitset.BitSet) (int, bool) {
	i, ok := f.byKey[bitsKey(b)]

	return i, ok
}

// Each iterates over all subsets in canonical order, converting each to
// element labels. Iteration stops early when fn returns false.
// Restartable: repeated calls on one instance yield the same sequence.
func (f *Family[E]) Each(fn func(sub []E) bool) {
	for _, b := range f.sets {
		if !fn(f.FromBits(b)) {
			return
		}
	}
}

// Sets returns all subsets as element-label slices, in canonical order.
func (f *Family[E]) Sets() [][]E {
	out := make([][]E, len(f.sets))
	for i, b := range f.sets {
		out[i] = f.FromBits(b)
	}

	return out
}

// Equal reports whether two families have identical ground sets and
// identical subset collections (verbatim, not up to isomorphism).
func (f *Family[E]) Equal(o *Family[E]) bool {
	if f == nil || o == nil {
		return f == o
	}
	if !slices.Equal(f.ground, o.ground) || len(f.sets) != len(o.sets) {
		return false
	}
	// Same sorted ground set means identical indexing, so keys compare 1:1.
	for k := range f.byKey {
		if _, ok := o.byKey[k]; !ok {
			return false
		}
	}

	return true
}

// bitsKey returns a canonical byte-string key for a bitset. All bitsets in
// one Family share the same length, so keys are directly comparable.
func bitsKey(b *bitset.BitSet) string {
	words := b.Bytes()
	var sb strings.Builder
	sb.Grow(8 * len(words))
	var buf [8]byte
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		sb.Write(buf[:])
	}

	return sb.String()
}

package lattice

import (
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/matroids/setfamily"
)

// Lattice is the inclusion poset of a subset collection. The element order
// is the family's canonical order (increasing size), which is a linear
// extension of inclusion: a proper subset always precedes its supersets.
//
// Immutable after New; safe for concurrent read access. The Möbius matrix
// is the only lazily computed field and is published atomically.
type Lattice[E constraints.Ordered] struct {
	fam *setfamily.Family[E]

	leq    [][]bool // leq[i][j]: subset i ⊆ subset j
	height []int    // longest chain length from a minimal element
	covers [][]int  // covers[i]: elements covering i
	bottom int      // index of the unique global minimum, -1 if none
	top    int      // index of the unique global maximum, -1 if none

	mobius atomic.Pointer[[][]int64]
}

// New builds the inclusion poset of the given subsets over ground.
// Duplicate subsets merge; ErrEmptyLattice if sets is empty;
// setfamily.ErrGroundSet on stray elements.
func New[E constraints.Ordered](ground []E, sets [][]E) (*Lattice[E], error) {
	fam, err := setfamily.New(ground, sets)
	if err != nil {
		return nil, err
	}

	return FromFamily(fam)
}

// FromFamily builds the inclusion poset over an existing family.
func FromFamily[E constraints.Ordered](fam *setfamily.Family[E]) (*Lattice[E], error) {
	if fam == nil {
		return nil, setfamily.ErrNilFamily
	}
	m := fam.Len()
	if m == 0 {
		return nil, ErrEmptyLattice
	}

	l := &Lattice[E]{
		fam:    fam,
		leq:    make([][]bool, m),
		height: make([]int, m),
		covers: make([][]int, m),
		bottom: -1,
		top:    -1,
	}

	// 1. Order relation. Family order sorts by size, so i ⊂ j implies i < j.
	var i, j int
	for i = 0; i < m; i++ {
		l.leq[i] = make([]bool, m)
		l.leq[i][i] = true
	}
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if fam.Bits(j).IsSuperSet(fam.Bits(i)) {
				l.leq[i][j] = true
			}
		}
	}

	// 2. Heights along the built-in linear extension.
	for j = 0; j < m; j++ {
		for i = 0; i < j; i++ {
			if l.leq[i][j] && l.height[i]+1 > l.height[j] {
				l.height[j] = l.height[i] + 1
			}
		}
	}

	// 3. Cover relations: i < j with nothing strictly between.
	var k int
	var between bool
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if !l.leq[i][j] {
				continue
			}
			between = false
			for k = i + 1; k < j && !between; k++ {
				between = l.leq[i][k] && l.leq[k][j]
			}
			if !between {
				l.covers[i] = append(l.covers[i], j)
			}
		}
	}

	// 4. Global bottom and top, when unique.
	l.bottom = 0
	for j = 1; j < m && l.bottom == 0; j++ {
		if !l.leq[0][j] {
			l.bottom = -1
		}
	}
	l.top = m - 1
	for i = 0; i < m-1 && l.top == m-1; i++ {
		if !l.leq[i][m-1] {
			l.top = -1
		}
	}

	return l, nil
}

// Family returns the underlying subset collection.
func (l *Lattice[E]) Family() *setfamily.Family[E] { return l.fam }

// Len returns the number of poset elements.
func (l *Lattice[E]) Len() int { return len(l.height) }

// Rank returns the poset height of element i: the length of the longest
// chain from a minimal element up to i. In a graded lattice this is the
// lattice rank function.
func (l *Lattice[E]) Rank(i int) (int, error) {
	if i < 0 || i >= len(l.height) {
		return 0, ErrIndexRange
	}

	return l.height[i], nil
}

// Height returns the maximum element height — the rank of the whole poset.
func (l *Lattice[E]) Height() int {
	h := 0
	for _, v := range l.height {
		if v > h {
			h = v
		}
	}

	return h
}

// Bottom returns the index of the unique global minimum, if one exists.
func (l *Lattice[E]) Bottom() (int, bool) { return l.bottom, l.bottom >= 0 }

// Top returns the index of the unique global maximum, if one exists.
func (l *Lattice[E]) Top() (int, bool) { return l.top, l.top >= 0 }

// AtRank returns the indices of all elements at the given height, ascending.
func (l *Lattice[E]) AtRank(r int) []int {
	var out []int
	for i, h := range l.height {
		if h == r {
			out = append(out, i)
		}
	}

	return out
}

// Leq reports whether element i lies below (or equals) element j.
func (l *Lattice[E]) Leq(i, j int) bool {
	if i < 0 || j < 0 || i >= len(l.height) || j >= len(l.height) {
		return false
	}

	return l.leq[i][j]
}

// Atoms returns the indices of all height-1 elements.
func (l *Lattice[E]) Atoms() []int { return l.AtRank(1) }

// Meet returns the greatest lower bound of i and j, if it exists.
// In a finite poset the meet exists iff the maximal lower bound is unique.
func (l *Lattice[E]) Meet(i, j int) (int, bool) {
	return l.bound(i, j, true)
}

// Join returns the least upper bound of i and j, if it exists.
func (l *Lattice[E]) Join(i, j int) (int, bool) {
	return l.bound(i, j, false)
}

// bound finds the unique extreme common bound: greatest lower (lower=true)
// or least upper (lower=false). Because the element order is a linear
// extension of inclusion, the only possible greatest lower bound is the
// last common lower bound in index order (dually, the first upper bound);
// it is the answer iff it dominates every other bound.
func (l *Lattice[E]) bound(i, j int, lower bool) (int, bool) {
	m := len(l.height)
	if i < 0 || j < 0 || i >= m || j >= m {
		return -1, false
	}
	var (
		bounds  []int
		k       int
		isBound bool
	)
	for k = 0; k < m; k++ {
		if lower {
			isBound = l.leq[k][i] && l.leq[k][j]
		} else {
			isBound = l.leq[i][k] && l.leq[j][k]
		}
		if isBound {
			bounds = append(bounds, k)
		}
	}
	if len(bounds) == 0 {
		return -1, false
	}
	best := bounds[0]
	if lower {
		best = bounds[len(bounds)-1]
	}
	for _, k = range bounds {
		if lower && !l.leq[k][best] || !lower && !l.leq[best][k] {
			return -1, false
		}
	}

	return best, true
}

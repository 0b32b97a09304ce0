package lattice

import (
	"time"

	"github.com/katalvlaran/matroids/logger"
)

// IsLattice reports whether the poset is a lattice: it has a global bottom
// and top, and every pair of elements has a meet and a join.
func (l *Lattice[E]) IsLattice() bool {
	if l.bottom < 0 || l.top < 0 {
		return false
	}
	m := len(l.height)
	var i, j int
	var ok bool
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if _, ok = l.Meet(i, j); !ok {
				return false
			}
			if _, ok = l.Join(i, j); !ok {
				return false
			}
		}
	}

	return true
}

// IsGraded reports whether the poset is graded: unique bottom and top, and
// every cover relation raises the height by exactly one (so all maximal
// chains share one length).
func (l *Lattice[E]) IsGraded() bool {
	if l.bottom < 0 || l.top < 0 {
		return false
	}
	for i, cs := range l.covers {
		for _, j := range cs {
			if l.height[j] != l.height[i]+1 {
				return false
			}
		}
	}

	return true
}

// IsAtomic reports whether every element is the join of the atoms below it.
// Assumes the poset is a lattice; call IsLattice first.
func (l *Lattice[E]) IsAtomic() bool {
	if l.bottom < 0 {
		return false
	}
	atoms := l.Atoms()
	m := len(l.height)
	var (
		x, a, join int
		ok         bool
	)
	for x = 0; x < m; x++ {
		if x == l.bottom {
			continue
		}
		join = l.bottom
		for _, a = range atoms {
			if !l.leq[a][x] {
				continue
			}
			if join, ok = l.Join(join, a); !ok {
				return false
			}
		}
		if join != x {
			return false
		}
	}

	return true
}

// IsSemimodular reports whether the height function satisfies the
// semimodular inequality h(x∨y) + h(x∧y) ≤ h(x) + h(y) for all pairs.
// Assumes the poset is a lattice; call IsLattice first.
func (l *Lattice[E]) IsSemimodular() bool {
	m := len(l.height)
	var (
		i, j, mt, jn int
		ok           bool
	)
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if mt, ok = l.Meet(i, j); !ok {
				return false
			}
			if jn, ok = l.Join(i, j); !ok {
				return false
			}
			if l.height[jn]+l.height[mt] > l.height[i]+l.height[j] {
				return false
			}
		}
	}

	return true
}

// IsGeometric reports whether the poset is a geometric lattice: a graded,
// atomic, semimodular lattice. This is the lattice-theoretic
// characterization of a matroid's lattice of flats.
func (l *Lattice[E]) IsGeometric() bool {
	start := time.Now()
	ok := l.IsLattice() && l.IsGraded() && l.IsAtomic() && l.IsSemimodular()
	log := logger.Logger()
	log.Debug().
		Int("elements", l.Len()).
		Bool("geometric", ok).
		Dur("took", time.Since(start)).
		Msg("lattice: geometric check")

	return ok
}

package matroid

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matroids/setfamily"
)

// Matroid is the capability set shared by every encoding: a fixed ground
// set with a rank oracle, an independence test, and an axiom check.
// All implementations are immutable after construction and safe for
// concurrent read access.
type Matroid[E constraints.Ordered] interface {
	// GroundSet returns the sorted ground-set elements.
	GroundSet() []E

	// Rank returns the size of a largest independent subset of X.
	// Returns ErrGroundSet when X contains stray elements.
	Rank(X []E) (int, error)

	// IsIndependent reports whether X contains no circuit.
	IsIndependent(X []E) (bool, error)

	// IsValid reports whether the defining data satisfies the matroid
	// axioms of this encoding. Validity is a data property: it never
	// raises, and construction does not pre-check it.
	IsValid() bool

	// Name returns the custom display name, empty when unset.
	Name() string
}

// FullRank returns the rank of the whole ground set.
func FullRank[E constraints.Ordered](m Matroid[E]) (int, error) {
	return m.Rank(m.GroundSet())
}

// Closure returns the closure of X in m: X together with every element
// whose addition does not raise the rank. The result is sorted.
func Closure[E constraints.Ordered](m Matroid[E], X []E) ([]E, error) {
	r, err := m.Rank(X)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(X)
	slices.Sort(out)
	out = slices.Compact(out)
	var (
		rx  int
		pos int
	)
	for _, e := range m.GroundSet() {
		if pos, _ = slices.BinarySearch(out, e); pos < len(out) && out[pos] == e {
			continue
		}
		if rx, err = m.Rank(append(slices.Clone(out), e)); err != nil {
			return nil, err
		}
		if rx == r {
			out = slices.Insert(out, pos, e)
		}
	}

	return out, nil
}

// DeriveCircuits enumerates the circuits of m — its minimal dependent
// subsets — by scanning subsets in increasing size and keeping each
// dependent set that contains no previously found circuit.
// Exponential in the ground-set size; intended for small matroids or for
// seeding one encoding from another.
func DeriveCircuits[E constraints.Ordered](m Matroid[E]) ([][]E, error) {
	ground := m.GroundSet()
	n := len(ground)
	var (
		found    [][]int
		circuits [][]E
		indep    bool
		err      error
	)
	for size := 1; size <= n; size++ {
		err = combinations(n, size, func(idx []int) error {
			for _, c := range found {
				if sortedSubset(c, idx) {
					return nil
				}
			}
			if indep, err = m.IsIndependent(pick(ground, idx)); err != nil {
				return err
			}
			if !indep {
				found = append(found, slices.Clone(idx))
				circuits = append(circuits, pick(ground, idx))
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return circuits, nil
}

// DeriveFlats enumerates the rank-k flats of m as the distinct closures of
// its independent k-subsets.
func DeriveFlats[E constraints.Ordered](m Matroid[E], k int) ([][]E, error) {
	ground := m.GroundSet()
	n := len(ground)
	if k < 0 || k > n {
		return nil, nil
	}
	var (
		flats [][]E
		cl    []E
		indep bool
		err   error
	)
	err = combinations(n, k, func(idx []int) error {
		if indep, err = m.IsIndependent(pick(ground, idx)); err != nil {
			return err
		}
		if !indep {
			return nil
		}
		if cl, err = Closure(m, pick(ground, idx)); err != nil {
			return err
		}
		flats = append(flats, cl)

		return nil
	})
	if err != nil {
		return nil, err
	}
	// Dedupe through the canonical container.
	fam, err := setfamily.New(ground, flats)
	if err != nil {
		return nil, err
	}

	return fam.Sets(), nil
}

// combinations invokes fn with every sorted k-element index subset of
// {0, …, n-1}. The slice passed to fn is reused between calls.
func combinations(n, k int, fn func(idx []int) error) error {
	if k == 0 {
		return fn(nil)
	}
	if k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// sortedSubset reports whether sorted index slice a is a subset of sorted b.
func sortedSubset(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] > b[j]:
			j++
		default:
			return false
		}
	}

	return i == len(a)
}

// pick materializes ground elements at the given indices.
func pick[E constraints.Ordered](ground []E, idx []int) []E {
	out := make([]E, len(idx))
	for i, j := range idx {
		out[i] = ground[j]
	}

	return out
}

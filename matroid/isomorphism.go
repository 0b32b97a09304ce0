package matroid

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/matroids/setfamily"
)

// IsIsomorphic reports whether two matroids are isomorphic: some
// ground-set bijection maps one's defining-set collection exactly onto
// the other's.
func IsIsomorphic[E constraints.Ordered](a, b Matroid[E]) bool {
	_, ok := Isomorphism(a, b)

	return ok
}

// Isomorphism searches for a witnessing ground-set bijection between two
// matroids and returns it with true on success. The defining collection
// determines the matroid up to relabeling, so the search runs on the
// complete collections: circuits against circuits when both encodings
// store them, flats across all ranks when both are flats-based, and
// derived circuits otherwise. When several bijections exist, which one is
// returned is unspecified.
func Isomorphism[E constraints.Ordered](a, b Matroid[E]) (map[E]E, bool) {
	fa, fb, err := definingFamilies(a, b)
	if err != nil {
		return nil, false
	}

	return fa.IsomorphismTo(fb)
}

// definingFamilies picks comparable defining-set collections for a pair
// of matroids.
func definingFamilies[E constraints.Ordered](a, b Matroid[E]) (*setfamily.Family[E], *setfamily.Family[E], error) {
	if ca, aok := a.(*CircuitsMatroid[E]); aok {
		if cb, bok := b.(*CircuitsMatroid[E]); bok {
			return ca.fam, cb.fam, nil
		}
	}
	fa, aok := flatsFamily(a)
	fb, bok := flatsFamily(b)
	if aok && bok {
		return fa, fb, nil
	}

	// Mixed or foreign encodings: fall back to circuits, deriving them
	// from the rank oracle where not stored.
	ca, err := circuitsFamily(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := circuitsFamily(b)
	if err != nil {
		return nil, nil, err
	}

	return ca, cb, nil
}

// flatsFamily returns the complete flat collection of flats-backed
// encodings.
func flatsFamily[E constraints.Ordered](m Matroid[E]) (*setfamily.Family[E], bool) {
	switch src := m.(type) {
	case *FlatsMatroid[E]:
		return src.fam, true
	case *LatticeMatroid[E]:
		return src.flats.fam, true
	default:
		return nil, false
	}
}

// circuitsFamily returns the circuit collection, stored or derived.
func circuitsFamily[E constraints.Ordered](m Matroid[E]) (*setfamily.Family[E], error) {
	if src, ok := m.(*CircuitsMatroid[E]); ok {
		return src.fam, nil
	}
	circuits, err := DeriveCircuits(m)
	if err != nil {
		return nil, err
	}

	return setfamily.New(m.GroundSet(), circuits)
}

// Package lattice builds the inclusion poset of a subset collection and
// answers the order-theoretic questions the matroid encodings need.
//
// What:
//
//   - Lattice: a setfamily.Family ordered by inclusion, with the poset
//     height of every element, cover relations, bottom/top detection,
//     pairwise meets and joins, and the Möbius function matrix.
//   - IsLattice / IsGraded / IsAtomic / IsSemimodular / IsGeometric:
//     the ladder of checks characterizing a matroid's lattice of flats —
//     a geometric lattice is graded, generated by its atoms, and satisfies
//     the semimodular rank inequality.
//   - Mobius: μ(x, y) for all comparable pairs, computed once on first use
//     and atomically published, so concurrent readers never recompute.
//
// Why:
//   - The lattice-of-flats matroid encoding keys its flats by the poset's
//     own rank function and validates against the geometric-lattice axioms;
//     Whitney numbers and characteristic-polynomial style invariants come
//     straight from the Möbius matrix.
//
// Complexity (m = number of subsets, n = ground size, w = word width):
//
//   - New:            Time O(m²·n/w), Memory O(m²)
//   - Meet/Join:      Time O(m²)
//   - IsGeometric:    Time O(m³) worst case
//   - Mobius:         Time O(m³) once, then O(1)
//
// Errors:
//
//   - ErrEmptyLattice   no subsets supplied
//   - setfamily.ErrGroundSet   subset element outside the ground set
package lattice

// Package setfamily implements the canonical container for a collection of
// subsets over a fixed, totally ordered ground set, and the isomorphism
// search between two such collections.
//
// What:
//
//   - Family: an immutable, duplicate-free collection of subsets of a fixed
//     ground set. Subsets are stored as dense bitsets over the sorted
//     ground-set index, so subset/superset tests, unions and intersections
//     are word-parallel.
//   - Contains / Each / Sets: verbatim membership and stable (per instance)
//     iteration over the collection.
//   - IsomorphismTo: search for a ground-set bijection f with
//     {f(S) : S ∈ self} == other, via explicit stack-based backtracking.
//     Candidate assignments are pruned by a per-element signature — the
//     sorted multiset of sizes of the subsets containing the element —
//     which any isomorphism must preserve.
//
// Why:
//   - Matroid encodings (circuits, flats, lattices of flats) are exactly
//     such subset collections; rank oracles, axiom validators, and the
//     isomorphism engine all reduce to operations on this container.
//
// Complexity:
//
//   - New:            Time O(m·n/w + m log m), Memory O(m·n/w)
//     (m = subsets, n = ground size, w = word width)
//   - Contains:       Time O(n/w)
//   - IsomorphismTo:  exponential worst case; signature pruning makes the
//     common (rigid or near-rigid) case near-linear in n
//
// Errors:
//
//   - ErrGroundSet   subset element outside the declared ground set
//   - ErrNilFamily   nil receiver or argument where a Family is required
package setfamily

// Package matroid implements the canonical set-based encodings of a
// matroid — circuits, rank-indexed flats, and the lattice of flats —
// together with their rank oracles, axiom validators, relabeling, state
// export, and isomorphism testing.
//
// What:
//
//   - CircuitsMatroid: encoding by minimal dependent sets, partitioned by
//     size. Oracle: IsIndependent, Rank, MaxIndependentSubset,
//     ContainedCircuit, Closure.
//   - FlatsMatroid: encoding by closure-invariant sets, partitioned by
//     rank. Oracle: Rank, Closure, IsClosed, IsIndependent.
//   - LatticeMatroid: encoding by the inclusion poset of the flats; the
//     poset's own rank function keys the partitions. Adds Mobius and
//     WhitneyNumbers.
//   - IsValid / ValidContext: per-encoding axiom validation. Validity is a
//     query on the data, never an exception; construction does not check
//     axioms. ValidContext accepts a context for call-site cancellation;
//     independent pair checks run in parallel.
//   - Isomorphism / IsIsomorphic: ground-set bijections between two
//     matroids, searched over the complete defining-set collections.
//   - State: the export/import boundary, with deterministic CBOR
//     WriteTo/ReadFrom.
//
// Why:
//   - One matroid, many defining data sets: each façade answers the same
//     rank queries from different raw data, and all encodings must agree
//     on every subset's rank. Cross-encoding constructors
//     (NewCircuitsMatroidFrom, NewFlatsMatroidFrom, NewLatticeMatroidFrom)
//     move between encodings through the rank oracle.
//
// All façades are immutable after construction: Relabel and the From
// constructors always produce new instances. Two matroids are Equal iff
// their ground sets, ranks, and defining-set collections coincide —
// isomorphic is weaker than equal.
//
// Complexity (n = ground size, m = defining sets):
//
//   - Rank/IsIndependent:  Time O(m·n/w) per query
//   - IsValid:             Time O(m²·n²/w) worst case, parallel over pairs
//   - Isomorphism:         exponential worst case, signature-pruned
//   - DeriveCircuits/Flats: exponential in n; for small or seeding use
//
// Errors:
//
//   - ErrGroundSet   defining-set or query element outside the ground set
//   - ErrRankKey     negative rank key in a flats collection
//   - ErrNoCircuit   ContainedCircuit on an independent set
//   - ErrNoBottom    Möbius invariants on a bottomless poset
//   - ErrStateKind   FromState on an unknown encoding kind
package matroid

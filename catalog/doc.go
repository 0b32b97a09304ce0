// Package catalog provides named matroids with verified defining data,
// ready for tests, examples, and cross-encoding experiments.
//
// What:
//
//   - Uniform(r, n): the uniform matroid U(r, n) on ground set 0..n-1;
//     every (r+1)-subset is a circuit. Free(n) = Uniform(n, n).
//   - U24(): U(2, 4) on 'a'..'d' — the smallest non-graphic matroid.
//   - K4(): the cycle matroid of the complete graph on four vertices,
//     circuits encoding on 'a'..'f'.
//   - Fano(), NonFano(): the Fano plane PG(2, 2) and its relaxation,
//     flats encodings on 'a'..'g'.
//   - FanoLattice(): the Fano plane as a lattice-of-flats encoding.
//
// Why:
//   - Matroid algorithms need known-good (and known-bad) fixtures; these
//     are the standard small matroids of the literature, entered by their
//     defining-set collections rather than derived from matrices or
//     graphs.
//
// Errors:
//
//   - ErrParams   negative rank or ground-set size
package catalog

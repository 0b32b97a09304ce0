// Package matroids is an in-memory engine for representing, querying, and
// verifying matroids — finite ground sets with an independence structure
// obeying the exchange axioms.
//
// 🚀 What is matroids?
//
//	A library that brings together the canonical set-based encodings of a
//	matroid and the exact algorithms they need:
//		• Set families: canonical subset collections + isomorphism search
//		• Circuits encoding: independence, rank, maximal independent subsets
//		• Flats encoding: rank, closure, closed-set lookup
//		• Lattice encoding: geometric-lattice checks, Möbius function
//		• Axiom validators: circuit, flat, and lattice matroid axioms
//		• Isomorphism: ground-set bijections with certificates
//		• Catalog: Uniform, Fano, NonFano, M(K4) and friends
//
// ✨ Why choose matroids?
//
//   - Exact – every algorithm works on the defining-set collections directly
//   - Immutable – façades never mutate after construction; relabel copies
//   - Verifiable – isValid is a query, never an exception
//   - Extensible – any object with a rank oracle can seed a new encoding
//
// Under the hood, everything is organized under five subpackages:
//
//	setfamily/ — ground sets, subset collections, isomorphism backtracking
//	lattice/   — inclusion posets: rank, joins/meets, geometric checks, Möbius
//	matroid/   — CircuitsMatroid, FlatsMatroid, LatticeMatroid façades
//	catalog/   — named matroids with verified defining data
//	logger/    — shared zerolog-based debug logging
//
// Quick ASCII example (the Fano plane, seven points and seven lines):
//
//	      a
//	     /|\
//	    b–g–c     every line is a rank-2 flat,
//	   / \|/ \    every point a rank-1 flat.
//	  d———e———f
//
//	go get github.com/katalvlaran/matroids
package matroids

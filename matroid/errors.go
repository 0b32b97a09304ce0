package matroid

import (
	"errors"

	"github.com/katalvlaran/matroids/setfamily"
)

// ErrGroundSet indicates a defining-set or query element outside the
// declared ground set. Aliased from setfamily so callers can match either.
var ErrGroundSet = setfamily.ErrGroundSet

var (
	// ErrNoCircuit indicates ContainedCircuit was invoked on an independent
	// set — a contract violation by the caller, not a data-validity issue.
	ErrNoCircuit = errors.New("matroid: no circuit contained in independent set")

	// ErrNoBottom indicates a lattice encoding whose poset has no unique
	// bottom element, so Möbius-based invariants are undefined.
	ErrNoBottom = errors.New("matroid: flats lattice has no unique bottom element")

	// ErrRankKey indicates a negative rank key in a rank-indexed flat
	// collection.
	ErrRankKey = errors.New("matroid: negative rank key")

	// ErrStateKind indicates an exported State with an unknown encoding kind.
	ErrStateKind = errors.New("matroid: unknown state kind")
)

package lattice

import "errors"

var (
	// ErrEmptyLattice indicates that no subsets were supplied; an inclusion
	// poset needs at least one element.
	ErrEmptyLattice = errors.New("lattice: empty subset collection")

	// ErrIndexRange indicates a poset element index outside [0, Len).
	ErrIndexRange = errors.New("lattice: element index out of range")
)

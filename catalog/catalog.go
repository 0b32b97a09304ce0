package catalog

import (
	"fmt"

	"github.com/katalvlaran/matroids/matroid"
)

// Uniform returns the uniform matroid U(r, n) on ground set {0, …, n-1}:
// every subset of size at most r is independent, so the circuits are
// exactly the (r+1)-subsets. For r ≥ n the matroid is free and has no
// circuits. Returns ErrParams when r or n is negative.
func Uniform(r, n int) (*matroid.CircuitsMatroid[int], error) {
	if r < 0 || n < 0 {
		return nil, ErrParams
	}
	ground := make([]int, n)
	for i := range ground {
		ground[i] = i
	}
	var circuits [][]int
	if r < n {
		circuits = subsetsOfSize(ground, r+1)
	}

	return matroid.NewCircuitsMatroid(ground, circuits,
		matroid.WithName(fmt.Sprintf("U(%d, %d)", r, n)))
}

// Free returns the free matroid on n elements: everything is independent.
func Free(n int) (*matroid.CircuitsMatroid[int], error) {
	m, err := Uniform(n, n)
	if err != nil {
		return nil, err
	}

	return matroid.NewCircuitsMatroidFrom[int](m, matroid.WithName(fmt.Sprintf("Free(%d)", n)))
}

// U24 returns U(2, 4) on 'a'..'d': the four-point line, the smallest
// matroid that is neither graphic nor cographic.
func U24() *matroid.CircuitsMatroid[string] {
	ground := []string{"a", "b", "c", "d"}
	m, _ := matroid.NewCircuitsMatroid(ground, subsetsOfSize(ground, 3),
		matroid.WithName("U(2, 4)"))

	return m
}

// K4 returns the cycle matroid M(K4) on 'a'..'f', edges labeled
// a=12, b=13, c=14, d=23, e=24, f=34: the four triangles and three
// Hamiltonian cycles of K4 are its circuits.
func K4() *matroid.CircuitsMatroid[string] {
	m, _ := matroid.NewCircuitsMatroid(
		[]string{"a", "b", "c", "d", "e", "f"},
		[][]string{
			{"a", "b", "d"},
			{"a", "c", "e"},
			{"b", "c", "f"},
			{"d", "e", "f"},
			{"a", "c", "d", "f"},
			{"a", "b", "e", "f"},
			{"b", "c", "d", "e"},
		},
		matroid.WithName("M(K4)"),
	)

	return m
}

// fanoLines are the seven lines of PG(2, 2) over points 'a'..'g'.
var fanoLines = [][]string{
	{"a", "b", "c"},
	{"a", "d", "e"},
	{"a", "f", "g"},
	{"b", "d", "f"},
	{"b", "e", "g"},
	{"c", "d", "g"},
	{"c", "e", "f"},
}

var fanoGround = []string{"a", "b", "c", "d", "e", "f", "g"}

// Fano returns the Fano plane F7 on 'a'..'g' as a flats encoding:
// the empty set, the seven points, the seven lines, and the plane.
func Fano() *matroid.FlatsMatroid[string] {
	m, _ := matroid.NewFlatsMatroid(fanoGround, map[int][][]string{
		0: {{}},
		1: singletons(fanoGround),
		2: fanoLines,
		3: {fanoGround},
	}, matroid.WithName("Fano"))

	return m
}

// NonFano returns the non-Fano matroid F7⁻ on 'a'..'g': the Fano plane
// with the line {c, e, f} relaxed, so its three point pairs become
// rank-2 flats of their own.
func NonFano() *matroid.FlatsMatroid[string] {
	lines := [][]string{
		{"a", "b", "c"},
		{"a", "d", "e"},
		{"a", "f", "g"},
		{"b", "d", "f"},
		{"b", "e", "g"},
		{"c", "d", "g"},
		{"c", "e"},
		{"c", "f"},
		{"e", "f"},
	}
	m, _ := matroid.NewFlatsMatroid(fanoGround, map[int][][]string{
		0: {{}},
		1: singletons(fanoGround),
		2: lines,
		3: {fanoGround},
	}, matroid.WithName("NonFano"))

	return m
}

// FanoLattice returns the Fano plane as a lattice-of-flats encoding: the
// same twenty flats, ordered by inclusion.
func FanoLattice() *matroid.LatticeMatroid[string] {
	sets := [][]string{{}}
	sets = append(sets, singletons(fanoGround)...)
	sets = append(sets, fanoLines...)
	sets = append(sets, fanoGround)
	m, _ := matroid.NewLatticeMatroid(fanoGround, sets, matroid.WithName("Fano"))

	return m
}

// singletons returns one single-element subset per ground element.
func singletons(ground []string) [][]string {
	out := make([][]string, len(ground))
	for i, e := range ground {
		out[i] = []string{e}
	}

	return out
}

// subsetsOfSize enumerates all k-subsets of ground.
func subsetsOfSize[E comparable](ground []E, k int) [][]E {
	if k < 0 || k > len(ground) {
		return nil
	}
	var out [][]E
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	n := len(ground)
	for {
		sub := make([]E, k)
		for i, j := range idx {
			sub[i] = ground[j]
		}
		out = append(out, sub)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

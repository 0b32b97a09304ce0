package matroid

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matroids/logger"
)

// errHalt short-circuits the validation workers on the first violation.
// Never returned to callers.
var errHalt = errors.New("matroid: axiom violated")

// IsValid reports whether the circuit collection satisfies the circuit
// axioms: no empty circuit, no circuit strictly inside another, and the
// elimination axiom for every pair with a common element.
func (m *CircuitsMatroid[E]) IsValid() bool {
	ok, _ := m.ValidContext(context.Background())

	return ok
}

// ValidContext is IsValid with call-site cancellation. The boolean is
// meaningful only when the returned error is nil; on cancellation the
// context's error is returned. Independent circuit pairs are checked in
// parallel and the scan short-circuits on the first violation. Which
// violation stops the scan first is unspecified.
func (m *CircuitsMatroid[E]) ValidContext(ctx context.Context) (bool, error) {
	start := time.Now()
	// Axiom 1: no empty circuit.
	if _, ok := m.bySize[0]; ok {
		return false, nil
	}

	// Axioms 2 and 3 over all pairs, fanned out by first index. Canonical
	// order sorts by size, so |C_j| ≥ |C_i| whenever j > i.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	total := m.fam.Len()
	for i := 0; i < total; i++ {
		i := i
		g.Go(func() error {
			c1 := m.fam.Bits(i)
			var (
				c2, inter, d *bitset.BitSet
				e            uint
				ok           bool
			)
			for j := i + 1; j < total; j++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				c2 = m.fam.Bits(j)
				// Axiom 2: distinct circuits are incomparable.
				if c2.IsSuperSet(c1) {
					return errHalt
				}
				// Axiom 3: (C1 ∪ C2) − {e} stays dependent for every
				// common element e.
				inter = c1.Intersection(c2)
				for e, ok = inter.NextSet(0); ok; e, ok = inter.NextSet(e + 1) {
					d = c1.Union(c2)
					d.Clear(e)
					if m.isIndepBits(d) {
						return errHalt
					}
				}
			}

			return nil
		})
	}

	valid, err := waitValid(g)
	log := logger.Logger()
	log.Debug().
		Int("circuits", total).
		Bool("valid", valid).
		Dur("took", time.Since(start)).
		Msg("matroid: circuit axioms checked")

	return valid, err
}

// IsValid reports whether the rank-indexed flat collection satisfies the
// flat axioms: the ground set is a flat, every F ∪ {e} is covered by
// exactly one flat one rank up, and every pairwise intersection is again
// a flat at rank no higher than either operand.
func (m *FlatsMatroid[E]) IsValid() bool {
	ok, _ := m.ValidContext(context.Background())

	return ok
}

// ValidContext is IsValid with call-site cancellation; see
// CircuitsMatroid.ValidContext for the contract.
func (m *FlatsMatroid[E]) ValidContext(ctx context.Context) (bool, error) {
	start := time.Now()
	// Axiom 1: the ground set itself must appear as a flat.
	if !m.fam.ContainsBits(m.full) {
		return false, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	total := m.fam.Len()
	n := uint(m.fam.GroundSize())
	for i := 0; i < total; i++ {
		i := i
		g.Go(func() error {
			f := m.fam.Bits(i)
			r := m.rankOf[i]
			var (
				other, target, inter *bitset.BitSet
				e                    uint
				count, j, pos        int
				ok                   bool
			)
			// Axiom 2: F ∪ {e} has exactly one cover at rank r+1.
			for e = 0; e < n; e++ {
				if f.Test(e) {
					continue
				}
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				target = f.Clone()
				target.Set(e)
				count = 0
				for _, pos = range m.byRank[r+1] {
					if m.fam.Bits(pos).IsSuperSet(target) {
						count++
					}
				}
				if count != 1 {
					return errHalt
				}
			}
			// Axiom 3: intersections stay flats, at rank ≤ min of the pair.
			for j = i + 1; j < total; j++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				other = m.fam.Bits(j)
				inter = f.Intersection(other)
				if pos, ok = m.fam.PositionBits(inter); !ok {
					return errHalt
				}
				if m.rankOf[pos] > r || m.rankOf[pos] > m.rankOf[j] {
					return errHalt
				}
			}

			return nil
		})
	}

	valid, err := waitValid(g)
	log := logger.Logger()
	log.Debug().
		Int("flats", total).
		Bool("valid", valid).
		Dur("took", time.Since(start)).
		Msg("matroid: flat axioms checked")

	return valid, err
}

// waitValid folds the worker outcome into the (valid, error) contract:
// errHalt means a violation, anything else is a cancellation to surface.
func waitValid(g *errgroup.Group) (bool, error) {
	err := g.Wait()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errHalt):
		return false, nil
	default:
		return false, err
	}
}

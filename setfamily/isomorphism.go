package setfamily

import (
	"strconv"
	"strings"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/matroids/logger"
)

// isoState carries the mutable state of one backtracking search.
type isoState struct {
	assign []int // self element index → other element index, -1 if unset
	used   []bool
	order  []int   // self element indices, most constrained first
	cands  [][]int // per ordered position: admissible other indices
}

// frame is one level of the explicit backtracking stack: position in the
// assignment order and the next candidate to try at that position.
type frame struct {
	pos  int
	next int
}

// IsomorphismTo searches for a ground-set bijection f such that applying f
// elementwise maps this collection exactly onto other's collection.
// Returns the first bijection found; when several exist, which one is
// returned is unspecified. The boolean is false when no bijection exists.
//
// The search assigns elements one at a time, most constrained first, where
// a candidate pairing is admissible only when both elements share the same
// signature (sorted multiset of sizes of subsets containing them). A full
// assignment is accepted only after verifying every mapped subset verbatim.
func (f *Family[E]) IsomorphismTo(o *Family[E]) (map[E]E, bool) {
	if f == nil || o == nil {
		return nil, false
	}
	// 1. Cheap global invariants first.
	n := len(f.ground)
	if n != len(o.ground) || len(f.sets) != len(o.sets) {
		return nil, false
	}
	if !slices.Equal(sizeProfile(f.sets), sizeProfile(o.sets)) {
		return nil, false
	}

	// 2. Per-element signatures; candidates must match signatures exactly.
	sigF := signatures(f.sets, n)
	sigO := signatures(o.sets, n)
	bySig := make(map[string][]int, n)
	var i int
	for i = 0; i < n; i++ {
		bySig[sigO[i]] = append(bySig[sigO[i]], i)
	}

	st := &isoState{
		assign: make([]int, n),
		used:   make([]bool, n),
		order:  make([]int, n),
		cands:  make([][]int, n),
	}
	for i = 0; i < n; i++ {
		st.assign[i] = -1
		st.order[i] = i
	}
	// Most constrained element first: fewest same-signature partners.
	slices.SortFunc(st.order, func(a, b int) int {
		if la, lb := len(bySig[sigF[a]]), len(bySig[sigF[b]]); la != lb {
			if la < lb {
				return -1
			}

			return 1
		}
		if a < b {
			return -1
		}

		return 1
	})
	for i = 0; i < n; i++ {
		c := bySig[sigF[st.order[i]]]
		if len(c) == 0 {
			return nil, false
		}
		st.cands[i] = c
	}

	// 3. Explicit stack-based backtracking over the ordered assignment.
	start := time.Now()
	var backtracks uint64
	stack := make([]frame, 1, n+1)
	stack[0] = frame{pos: 0, next: 0}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.pos == n {
			// Full assignment: verify the mapped collection verbatim.
			if f.verify(o, st.assign) {
				log := logger.Logger()
				log.Debug().
					Int("ground", n).
					Uint64("backtracks", backtracks).
					Dur("took", time.Since(start)).
					Msg("setfamily: isomorphism found")

				return f.witness(o, st.assign), true
			}
			backtracks++
			stack = stack[:len(stack)-1]
			continue
		}

		self := st.order[top.pos]
		// Undo the previous trial assignment at this level, if any.
		if st.assign[self] >= 0 {
			st.used[st.assign[self]] = false
			st.assign[self] = -1
		}

		advanced := false
		for top.next < len(st.cands[top.pos]) {
			cand := st.cands[top.pos][top.next]
			top.next++
			if st.used[cand] {
				continue
			}
			st.assign[self] = cand
			st.used[cand] = true
			stack = append(stack, frame{pos: top.pos + 1, next: 0})
			advanced = true

			break
		}
		if !advanced {
			backtracks++
			stack = stack[:len(stack)-1]
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("ground", n).
		Uint64("backtracks", backtracks).
		Dur("took", time.Since(start)).
		Msg("setfamily: no isomorphism")

	return nil, false
}

// verify checks that relabeling every subset through assign lands exactly
// in o's collection.
func (f *Family[E]) verify(o *Family[E], assign []int) bool {
	n := uint(len(f.ground))
	var (
		b      *bitset.BitSet
		mapped *bitset.BitSet
		i      uint
		ok     bool
	)
	for _, b = range f.sets {
		mapped = bitset.New(n)
		for i, ok = b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			mapped.Set(uint(assign[i]))
		}
		if !o.ContainsBits(mapped) {
			return false
		}
	}

	return true
}

// witness converts an index assignment into an element-label bijection.
func (f *Family[E]) witness(o *Family[E], assign []int) map[E]E {
	m := make(map[E]E, len(f.ground))
	for i, j := range assign {
		m[f.ground[i]] = o.ground[j]
	}

	return m
}

// signatures computes, per ground-set position, the sorted multiset of
// sizes of the subsets containing that position, encoded as a string.
func signatures(sets []*bitset.BitSet, n int) []string {
	sizes := make([][]int, n)
	var (
		b  *bitset.BitSet
		c  int
		i  uint
		ok bool
	)
	for _, b = range sets {
		c = int(b.Count())
		for i, ok = b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			sizes[i] = append(sizes[i], c)
		}
	}
	out := make([]string, n)
	var sb strings.Builder
	for j, s := range sizes {
		slices.Sort(s)
		sb.Reset()
		for _, c = range s {
			sb.WriteString(strconv.Itoa(c))
			sb.WriteByte(',')
		}
		out[j] = sb.String()
	}

	return out
}

// sizeProfile returns the sorted multiset of subset sizes.
func sizeProfile(sets []*bitset.BitSet) []int {
	out := make([]int, len(sets))
	for i, b := range sets {
		out[i] = int(b.Count())
	}
	slices.Sort(out)

	return out
}

package lattice

// Mobius returns the Möbius function matrix of the poset:
// entry [i][j] is μ(i, j) when i ≤ j and 0 otherwise.
//
// The matrix is computed on first use and atomically published, so
// concurrent callers may race on the first computation but always observe
// a complete matrix. The returned matrix is shared; callers must not
// modify it.
func (l *Lattice[E]) Mobius() [][]int64 {
	if p := l.mobius.Load(); p != nil {
		return *p
	}
	mu := l.computeMobius()
	l.mobius.CompareAndSwap(nil, &mu)

	return *l.mobius.Load()
}

// computeMobius evaluates μ by the defining recursion
// μ(i, i) = 1 and μ(i, j) = −Σ_{i ≤ k < j} μ(i, k), walking j upward along
// the built-in linear extension so every μ(i, k) is ready when needed.
func (l *Lattice[E]) computeMobius() [][]int64 {
	m := len(l.height)
	mu := make([][]int64, m)
	var i, j, k int
	var sum int64
	for i = 0; i < m; i++ {
		mu[i] = make([]int64, m)
		mu[i][i] = 1
		for j = i + 1; j < m; j++ {
			if !l.leq[i][j] {
				continue
			}
			sum = 0
			for k = i; k < j; k++ {
				if l.leq[i][k] && l.leq[k][j] {
					sum += mu[i][k]
				}
			}
			mu[i][j] = -sum
		}
	}

	return mu
}

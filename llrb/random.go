package llrb

// Intner is the random source consumed by Random. *math/rand.Rand
// satisfies this interface, tests can supply deterministic sources.
type Intner interface {
	Intn(n int) int
}

// Random return a uniformly random entry from the index, ok is false
// when the index is empty. Uniformity comes from reservoir sampling
// over a single structural walk: the i-th visited node replaces the
// candidate with probability 1/i.
func (llrb *Llrb[K, V]) Random(rnd Intner) (key K, value V, ok bool) {
	llrb.n_lookups++

	var pick *node[K, V]
	visited := 0

	var visit func(nd *node[K, V])
	visit = func(nd *node[K, V]) {
		if nd == nil {
			return
		}
		visited++
		if rnd.Intn(visited) == 0 {
			pick = nd
		}
		visit(nd.left)
		visit(nd.right)
	}
	visit(llrb.root)

	if pick == nil {
		return key, value, false
	}
	return pick.key, pick.value, true
}

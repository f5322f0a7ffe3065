package sort

// Small sorting networks used for pivot selection.

func (e *engine[T, K]) swap(data []T, a, b int) {
	data[a], data[b] = data[b], data[a]
}

// cas orders data[a] and data[b].
func (e *engine[T, K]) cas(data []T, a, b int) {
	if e.key(data[a]) > e.key(data[b]) {
		data[a], data[b] = data[b], data[a]
	}
}

func (e *engine[T, K]) sort3(data []T, a, b, c int) {
	e.cas(data, a, b)
	e.cas(data, b, c)
	e.cas(data, a, b)
}

// sort4 is the optimal five comparator network for four positions.
func (e *engine[T, K]) sort4(data []T, a, b, c, d int) {
	e.cas(data, a, b)
	e.cas(data, c, d)
	e.cas(data, a, c)
	e.cas(data, b, d)
	e.cas(data, b, c)
}

// transpositionSort sorts keys with an odd-even transposition network:
// len(keys) rounds alternating between even and odd adjacent pairs. The
// comparator sequence is fixed by the length alone.
func transpositionSort[K orderKey](keys []K) {
	n := len(keys)
	for round := range n {
		for i := round & 1; i+1 < n; i += 2 {
			if keys[i] > keys[i+1] {
				keys[i], keys[i+1] = keys[i+1], keys[i]
			}
		}
	}
}

package sort

// Arena is the scratch space a bucket pass stages elements in: one growable
// buffer per bucket. Buffers keep their capacity between passes, so a
// Sorter reused on similar inputs stops allocating after the first sort.
//
// An Arena serves one partition pass at a time. Sharing one between
// concurrent sorts is a data race; overlapping use from a single goroutine
// panics.
type Arena[T Sortable] struct {
	buckets [][]T
	active  int
	busy    bool
}

// NewArena returns an empty arena.
func NewArena[T Sortable]() *Arena[T] {
	return &Arena[T]{}
}

// Len returns the number of elements currently staged. It is zero whenever
// no partition pass is in progress.
func (a *Arena[T]) Len() int {
	n := 0
	for _, b := range a.buckets {
		n += len(b)
	}
	return n
}

// Cap returns the total capacity retained across all buckets.
func (a *Arena[T]) Cap() int {
	n := 0
	for _, b := range a.buckets {
		n += cap(b)
	}
	return n
}

// Release drops all retained buffers.
func (a *Arena[T]) Release() {
	if a.busy {
		panic("sort: arena released during a partition pass")
	}
	a.buckets = nil
	a.active = 0
}

// acquire prepares n empty buckets for one pass.
func (a *Arena[T]) acquire(n int) {
	if a.busy {
		panic("sort: arena used by overlapping partition passes")
	}
	a.busy = true
	for len(a.buckets) < n {
		a.buckets = append(a.buckets, nil)
	}
	for i := range a.buckets {
		a.buckets[i] = a.buckets[i][:0]
	}
	a.active = n
}

func (a *Arena[T]) release() {
	for i := range a.active {
		a.buckets[i] = a.buckets[i][:0]
	}
	a.active = 0
	a.busy = false
}

func (a *Arena[T]) push(b int, v T) {
	a.buckets[b] = append(a.buckets[b], v)
}

func (a *Arena[T]) pushAll(b int, vs []T) {
	a.buckets[b] = append(a.buckets[b], vs...)
}

func (a *Arena[T]) size(b int) int {
	return len(a.buckets[b])
}

// drain copies bucket b into dst, empties it and returns its length.
func (a *Arena[T]) drain(b int, dst []T) int {
	n := copy(dst, a.buckets[b])
	a.buckets[b] = a.buckets[b][:0]
	return n
}

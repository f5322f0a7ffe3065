package sort

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// orderKeys returns the total-order keys of data widened to int64, so that
// NaNs compare by their position in the order rather than as unequal.
func orderKeys[T Sortable](data []T) []int64 {
	out := make([]int64, len(data))
	for i, v := range data {
		switch x := any(v).(type) {
		case float32:
			out[i] = int64(Key32(x))
		case float64:
			out[i] = Key64(x)
		case int32:
			out[i] = int64(x)
		case int64:
			out[i] = x
		}
	}
	return out
}

// reference sorts a copy of data with the standard library.
func reference[T Sortable](data []T) []T {
	out := slices.Clone(data)
	slices.SortFunc(out, Compare[T])
	return out
}

// checkSorted fails t unless got is the sorted permutation of orig.
func checkSorted[T Sortable](t testing.TB, name string, got, orig []T) {
	t.Helper()
	if diff := cmp.Diff(orderKeys(reference(orig)), orderKeys(got)); diff != "" {
		t.Fatalf("%s: output is not the sorted input (-want +got):\n%s", name, diff)
	}
	if !IsSorted(got) {
		t.Fatalf("%s: IsSorted reports false on sorted output", name)
	}
}

// sorters returns one Sorter per strategy, each partitioning down to the
// shortest range a partitioner accepts.
func sorters[T Sortable](opts ...Option) []*Sorter[T] {
	var out []*Sorter[T]
	for _, s := range Strategies() {
		out = append(out, New[T](s, append([]Option{WithThreshold(2)}, opts...)...))
	}
	return out
}

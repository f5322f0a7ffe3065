// Package sort provides in-place quicksort variants built around
// interchangeable partitioning strategies.
//
// # Strategies
//
// Every strategy shares the same recursive driver and insertion-sort
// fallback, and differs only in how a range is partitioned:
//   - Hoare and Lomuto: classic single-pivot partitioning
//   - HoareBlock and LomutoBlock: the same, staging misplaced offsets per
//     128-element block before moving data
//   - DualPivot, DualPivotBlock, TriplePivot, QuadPivot: single-pass
//     partitioning against 2, 3 or 4 sorted pivots, using multi-element
//     rotations when an element crosses more than one zone boundary
//   - DualPivotRotate: 2-pivot partitioning that classifies a block into
//     two offset lists at once and replays them with rotations
//   - Bucket: k-pivot classification (4 <= k <= 16) in vector batches into
//     a per-sorter scratch arena, followed by compaction back into the range
//
// # Ordering
//
// All comparisons go through a total-order key: floats are mapped with
// Key32/Key64, integers compare as themselves. NaNs are not rejected: a NaN
// with a clear sign bit orders after +Inf and one with the sign bit set
// orders before -Inf.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-pivotsort/sort"
//
//	func ProcessData(data []float32) {
//	    sort.Sort(data)          // bucket strategy, 8 pivots
//	    sort.SortQuadPivot(data) // explicit strategy
//	}
//
//	func Reuse(batches [][]float64) {
//	    s := sort.New[float64](sort.Bucket, sort.WithPivots(6))
//	    for _, b := range batches {
//	        s.Sort(b)
//	    }
//	}
//
// # Concurrency
//
// A Sorter owns its scratch arena and must not be shared between
// goroutines. Package psort sorts one slice on several goroutines, giving
// each worker its own Sorter.
//
// # Debug builds
//
// Building with the pivotsort_debug tag lowers the insertion-sort threshold
// and enables assertions on rotation indices and partition boundaries.
package sort

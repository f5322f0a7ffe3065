// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"fmt"

	"github.com/ajroetker/go-pivotsort/hwy"
)

// sortEngine is implemented by every engine instantiation for element T.
type sortEngine[T Sortable] interface {
	sort(data []T)
	partitionRanges(data []T) []Range
	getStats() Stats
	resetStats()
}

type config struct {
	pivots    int
	threshold int
	arena     any
}

// Option configures a Sorter.
type Option func(*config)

// WithPivots sets the pivot count of the Bucket strategy. k must be in
// [MinBucketPivots, MaxBucketPivots]. Other strategies ignore it.
func WithPivots(k int) Option {
	return func(c *config) { c.pivots = k }
}

// WithThreshold sets the length below which ranges are insertion sorted.
// It must be at least 2.
func WithThreshold(n int) Option {
	return func(c *config) { c.threshold = n }
}

// WithArena makes the Sorter stage bucket passes in a instead of an arena
// of its own. The element type of a must match the Sorter's.
func WithArena[T Sortable](a *Arena[T]) Option {
	return func(c *config) { c.arena = a }
}

// Sorter sorts slices of T with one strategy. It keeps a scratch arena and
// statistics between calls and is not safe for concurrent use.
type Sorter[T Sortable] struct {
	strategy Strategy
	eng      sortEngine[T]
}

// New returns a Sorter for the given strategy. It panics on an unknown
// strategy or an out-of-range option, as those are programming errors.
func New[T Sortable](strategy Strategy, opts ...Option) *Sorter[T] {
	if !strategy.Valid() {
		panic(fmt.Sprintf("sort: unknown strategy %d", int(strategy)))
	}
	cfg := config{pivots: DefaultBucketPivots, threshold: insertionThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pivots < MinBucketPivots || cfg.pivots > MaxBucketPivots {
		panic(fmt.Sprintf("sort: pivot count %d outside [%d, %d]", cfg.pivots, MinBucketPivots, MaxBucketPivots))
	}
	if cfg.threshold < 2 {
		panic(fmt.Sprintf("sort: insertion threshold %d below 2", cfg.threshold))
	}
	arena := NewArena[T]()
	if cfg.arena != nil {
		a, ok := cfg.arena.(*Arena[T])
		if !ok {
			panic(fmt.Sprintf("sort: arena of type %T for Sorter[%T]", cfg.arena, *new(T)))
		}
		arena = a
	}

	var eng any
	switch a := any(arena).(type) {
	case *Arena[float32]:
		eng = newEngine(keyFloat32, strategy, cfg, a)
	case *Arena[float64]:
		eng = newEngine(keyFloat64, strategy, cfg, a)
	case *Arena[int32]:
		eng = newEngine(keyInt32, strategy, cfg, a)
	case *Arena[int64]:
		eng = newEngine(keyInt64, strategy, cfg, a)
	}
	return &Sorter[T]{strategy: strategy, eng: eng.(sortEngine[T])}
}

// Strategy returns the strategy s was created with.
func (s *Sorter[T]) Strategy() Strategy { return s.strategy }

// Sort sorts data in place in ascending total order.
func (s *Sorter[T]) Sort(data []T) {
	s.eng.sort(data)
}

// Partition runs a single partition step over data and returns the
// sub-ranges, relative to data, that still need sorting. Elements outside
// the returned ranges are in their final positions. Ranges shorter than
// two elements are omitted. Inputs too short to partition are insertion
// sorted and yield no ranges.
func (s *Sorter[T]) Partition(data []T) []Range {
	return s.eng.partitionRanges(data)
}

// Stats returns the counters accumulated since creation or ResetStats.
func (s *Sorter[T]) Stats() Stats { return s.eng.getStats() }

// ResetStats zeroes the counters.
func (s *Sorter[T]) ResetStats() { s.eng.resetStats() }

// Sort sorts data with the Bucket strategy and the default pivot count.
func Sort[T Sortable](data []T) {
	New[T](Bucket).Sort(data)
}

// SortHoare sorts data with classic Hoare partitioning.
func SortHoare[T Sortable](data []T) { New[T](Hoare).Sort(data) }

// SortHoareBlock sorts data with block Hoare partitioning.
func SortHoareBlock[T Sortable](data []T) { New[T](HoareBlock).Sort(data) }

// SortLomuto sorts data with classic Lomuto partitioning.
func SortLomuto[T Sortable](data []T) { New[T](Lomuto).Sort(data) }

// SortLomutoBlock sorts data with block Lomuto partitioning.
func SortLomutoBlock[T Sortable](data []T) { New[T](LomutoBlock).Sort(data) }

// SortDualPivot sorts data with 2-pivot partitioning.
func SortDualPivot[T Sortable](data []T) { New[T](DualPivot).Sort(data) }

// SortDualPivotBlock sorts data with block 2-pivot partitioning.
func SortDualPivotBlock[T Sortable](data []T) { New[T](DualPivotBlock).Sort(data) }

// SortDualPivotRotate sorts data with single-pass block 2-pivot
// partitioning that moves elements by rotation.
func SortDualPivotRotate[T Sortable](data []T) { New[T](DualPivotRotate).Sort(data) }

// SortTriplePivot sorts data with 3-pivot partitioning.
func SortTriplePivot[T Sortable](data []T) { New[T](TriplePivot).Sort(data) }

// SortQuadPivot sorts data with 4-pivot partitioning.
func SortQuadPivot[T Sortable](data []T) { New[T](QuadPivot).Sort(data) }

// SortBucket sorts data with k-pivot bucket partitioning.
// k must be in [MinBucketPivots, MaxBucketPivots].
func SortBucket[T Sortable](data []T, k int) {
	New[T](Bucket, WithPivots(k)).Sort(data)
}

// IsSorted reports whether data is in ascending total order.
func IsSorted[T Sortable](data []T) bool {
	switch d := any(data).(type) {
	case []float32:
		return isSorted(d, keyFloat32)
	case []float64:
		return isSorted(d, keyFloat64)
	case []int32:
		return isSorted(d, keyInt32)
	case []int64:
		return isSorted(d, keyInt64)
	}
	return false
}

// isSorted compares each vector of keys with the vector one element ahead
// and stops at the first lane where the order breaks.
func isSorted[T Sortable, K orderKey](data []T, key func(T) K) bool {
	n := len(data)
	if n < 2 {
		return true
	}
	lanes := hwy.MaxLanes[K]()
	var cur, next [hwy.MaxVecLanes + 1]K
	i := 0
	for ; i+lanes < n; i += lanes {
		for j := range lanes + 1 {
			cur[j] = key(data[i+j])
		}
		copy(next[:lanes], cur[1:lanes+1])
		if hwy.FindFirstTrue(hwy.GreaterThan(hwy.Load(cur[:lanes]), hwy.Load(next[:lanes]))) >= 0 {
			return false
		}
	}
	for ; i+1 < n; i++ {
		if key(data[i]) > key(data[i+1]) {
			return false
		}
	}
	return true
}

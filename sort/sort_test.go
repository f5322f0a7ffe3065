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
	"math"
	"math/bits"
	"slices"
	"testing"

	"github.com/ajroetker/go-pivotsort/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryPoints = map[string]func([]float64){
	"Sort":                Sort[float64],
	"SortHoare":           SortHoare[float64],
	"SortHoareBlock":      SortHoareBlock[float64],
	"SortLomuto":          SortLomuto[float64],
	"SortLomutoBlock":     SortLomutoBlock[float64],
	"SortDualPivot":       SortDualPivot[float64],
	"SortDualPivotBlock":  SortDualPivotBlock[float64],
	"SortDualPivotRotate": SortDualPivotRotate[float64],
	"SortTriplePivot":     SortTriplePivot[float64],
	"SortQuadPivot":       SortQuadPivot[float64],
	"SortBucket4":         func(d []float64) { SortBucket(d, 4) },
	"SortBucket16":        func(d []float64) { SortBucket(d, 16) },
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for name, sort := range entryPoints {
		var empty []float64
		sort(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", name)
		}
		sort([]float64{})
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for name, sort := range entryPoints {
		data := []float64{42.0}
		sort(data)
		if data[0] != 42.0 {
			t.Errorf("%s([42]) = %v, want [42]", name, data)
		}
	}
}

// TestSortFive tests the shortest input every partitioner accepts
func TestSortFive(t *testing.T) {
	for _, s := range sorters[int32]() {
		data := []int32{5, 3, 1, 4, 2}
		s.Sort(data)
		assert.Equal(t, []int32{1, 2, 3, 4, 5}, data, s.Strategy().String())
	}
}

// TestSortAlreadySorted tests 10000 sorted elements, which must come back
// unchanged with a logarithmic recursion depth. Stats has no comparison
// counter, so the comparison count is not bounded here; the end-pivot
// strategies do quadratic work on this input even though their depth
// stays logarithmic.
func TestSortAlreadySorted(t *testing.T) {
	const n = 10000
	want := make([]int64, n)
	for i := range want {
		want[i] = int64(i)
	}
	for _, strategy := range Strategies() {
		s := New[int64](strategy)
		data := slices.Clone(want)
		s.Sort(data)
		require.Equal(t, want, data, strategy.String())
		assert.LessOrEqual(t, s.Stats().MaxDepth, bits.Len(n)+1, strategy.String())
	}
}

// TestSortBucketTwelve tests a 4-pivot bucket pass on 12 floats
func TestSortBucketTwelve(t *testing.T) {
	data := []float32{9.5, -1, 3.25, 7, 0, -8.5, 3.25, 12, 1, -0.5, 6, 2}
	orig := slices.Clone(data)
	s := New[float32](Bucket, WithPivots(4), WithThreshold(2))
	s.Sort(data)
	checkSorted(t, "bucket/4", data, orig)
	assert.Positive(t, s.Stats().Partitions)
}

// TestSortAllSame tests 1000 identical elements
func TestSortAllSame(t *testing.T) {
	for _, strategy := range Strategies() {
		data := make([]float64, 1000)
		for i := range data {
			data[i] = 3.5
		}
		s := New[float64](strategy)
		s.Sort(data)
		for i, v := range data {
			require.Equal(t, 3.5, v, "%v: index %d", strategy, i)
		}
	}

	// Equal pivots let these passes finish in one step.
	for _, strategy := range []Strategy{DualPivot, Bucket} {
		s := New[int32](strategy)
		s.Sort(make([]int32, 1000))
		assert.Equal(t, 1, s.Stats().Partitions, strategy.String())
	}
}

// TestSortDistributions sorts every distribution with every strategy and
// checks that the output is the sorted permutation of the input
func TestSortDistributions(t *testing.T) {
	sizes := []int{2, 3, 5, 6, 7, 8, 9, 12, 16, 17, 26, 27, 28, 33, 64, 100, 127, 128, 129, 255, 256, 257, 1000, 3000}
	for _, d := range gen.Distributions() {
		for _, n := range sizes {
			orig64 := gen.Slice[float64](d, n, uint64(n))
			orig32 := gen.Slice[int32](d, n, uint64(n))
			for _, s := range sorters[float64]() {
				data := slices.Clone(orig64)
				s.Sort(data)
				checkSorted(t, fmt.Sprintf("%v/%v/float64/%d", s.Strategy(), d, n), data, orig64)
			}
			for _, s := range sorters[int32]() {
				data := slices.Clone(orig32)
				s.Sort(data)
				checkSorted(t, fmt.Sprintf("%v/%v/int32/%d", s.Strategy(), d, n), data, orig32)
			}
		}
	}
}

// TestSortTypes tests float32 and int64 with the default thresholds
func TestSortTypes(t *testing.T) {
	for _, n := range []int{31, 1000, 5000} {
		f32 := gen.Slice[float32](gen.Random, n, 7)
		i64 := gen.Slice[int64](gen.FewUnique, n, 7)
		for _, strategy := range Strategies() {
			a := slices.Clone(f32)
			New[float32](strategy).Sort(a)
			checkSorted(t, fmt.Sprintf("%v/float32/%d", strategy, n), a, f32)

			b := slices.Clone(i64)
			New[int64](strategy).Sort(b)
			checkSorted(t, fmt.Sprintf("%v/int64/%d", strategy, n), b, i64)
		}
	}
}

// TestSortBucketPivotCounts tests every allowed pivot count
func TestSortBucketPivotCounts(t *testing.T) {
	orig := gen.Slice[float32](gen.Random, 4000, 11)
	for k := MinBucketPivots; k <= MaxBucketPivots; k++ {
		data := slices.Clone(orig)
		SortBucket(data, k)
		checkSorted(t, fmt.Sprintf("bucket/%d", k), data, orig)
	}
}

// TestSortIdempotent tests that sorting sorted output changes nothing
func TestSortIdempotent(t *testing.T) {
	orig := gen.Slice[float64](gen.QuasiSorted, 2000, 3)
	for _, s := range sorters[float64]() {
		once := slices.Clone(orig)
		s.Sort(once)
		twice := slices.Clone(once)
		s.Sort(twice)
		assert.Equal(t, orderKeys(once), orderKeys(twice), s.Strategy().String())
	}
}

// TestSortSmallMatchesInsertion tests that ranges below the threshold give
// exactly the insertion sort result
func TestSortSmallMatchesInsertion(t *testing.T) {
	for n := range insertionThreshold {
		orig := gen.Slice[float32](gen.WithNaN, n, uint64(n))
		want := slices.Clone(orig)
		InsertionSort(want)
		for _, strategy := range Strategies() {
			s := New[float32](strategy)
			got := slices.Clone(orig)
			s.Sort(got)
			assert.Equal(t, orderKeys(want), orderKeys(got), "%v/%d", strategy, n)
			assert.Zero(t, s.Stats().Partitions)
		}
	}
}

// TestSortNaN tests that NaNs end up at the ends according to their sign
func TestSortNaN(t *testing.T) {
	posNaN := math.Float64frombits(0x7ff8000000000001)
	negNaN := math.Float64frombits(0xfff8000000000001)
	orig := []float64{3, posNaN, -1, math.Inf(1), negNaN, 0, math.Inf(-1), posNaN, 2, -7, 11, negNaN, 5, 1}
	for _, s := range sorters[float64]() {
		data := slices.Clone(orig)
		s.Sort(data)
		name := s.Strategy().String()
		checkSorted(t, name, data, orig)
		assert.True(t, math.IsNaN(data[0]) && math.Signbit(data[0]), name)
		assert.True(t, math.IsNaN(data[1]) && math.Signbit(data[1]), name)
		assert.Equal(t, math.Inf(-1), data[2], name)
		assert.Equal(t, math.Inf(1), data[len(data)-3], name)
		assert.True(t, math.IsNaN(data[len(data)-1]) && !math.Signbit(data[len(data)-1]), name)
	}
}

// TestSortDepth tests the recursion depth bound on adversarial shapes
func TestSortDepth(t *testing.T) {
	const n = 1 << 13
	for _, d := range []gen.Distribution{gen.Sorted, gen.Reversed, gen.FewUnique, gen.Random} {
		orig := gen.Slice[int32](d, n, 5)
		for _, s := range sorters[int32]() {
			data := slices.Clone(orig)
			s.Sort(data)
			assert.LessOrEqual(t, s.Stats().MaxDepth, bits.Len(n)+1, "%v/%v", s.Strategy(), d)
		}
	}
}

func TestSorterStats(t *testing.T) {
	s := New[float64](QuadPivot)
	s.Sort(gen.Slice[float64](gen.Random, 5000, 1))
	st := s.Stats()
	assert.Positive(t, st.Partitions)
	assert.Positive(t, st.Fallbacks)
	assert.GreaterOrEqual(t, st.MaxDepth, 2)

	s.ResetStats()
	assert.Equal(t, Stats{}, s.Stats())
}

func TestIsSorted(t *testing.T) {
	for n := range 70 {
		data := make([]int64, n)
		for i := range data {
			data[i] = int64(i)
		}
		assert.True(t, IsSorted(data))
		for i := 1; i < n; i++ {
			broken := slices.Clone(data)
			broken[i-1], broken[i] = broken[i], broken[i-1]
			if IsSorted(broken) {
				t.Fatalf("IsSorted true with positions %d and %d swapped (n=%d)", i-1, i, n)
			}
		}
	}
	assert.True(t, IsSorted([]float32{float32(math.Inf(-1)), -0.0, 0, 1}))
	assert.False(t, IsSorted([]float32{0, float32(math.Copysign(0, -1))}))
}

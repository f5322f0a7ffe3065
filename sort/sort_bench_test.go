package sort

import (
	"fmt"
	"slices"
	"testing"

	"github.com/ajroetker/go-pivotsort/internal/gen"
)

func benchmarkSort[T Sortable](b *testing.B, strategy Strategy, n int) {
	ref := gen.Slice[T](gen.Random, n, 1)
	data := make([]T, n)
	s := New[T](strategy)
	b.SetBytes(int64(n) * int64(sizeOf[T]()))
	b.ResetTimer()
	for b.Loop() {
		copy(data, ref)
		s.Sort(data)
	}
}

func sizeOf[T Sortable]() int {
	var zero T
	switch any(zero).(type) {
	case float32, int32:
		return 4
	}
	return 8
}

func BenchmarkSort_Float32(b *testing.B) {
	for _, strategy := range Strategies() {
		for _, n := range []int{100, 10000, 1000000} {
			b.Run(fmt.Sprintf("%v/%d", strategy, n), func(b *testing.B) {
				benchmarkSort[float32](b, strategy, n)
			})
		}
	}
}

func BenchmarkSort_Int64(b *testing.B) {
	for _, strategy := range Strategies() {
		b.Run(fmt.Sprintf("%v/%d", strategy, 100000), func(b *testing.B) {
			benchmarkSort[int64](b, strategy, 100000)
		})
	}
}

func BenchmarkSort_Bucket_Pivots(b *testing.B) {
	for k := MinBucketPivots; k <= MaxBucketPivots; k += 4 {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			ref := gen.Slice[float32](gen.Random, 100000, 1)
			data := make([]float32, len(ref))
			s := New[float32](Bucket, WithPivots(k))
			for b.Loop() {
				copy(data, ref)
				s.Sort(data)
			}
		})
	}
}

func BenchmarkStdlib_Float32(b *testing.B) {
	ref := gen.Slice[float32](gen.Random, 100000, 1)
	data := make([]float32, len(ref))
	for b.Loop() {
		copy(data, ref)
		slices.Sort(data)
	}
}

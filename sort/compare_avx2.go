//go:build amd64 && goexperiment.simd

package sort

import (
	"simd/archsimd"

	"github.com/ajroetker/go-pivotsort/hwy"
)

// newPivotComparer picks the AVX2 comparers when the CPU has them. AVX-512
// machines run them as well.
func newPivotComparer[K orderKey]() pivotComparer[K] {
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX2, hwy.DispatchAVX512:
		var c any
		switch any(K(0)).(type) {
		case int32:
			c = &int32x8Comparer{}
		case int64:
			c = &int64x4Comparer{}
		}
		return c.(pivotComparer[K])
	}
	return &vecComparer[K]{}
}

// int32x8Comparer classifies eight 32-bit keys per batch.
type int32x8Comparer struct {
	pv [MaxBucketPivots]archsimd.Int32x8
	k  int
}

func (c *int32x8Comparer) lanes() int { return 8 }

func (c *int32x8Comparer) setPivots(piv []int32) {
	c.k = len(piv)
	for p, x := range piv {
		c.pv[p] = archsimd.BroadcastInt32x8(x)
	}
}

// compare uses x >= p == !(p > x); AVX2 only has the signed greater-than.
func (c *int32x8Comparer) compare(keys []int32, ge *[MaxBucketPivots]uint64) {
	v := archsimd.LoadInt32x8Slice(keys)
	for p := range c.k {
		ge[p] = ^uint64(c.pv[p].Greater(v).ToBits()) & 0xff
	}
}

// int64x4Comparer classifies four 64-bit keys per batch.
type int64x4Comparer struct {
	pv [MaxBucketPivots]archsimd.Int64x4
	k  int
}

func (c *int64x4Comparer) lanes() int { return 4 }

func (c *int64x4Comparer) setPivots(piv []int64) {
	c.k = len(piv)
	for p, x := range piv {
		c.pv[p] = archsimd.BroadcastInt64x4(x)
	}
}

func (c *int64x4Comparer) compare(keys []int64, ge *[MaxBucketPivots]uint64) {
	v := archsimd.LoadInt64x4Slice(keys)
	for p := range c.k {
		ge[p] = ^uint64(c.pv[p].Greater(v).ToBits()) & 0xf
	}
}

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
	"math/bits"

	"github.com/ajroetker/go-pivotsort/hwy"
)

// Bucket pivot count bounds.
const (
	MinBucketPivots     = 4
	MaxBucketPivots     = 16
	DefaultBucketPivots = 8
)

// minBucketLanes is the narrowest vector the batched classifier runs on.
// Narrower targets classify every element on the scalar path.
const minBucketLanes = 4

// bucket partitions data into k+1 buckets against k sampled pivots.
// Element x goes to bucket b, the number of pivots <= x, so ties move to
// the higher bucket. Buckets are staged in the arena in scan order and
// copied back contiguously.
//
// When every element lands in the last bucket, all of them are >= the
// largest pivot, which is then the minimum of the range. The pass falls
// back to a 2-way split that fixes the copies of that value in place and
// leaves only the strictly larger elements for further work.
func (e *engine[T, K]) bucket(data []T) parts {
	n := len(data)
	k := e.pivots

	var piv [MaxBucketPivots]K
	for i := range k {
		piv[i] = e.key(data[(i+1)*n/(k+1)])
	}
	transpositionSort(piv[:k])

	a := e.arena
	a.acquire(k + 1)
	defer a.release()
	e.classify(data, piv[:k], a)

	if a.size(k) == n {
		return e.splitAtPivot(data, piv[k-1])
	}

	var out parts
	off := 0
	for b := range k + 1 {
		c := a.drain(b, data[off:])
		out.add(off, off+c)
		off += c
	}
	return out
}

// classify stages every element of data in its bucket. Each batch of keys
// is compared against every broadcast pivot at once; the per-pivot lane
// masks are then transposed into one pivot bitmask per element whose
// length is the bucket index. Batches entirely below the first pivot or at
// or above the last are staged in one append.
func (e *engine[T, K]) classify(data []T, piv []K, a *Arena[T]) {
	c := e.cmp
	lanes := c.lanes()
	i := 0
	if lanes >= minBucketLanes {
		c.setPivots(piv)
		top := len(piv) - 1
		full := uint64(1)<<uint(lanes) - 1
		var keys [hwy.MaxVecLanes]K
		var ge [MaxBucketPivots]uint64
		for ; i+lanes <= len(data); i += lanes {
			batch := data[i : i+lanes]
			for j, x := range batch {
				keys[j] = e.key(x)
			}
			c.compare(keys[:lanes], &ge)
			if ge[0] == 0 {
				a.pushAll(0, batch)
				continue
			}
			if ge[top] == full {
				a.pushAll(len(piv), batch)
				continue
			}
			var lane [hwy.MaxVecLanes]uint32
			for p := range piv {
				for m := ge[p]; m != 0; m &= m - 1 {
					lane[bits.TrailingZeros64(m)] |= 1 << uint(p)
				}
			}
			for j, x := range batch {
				a.push(bits.Len32(lane[j]), x)
			}
		}
	}
	for _, x := range data[i:] {
		a.push(bucketOf(e.key(x), piv), x)
	}
}

// pivotComparer compares a batch of keys against the pivots of one pass.
type pivotComparer[K orderKey] interface {
	// lanes is the batch width.
	lanes() int
	// setPivots broadcasts the sorted pivots of the pass.
	setPivots(piv []K)
	// compare sets ge[p] to the mask of lanes whose key is >= piv[p].
	// len(keys) is lanes().
	compare(keys []K, ge *[MaxBucketPivots]uint64)
}

// vecComparer runs on the portable hwy vectors.
type vecComparer[K orderKey] struct {
	pv [MaxBucketPivots]hwy.Vec[K]
	k  int
}

func (c *vecComparer[K]) lanes() int { return hwy.MaxLanes[K]() }

func (c *vecComparer[K]) setPivots(piv []K) {
	c.k = len(piv)
	for p, x := range piv {
		c.pv[p] = hwy.Set(x)
	}
}

func (c *vecComparer[K]) compare(keys []K, ge *[MaxBucketPivots]uint64) {
	v := hwy.Load(keys)
	for p := range c.k {
		ge[p] = hwy.BitsFromMask(hwy.GreaterEqual(v, c.pv[p]))
	}
}

// bucketOf returns the number of pivots <= x.
func bucketOf[K orderKey](x K, piv []K) int {
	for p := len(piv) - 1; p >= 0; p-- {
		if x >= piv[p] {
			return p + 1
		}
	}
	return 0
}

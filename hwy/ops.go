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

package hwy

import "math/bits"

// Load creates a vector from the first MaxLanes elements of src.
// A shorter src yields a vector with len(src) lanes.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:MaxLanes[T]()], src)
	return v
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// compare builds a mask over the lanes common to a and b.
func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	n := min(a.n, b.n)
	var bits uint64
	for i := range n {
		if pred(a.data[i], b.data[i]) {
			bits |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return mask.bits
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

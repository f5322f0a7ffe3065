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
	"cmp"
	"math"
)

// Sortable lists the element types the sorters accept.
type Sortable interface {
	float32 | float64 | int32 | int64
}

// orderKey is the key type every comparison is made on. It always has the
// same width as the element it was derived from.
type orderKey interface {
	int32 | int64
}

// Key32 maps a float32 to an int32 whose two's-complement order matches the
// numeric order of non-NaN inputs. Negative patterns have every bit but the
// sign flipped; -0 orders immediately before +0.
func Key32(f float32) int32 {
	b := int32(math.Float32bits(f))
	return b ^ (b >> 31 & 0x7fffffff)
}

// Key64 is the float64 counterpart of Key32.
func Key64(f float64) int64 {
	b := int64(math.Float64bits(f))
	return b ^ (b >> 63 & 0x7fffffffffffffff)
}

func keyFloat32(v float32) int32 { return Key32(v) }
func keyFloat64(v float64) int64 { return Key64(v) }
func keyInt32(v int32) int32     { return v }
func keyInt64(v int64) int64     { return v }

// Compare returns -1, 0 or +1 depending on the total-order keys of a and b.
func Compare[T Sortable](a, b T) int {
	switch x := any(a).(type) {
	case float32:
		return cmp.Compare(Key32(x), Key32(any(b).(float32)))
	case float64:
		return cmp.Compare(Key64(x), Key64(any(b).(float64)))
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	}
	panic("unreachable")
}

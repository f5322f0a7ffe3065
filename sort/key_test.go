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
	"math"
	"testing"
)

// TestKey32Monotonic tests that keys increase strictly along an ascending
// list of float32 values, including both zeros and subnormals
func TestKey32Monotonic(t *testing.T) {
	values := []float32{
		float32(math.Inf(-1)),
		-math.MaxFloat32,
		-1e20,
		-1,
		-math.SmallestNonzeroFloat32,
		float32(math.Copysign(0, -1)),
		0,
		math.SmallestNonzeroFloat32,
		1,
		1e20,
		math.MaxFloat32,
		float32(math.Inf(1)),
	}
	for i := 1; i < len(values); i++ {
		if Key32(values[i-1]) >= Key32(values[i]) {
			t.Errorf("Key32(%v)=%d not below Key32(%v)=%d",
				values[i-1], Key32(values[i-1]), values[i], Key32(values[i]))
		}
	}
}

// TestKey64Monotonic tests the float64 mapping the same way
func TestKey64Monotonic(t *testing.T) {
	values := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-1,
		-math.SmallestNonzeroFloat64,
		math.Copysign(0, -1),
		0,
		math.SmallestNonzeroFloat64,
		1,
		math.MaxFloat64,
		math.Inf(1),
	}
	for i := 1; i < len(values); i++ {
		if Key64(values[i-1]) >= Key64(values[i]) {
			t.Errorf("Key64(%v) not below Key64(%v)", values[i-1], values[i])
		}
	}
}

// TestKeyNaN tests where NaNs land relative to the infinities
func TestKeyNaN(t *testing.T) {
	posNaN32 := math.Float32frombits(0x7fc00000)
	negNaN32 := math.Float32frombits(0xffc00000)
	if Key32(posNaN32) <= Key32(float32(math.Inf(1))) {
		t.Errorf("positive NaN should order after +Inf")
	}
	if Key32(negNaN32) >= Key32(float32(math.Inf(-1))) {
		t.Errorf("negative NaN should order before -Inf")
	}

	posNaN64 := math.Float64frombits(0x7ff8000000000000)
	negNaN64 := math.Float64frombits(0xfff8000000000000)
	if Key64(posNaN64) <= Key64(math.Inf(1)) {
		t.Errorf("positive NaN should order after +Inf")
	}
	if Key64(negNaN64) >= Key64(math.Inf(-1)) {
		t.Errorf("negative NaN should order before -Inf")
	}
}

// TestCompare tests Compare for every element type
func TestCompare(t *testing.T) {
	if Compare[float32](-0.5, 0.25) != -1 {
		t.Errorf("Compare[float32](-0.5, 0.25) != -1")
	}
	if Compare[float64](2, 2) != 0 {
		t.Errorf("Compare[float64](2, 2) != 0")
	}
	if Compare[int32](math.MaxInt32, math.MinInt32) != 1 {
		t.Errorf("Compare[int32](max, min) != 1")
	}
	if Compare[int64](-1, 0) != -1 {
		t.Errorf("Compare[int64](-1, 0) != -1")
	}
	if Compare(math.Copysign(0, -1), 0.0) != -1 {
		t.Errorf("-0 should order before +0")
	}
}

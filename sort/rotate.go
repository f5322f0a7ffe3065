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

import "fmt"

// Rotation arity bounds.
const (
	minRotate = 3
	maxRotate = 6
)

// Rotate moves data[idx[1]] into idx[0], data[idx[2]] into idx[1], and so
// on, then writes the former data[idx[0]] into the last index. It accepts
// 3 to 6 indices and panics otherwise.
//
// The indices must be pairwise distinct; callers are responsible for this.
// Debug builds check it and panic. Otherwise the result is unspecified.
func Rotate[T any](data []T, idx ...int) {
	if len(idx) < minRotate || len(idx) > maxRotate {
		panic(fmt.Sprintf("sort: Rotate takes %d to %d indices, got %d", minRotate, maxRotate, len(idx)))
	}
	rotate(data, idx)
}

func rotate[T any](data []T, idx []int) {
	if debugAssertions {
		assertDistinct(idx)
	}
	tmp := data[idx[0]]
	for i := 1; i < len(idx); i++ {
		data[idx[i-1]] = data[idx[i]]
	}
	data[idx[len(idx)-1]] = tmp
}

func assertDistinct(idx []int) {
	for i := range idx {
		for j := i + 1; j < len(idx); j++ {
			if idx[i] == idx[j] {
				panic(fmt.Sprintf("sort: rotation indices alias: %v", idx))
			}
		}
	}
}

// cycle performs the same move as Rotate but first collapses runs of equal
// adjacent indices. An empty zone in the multi-pivot partitioners makes two
// boundary cursors coincide; dropping the duplicate gives the move the
// caller intended, down to a plain swap or nothing at all.
func cycle[T any](data []T, idx ...int) {
	var buf [maxRotate]int
	n := 0
	for _, x := range idx {
		if n > 0 && buf[n-1] == x {
			continue
		}
		buf[n] = x
		n++
	}
	switch n {
	case 0, 1:
	case 2:
		data[buf[0]], data[buf[1]] = data[buf[1]], data[buf[0]]
	default:
		rotate(data, buf[:n])
	}
}

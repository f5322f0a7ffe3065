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

// hoare partitions around data[0] with two cursors that converge from the
// ends, swapping each out-of-place pair. Everything in the left range is
// <= the pivot and everything in the right range is >= it. The pivot is not
// placed, so it stays inside one of the two ranges.
func (e *engine[T, K]) hoare(data []T) parts {
	p := e.key(data[0])
	i, j := -1, len(data)
	for {
		i++
		for e.key(data[i]) < p {
			i++
		}
		j--
		for e.key(data[j]) > p {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
	}
	var out parts
	out.add(0, j+1)
	out.add(j+1, len(data))
	return out
}

// lomuto partitions around the last element with a single forward scan,
// moving every element <= pivot to the front. The pivot ends up between the
// two returned ranges, in its final position.
func (e *engine[T, K]) lomuto(data []T) parts {
	last := len(data) - 1
	p := e.key(data[last])
	i := 0
	for j := range last {
		if e.key(data[j]) <= p {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	var out parts
	out.add(0, i)
	out.add(i+1, len(data))
	return out
}

// splitAtPivot moves every element <= p to the front of data and returns
// the range of elements > p. It is the 2-way fallback used when a bucket
// pass makes no progress: all elements are >= p there, so the front holds
// copies of p, which are final.
func (e *engine[T, K]) splitAtPivot(data []T, p K) parts {
	left, right := 0, len(data)
	for left < right {
		if e.key(data[left]) <= p {
			left++
		} else {
			right--
			data[left], data[right] = data[right], data[left]
		}
	}
	var out parts
	out.add(left, len(data))
	return out
}

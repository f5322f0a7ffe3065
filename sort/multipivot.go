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

// The multi-pivot partitioners take their pivots from fixed positions at the
// ends of the range, order them with a small network, and sweep the interior
// once. An element that must cross more than one zone boundary is moved with
// a single rotation through the cursors involved. Zones whose pivots are
// equal hold only copies of that pivot and are not returned.

// dualPivot partitions against p1 = data[0] <= p2 = data[n-1].
//
//	[p1 | < p1 | p1..p2 | unscanned | > p2 | p2]
//	     1      less     k           great
func (e *engine[T, K]) dualPivot(data []T) parts {
	left, right := 0, len(data)-1
	e.cas(data, left, right)
	p1, p2 := e.key(data[left]), e.key(data[right])
	less, great := left+1, right-1
	for k := less; k <= great; k++ {
		x := e.key(data[k])
		if x < p1 {
			e.swap(data, k, less)
			less++
		} else if x > p2 {
			for k < great && e.key(data[great]) > p2 {
				great--
			}
			e.swap(data, k, great)
			great--
			if e.key(data[k]) < p1 {
				e.swap(data, k, less)
				less++
			}
		}
	}
	e.swap(data, less-1, left)
	e.swap(data, great+1, right)
	var out parts
	out.add(left, less-1)
	if p1 != p2 {
		out.add(less, great+1)
	}
	out.add(great+2, right+1)
	return out
}

// triplePivot partitions against the sorted positions 0, 1 and n-1.
//
//	[p1 p2 | < p1 | p1..p2 | unscanned | p2..p3 | > p3 | p3]
//	        2      i        j           k        l
func (e *engine[T, K]) triplePivot(data []T) parts {
	left, right := 0, len(data)-1
	e.sort3(data, left, left+1, right)
	p1, p2, p3 := e.key(data[left]), e.key(data[left+1]), e.key(data[right])
	i, j := left+2, left+2
	k, l := right-1, right-1
	for j <= k {
		for e.key(data[j]) < p2 {
			if e.key(data[j]) < p1 {
				e.swap(data, i, j)
				i++
			}
			j++
		}
		for e.key(data[k]) > p2 {
			if e.key(data[k]) > p3 {
				e.swap(data, k, l)
				l--
			}
			k--
		}
		if j > k {
			break
		}
		big := e.key(data[j]) > p3
		if e.key(data[k]) < p1 {
			cycle(data, j, i, k)
			i++
		} else {
			e.swap(data, j, k)
		}
		if big {
			e.swap(data, k, l)
			l--
		}
		j++
		k--
	}
	i--
	j--
	l++
	cycle(data, left+1, i, j)
	i--
	e.swap(data, left, i)
	e.swap(data, right, l)

	var out parts
	out.add(left, i)
	if p1 != p2 {
		out.add(i+1, j)
	}
	if p2 != p3 {
		out.add(j+1, l)
	}
	out.add(l+1, right+1)
	return out
}

// quadPivot partitions against the sorted positions 0, 1, n-2 and n-1.
//
//	[p1 p2 | < p1 | p1..p2 | p2..p3 | unscanned | p3..p4 | > p4 | p3 p4]
//	        2      i        j        k           l        m
func (e *engine[T, K]) quadPivot(data []T) parts {
	left, right := 0, len(data)-1
	e.sort4(data, left, left+1, right-1, right)
	p1, p2 := e.key(data[left]), e.key(data[left+1])
	p3, p4 := e.key(data[right-1]), e.key(data[right])
	i, j, k := left+2, left+2, left+2
	l, m := right-2, right-2
	for k <= l {
		for {
			x := e.key(data[k])
			if x >= p3 {
				break
			}
			if x < p1 {
				cycle(data, k, j, i)
				i++
				j++
			} else if x < p2 {
				e.swap(data, k, j)
				j++
			}
			k++
		}
		for {
			x := e.key(data[l])
			if x <= p3 {
				break
			}
			if x > p4 {
				e.swap(data, l, m)
				m--
			}
			l--
		}
		if k > l {
			break
		}
		xl := e.key(data[l])
		if e.key(data[k]) < p4 {
			switch {
			case xl < p1:
				cycle(data, k, j, i, l)
				i++
				j++
			case xl < p2:
				cycle(data, k, j, l)
				j++
			default:
				e.swap(data, k, l)
			}
		} else {
			switch {
			case xl > p2:
				cycle(data, k, l, m)
			case xl > p1:
				cycle(data, k, j, l, m)
				j++
			default:
				cycle(data, k, j, i, l, m)
				i++
				j++
			}
			m--
		}
		k++
		l--
	}
	i--
	j--
	l++
	m++
	cycle(data, left+1, i, j)
	i--
	e.swap(data, left, i)
	cycle(data, right-1, m, l)
	m++
	e.swap(data, right, m)

	var out parts
	out.add(left, i)
	if p1 != p2 {
		out.add(i+1, j)
	}
	if p2 != p3 {
		out.add(j+1, l)
	}
	if p3 != p4 {
		out.add(l+1, m)
	}
	out.add(m+1, right+1)
	return out
}

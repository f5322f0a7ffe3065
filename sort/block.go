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

// blockSize is the number of elements classified before any data moves.
// Offsets within a block fit in a uint8.
const blockSize = 128

// lomutoBlock is lomuto with the comparisons of each block recorded first.
// Offsets of elements <= pivot are written unconditionally and the count
// advanced only on a match, so the classification loop has no data
// dependent branches. The swaps then replay in offset order, which gives
// exactly the arrangement plain lomuto produces.
func (e *engine[T, K]) lomutoBlock(data []T) parts {
	last := len(data) - 1
	p := e.key(data[last])
	var offsets [blockSize]uint8
	i := 0
	for j := 0; j < last; {
		b := min(blockSize, last-j)
		num := 0
		for k := range b {
			offsets[num] = uint8(k)
			if e.key(data[j+k]) <= p {
				num++
			}
		}
		for _, off := range offsets[:num] {
			o := j + int(off)
			data[i], data[o] = data[o], data[i]
			i++
		}
		j += b
	}
	data[i], data[last] = data[last], data[i]
	var out parts
	out.add(0, i)
	out.add(i+1, len(data))
	return out
}

// hoareBlock partitions around data[0]. It trims the already placed prefix
// (< pivot) and suffix (>= pivot), block-partitions the rest and finally
// swaps the pivot into place between the two ranges.
func (e *engine[T, K]) hoareBlock(data []T) parts {
	p := e.key(data[0])
	n := len(data)
	l, r := 1, n
	for l < r && e.key(data[l]) < p {
		l++
	}
	for l < r && e.key(data[r-1]) >= p {
		r--
	}
	mid := l - 1 + e.partitionInBlocks(data[l:r], p)
	data[0], data[mid] = data[mid], data[0]
	var out parts
	out.add(0, mid)
	out.add(mid+1, n)
	return out
}

// partitionInBlocks moves elements < p to the front of v and returns how
// many there are. Misplaced offsets are collected for a block from each end,
// then exchanged pairwise with a single cyclic permutation. When fewer than
// two blocks remain, the block sizes shrink to cover exactly what is left;
// leftover offsets of one side are resolved with plain swaps at the end.
func (e *engine[T, K]) partitionInBlocks(v []T, p K) int {
	l, r := 0, len(v)
	blockL, blockR := blockSize, blockSize
	var offL, offR [blockSize]uint8
	var startL, endL, startR, endR int

	for {
		done := r-l <= 2*blockSize
		if done {
			rem := r - l
			if startL < endL || startR < endR {
				rem -= blockSize
			}
			switch {
			case startL < endL:
				blockR = rem
			case startR < endR:
				blockL = rem
			default:
				blockL = rem / 2
				blockR = rem - blockL
			}
		}

		if startL == endL {
			startL, endL = 0, 0
			for i := range blockL {
				offL[endL] = uint8(i)
				if e.key(v[l+i]) >= p {
					endL++
				}
			}
		}
		if startR == endR {
			startR, endR = 0, 0
			for i := range blockR {
				offR[endR] = uint8(i)
				if e.key(v[r-1-i]) < p {
					endR++
				}
			}
		}

		if count := min(endL-startL, endR-startR); count > 0 {
			left := func() int { return l + int(offL[startL]) }
			right := func() int { return r - 1 - int(offR[startR]) }
			tmp := v[left()]
			v[left()] = v[right()]
			for range count - 1 {
				startL++
				v[right()] = v[left()]
				startR++
				v[left()] = v[right()]
			}
			v[right()] = tmp
			startL++
			startR++
		}

		if startL == endL {
			l += blockL
		}
		if startR == endR {
			r -= blockR
		}
		if done {
			break
		}
	}

	switch {
	case startL < endL:
		for startL < endL {
			endL--
			o := l + int(offL[endL])
			v[o], v[r-1] = v[r-1], v[o]
			r--
		}
		return r
	case startR < endR:
		for startR < endR {
			endR--
			o := r - 1 - int(offR[endR])
			v[l], v[o] = v[o], v[l]
			l++
		}
		return l
	}
	return l
}

// dualPivotBlock partitions against the sorted endpoints p1 <= p2 in two
// block passes. The first moves elements < p2 of the block to the end of
// the growing "< p2" run; the second pulls the elements < p1 among those
// just moved to the end of the "< p1" run. Layout while scanning:
//
//	[p1 | < p1 | p1..p2 | >= p2 | unscanned | p2]
//	     1      i        j       k           right
func (e *engine[T, K]) dualPivotBlock(data []T) parts {
	left, right := 0, len(data)-1
	e.cas(data, left, right)
	p1, p2 := e.key(data[left]), e.key(data[right])
	i, j, k := left+1, left+1, left+1
	var offsets [blockSize]uint8
	for k < right {
		b := min(blockSize, right-k)
		n2 := 0
		for t := range b {
			offsets[n2] = uint8(t)
			if e.key(data[k+t]) < p2 {
				n2++
			}
		}
		for t, off := range offsets[:n2] {
			o := k + int(off)
			data[j+t], data[o] = data[o], data[j+t]
		}
		k += b

		n1 := 0
		for t := range n2 {
			offsets[n1] = uint8(t)
			if e.key(data[j+t]) < p1 {
				n1++
			}
		}
		for _, off := range offsets[:n1] {
			o := j + int(off)
			data[i], data[o] = data[o], data[i]
			i++
		}
		j += n2
	}
	data[i-1], data[left] = data[left], data[i-1]
	data[j], data[right] = data[right], data[j]
	var out parts
	out.add(left, i-1)
	if p1 != p2 {
		out.add(i, j)
	}
	out.add(j+1, right+1)
	return out
}

// dualPivotRotate partitions against the sorted endpoints p1 <= p2 in one
// block pass. Offsets of elements < p1 fill the offset buffer from the
// front, offsets of elements in [p1, p2) fill it from the back. Both lists
// are then replayed together in offset order. An element < p1 rotates into
// i while the run heads it displaces shift up one zone; an element in
// [p1, p2) swaps with the first element >= p2. Layout while scanning:
//
//	[p1 | < p1 | p1..p2 | >= p2 | unscanned | p2]
//	     1      i        j       k           right
//
// Before the l-th replayed element of a block, [j, k+l) holds only
// elements >= p2, which is what keeps the rotation indices ordered
// i <= j <= k+l <= offset.
func (e *engine[T, K]) dualPivotRotate(data []T) parts {
	left, right := 0, len(data)-1
	e.cas(data, left, right)
	p1, p2 := e.key(data[left]), e.key(data[right])
	i, j, k := left+1, left+1, left+1
	var offsets [blockSize]uint8
	for k < right {
		b := min(blockSize, right-k)
		n1, n2 := 0, 0
		for t := range b {
			x := e.key(data[k+t])
			offsets[n1] = uint8(t)
			if x < p1 {
				n1++
			}
			offsets[b-1-n2] = uint8(t)
			if x >= p1 && x < p2 {
				n2++
			}
		}

		a, c := 0, 0
		for l := range n1 + n2 {
			if c == n2 || (a < n1 && offsets[a] < offsets[b-1-c]) {
				cycle(data, k+int(offsets[a]), k+l, j, i)
				a++
				i++
			} else {
				o := k + int(offsets[b-1-c])
				data[o], data[j] = data[j], data[o]
				c++
			}
			j++
		}
		k += b
	}
	data[i-1], data[left] = data[left], data[i-1]
	data[j], data[right] = data[right], data[j]
	var out parts
	out.add(left, i-1)
	out.add(i, j)
	out.add(j+1, right+1)
	return out
}

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

// minPartitionLen is the shortest range any partitioner accepts. Shorter
// ranges are insertion sorted whatever the configured threshold.
const minPartitionLen = 5

// maxParts bounds the number of ranges one partition step can return.
const maxParts = MaxBucketPivots + 1

// Range is the half-open index window [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// parts collects the sub-ranges a partition step leaves to be sorted.
// Ranges of length 0 or 1 are already sorted and never recorded.
type parts struct {
	n int
	r [maxParts]Range
}

func (p *parts) add(lo, hi int) {
	if hi-lo > 1 {
		p.r[p.n] = Range{lo, hi}
		p.n++
	}
}

func (p *parts) ranges() []Range {
	return p.r[:p.n]
}

// largest returns the index of the longest recorded range.
func (p *parts) largest() int {
	big := 0
	for i := 1; i < p.n; i++ {
		if p.r[i].Len() > p.r[big].Len() {
			big = i
		}
	}
	return big
}

// Stats counts the work done by a Sorter since it was created or last reset.
type Stats struct {
	// Partitions is the number of partition steps run.
	Partitions int
	// Fallbacks is the number of ranges finished by insertion sort.
	Fallbacks int
	// MaxDepth is the deepest recursion level reached; the top-level call
	// is depth 1.
	MaxDepth int
}

// engine is a Sorter specialized for one element type and its order key.
type engine[T Sortable, K orderKey] struct {
	key       func(T) K
	strategy  Strategy
	pivots    int
	threshold int
	arena     *Arena[T]
	cmp       pivotComparer[K]
	stats     Stats
}

func newEngine[T Sortable, K orderKey](key func(T) K, strategy Strategy, cfg config, arena *Arena[T]) *engine[T, K] {
	return &engine[T, K]{
		key:       key,
		strategy:  strategy,
		pivots:    cfg.pivots,
		threshold: max(cfg.threshold, minPartitionLen),
		arena:     arena,
		cmp:       newPivotComparer[K](),
	}
}

func (e *engine[T, K]) sort(data []T) {
	e.sortRange(data, 1)
}

// sortRange sorts data. Every range a partition step returns except the
// largest is sorted by a recursive call; the largest replaces data and the
// loop continues, so recursion only ever enters ranges of at most half the
// current length.
func (e *engine[T, K]) sortRange(data []T, depth int) {
	for {
		if depth > e.stats.MaxDepth {
			e.stats.MaxDepth = depth
		}
		if len(data) < e.threshold {
			if len(data) > 1 {
				e.stats.Fallbacks++
				insertionSort(data, e.key)
			}
			return
		}
		p := e.partition(data)
		if p.n == 0 {
			return
		}
		big := p.largest()
		for i, r := range p.ranges() {
			if i != big {
				e.sortRange(data[r.Lo:r.Hi], depth+1)
			}
		}
		r := p.r[big]
		data = data[r.Lo:r.Hi]
	}
}

// partition runs one partition step of the configured strategy.
func (e *engine[T, K]) partition(data []T) parts {
	if len(data) < minPartitionLen {
		if len(data) > 1 {
			e.stats.Fallbacks++
			insertionSort(data, e.key)
		}
		return parts{}
	}
	e.stats.Partitions++
	var p parts
	switch e.strategy {
	case Hoare:
		p = e.hoare(data)
	case HoareBlock:
		p = e.hoareBlock(data)
	case Lomuto:
		p = e.lomuto(data)
	case LomutoBlock:
		p = e.lomutoBlock(data)
	case DualPivot:
		p = e.dualPivot(data)
	case DualPivotBlock:
		p = e.dualPivotBlock(data)
	case DualPivotRotate:
		p = e.dualPivotRotate(data)
	case TriplePivot:
		p = e.triplePivot(data)
	case QuadPivot:
		p = e.quadPivot(data)
	case Bucket:
		p = e.bucket(data)
	default:
		panic(fmt.Sprintf("sort: unknown strategy %d", e.strategy))
	}
	if debugAssertions {
		e.checkParts(data, &p)
	}
	return p
}

// checkParts verifies that the returned ranges are disjoint, in order, and
// separated by boundaries: every element before a range orders <= all of
// its elements, and every element after it orders >= them.
func (e *engine[T, K]) checkParts(data []T, p *parts) {
	prev := 0
	for _, r := range p.ranges() {
		if r.Lo < prev || r.Hi > len(data) || r.Len() < 2 {
			panic(fmt.Sprintf("sort: %v returned bad range %v", e.strategy, r))
		}
		prev = r.Hi
		lo, hi := e.key(data[r.Lo]), e.key(data[r.Lo])
		for _, x := range data[r.Lo:r.Hi] {
			k := e.key(x)
			lo = min(lo, k)
			hi = max(hi, k)
		}
		for _, x := range data[:r.Lo] {
			if e.key(x) > lo {
				panic(fmt.Sprintf("sort: %v left an element above range %v before it", e.strategy, r))
			}
		}
		for _, x := range data[r.Hi:] {
			if e.key(x) < hi {
				panic(fmt.Sprintf("sort: %v left an element below range %v after it", e.strategy, r))
			}
		}
	}
}

func (e *engine[T, K]) partitionRanges(data []T) []Range {
	p := e.partition(data)
	return append([]Range(nil), p.ranges()...)
}

func (e *engine[T, K]) getStats() Stats { return e.stats }

func (e *engine[T, K]) resetStats() { e.stats = Stats{} }

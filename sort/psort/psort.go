// Package psort sorts one slice on several goroutines.
//
// The top of the recursion runs on the caller's goroutine: the largest
// pending range is partitioned until there are enough independent ranges to
// keep every worker busy. The ranges are then sorted on a workerpool.Pool,
// each worker slot using its own sort.Sorter and therefore its own arena.
package psort

import (
	"slices"
	"sync/atomic"

	"github.com/ajroetker/go-pivotsort/hwy/contrib/workerpool"
	"github.com/ajroetker/go-pivotsort/sort"
)

const (
	// MinParallelLen is the shortest input that is split across workers.
	MinParallelLen = 1 << 14

	// tasksPerWorker is how many ranges the split phase aims for per worker.
	tasksPerWorker = 4

	// minTaskLen stops splitting ranges that are already cheap to sort.
	minTaskLen = 1 << 11
)

// Sorter sorts slices of T on a shared pool. It is not safe for concurrent
// use; distinct Sorters may share a pool.
type Sorter[T sort.Sortable] struct {
	pool     *workerpool.Pool
	splitter *sort.Sorter[T]
	workers  []*sort.Sorter[T]
}

// New returns a Sorter that partitions with strategy. opts apply to the
// split phase and to every per-worker sort.Sorter. An arena passed with
// sort.WithArena serves only the split phase, which runs on the caller's
// goroutine; every worker slot gets a fresh arena of its own.
func New[T sort.Sortable](pool *workerpool.Pool, strategy sort.Strategy, opts ...sort.Option) *Sorter[T] {
	s := &Sorter[T]{
		pool:     pool,
		splitter: sort.New[T](strategy, opts...),
		workers:  make([]*sort.Sorter[T], pool.NumWorkers()),
	}
	for i := range s.workers {
		workerOpts := append(slices.Clip(opts), sort.WithArena(sort.NewArena[T]()))
		s.workers[i] = sort.New[T](strategy, workerOpts...)
	}
	return s
}

// Sort sorts data in place.
func (s *Sorter[T]) Sort(data []T) {
	if len(data) < MinParallelLen || len(s.workers) == 1 {
		s.splitter.Sort(data)
		return
	}
	tasks := s.split(data)
	// Longest first, so the tail of the run is made of short tasks.
	slices.SortFunc(tasks, func(a, b sort.Range) int { return b.Len() - a.Len() })
	s.pool.ParallelForAtomic(len(tasks), func(worker, i int) {
		r := tasks[i]
		s.workers[worker].Sort(data[r.Lo:r.Hi])
	})
}

// split partitions the largest pending range until there are enough tasks
// or every task is short.
func (s *Sorter[T]) split(data []T) []sort.Range {
	target := tasksPerWorker * len(s.workers)
	tasks := []sort.Range{{Lo: 0, Hi: len(data)}}
	for len(tasks) > 0 && len(tasks) < target {
		big := 0
		for i, r := range tasks {
			if r.Len() > tasks[big].Len() {
				big = i
			}
		}
		r := tasks[big]
		if r.Len() < minTaskLen {
			break
		}
		tasks = slices.Delete(tasks, big, big+1)
		for _, sub := range s.splitter.Partition(data[r.Lo:r.Hi]) {
			tasks = append(tasks, sort.Range{Lo: r.Lo + sub.Lo, Hi: r.Lo + sub.Hi})
		}
	}
	return tasks
}

// Stats combines the counters of the split phase and every worker.
// MaxDepth is the deepest recursion seen by any single sorter.
func (s *Sorter[T]) Stats() sort.Stats {
	st := s.splitter.Stats()
	for _, w := range s.workers {
		ws := w.Stats()
		st.Partitions += ws.Partitions
		st.Fallbacks += ws.Fallbacks
		st.MaxDepth = max(st.MaxDepth, ws.MaxDepth)
	}
	return st
}

// ResetStats zeroes the counters of every sorter.
func (s *Sorter[T]) ResetStats() {
	s.splitter.ResetStats()
	for _, w := range s.workers {
		w.ResetStats()
	}
}

// Sort sorts data on pool with the default bucket strategy.
func Sort[T sort.Sortable](pool *workerpool.Pool, data []T) {
	New[T](pool, sort.Bucket).Sort(data)
}

// IsSorted checks data in one chunk per worker. Neighbouring chunks overlap
// by one element so pairs across chunk edges are checked too.
func IsSorted[T sort.Sortable](pool *workerpool.Pool, data []T) bool {
	var unsorted atomic.Bool
	pool.ParallelFor(len(data), func(start, end int) {
		if !sort.IsSorted(data[start:min(end+1, len(data))]) {
			unsorted.Store(true)
		}
	})
	return !unsorted.Load()
}

// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// fork-join sorting. A Pool is created once and reused across many sorts,
// so no goroutines are spawned per call.
//
// Every task learns the slot it runs in. Slots are dense in
// [0, NumWorkers()) and a slot is never active in two goroutines during one
// call, which lets callers keep per-slot scratch state without locking.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	scratch := make([]*Buffer, pool.NumWorkers())
//	pool.ParallelForAtomic(len(tasks), func(worker, i int) {
//	    tasks[i].Run(scratch[worker])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and the sends on workC, so Close never closes the
	// channel under an in-flight run.
	mu     sync.RWMutex
	closed bool
}

// workItem is one slot's share of a parallel operation.
type workItem struct {
	slot    int
	fn      func(slot int)
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0. Workers persist until Close is called.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn(item.slot)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers, which is also the number of
// distinct slots tasks can observe.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down after pending work completes. Calling Close
// more than once is safe, and so is calling it while other goroutines are
// dispatching work. A closed pool runs every slot in turn on the caller's
// goroutine.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}

// run dispatches fn to slots 0..workers-1 and waits for all of them.
func (p *Pool) run(workers int, fn func(slot int)) {
	p.mu.RLock()
	if workers <= 1 || p.closed {
		p.mu.RUnlock()
		for slot := range max(workers, 1) {
			fn(slot)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for slot := range workers {
		p.workC <- workItem{slot: slot, fn: fn, barrier: &wg}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. Blocks until all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers
	p.run(workers, func(slot int) {
		start := slot * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(worker, i) for each i in [0, n). Indices are
// claimed one at a time with an atomic counter, so long and short tasks
// balance across workers. Blocks until all indices are done.
func (p *Pool) ParallelForAtomic(n int, fn func(worker, i int)) {
	if n <= 0 {
		return
	}
	var next atomic.Int64
	p.run(min(p.numWorkers, n), func(slot int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(slot, i)
		}
	})
}

// SPDX-License-Identifier: MIT
// Package: lfstack/stack
//
// types.go — Stack, node, Stats and the New constructor.

package stack

import (
	"sync"
	"sync/atomic"
)

// node is one intrusive link of a chain. Once spliced, a node is owned by
// whichever chain (live or free) links to it.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Stack is a lock-free LIFO stack. Use New to construct one; the zero value
// is not usable.
//
// head is the top of the live chain, freeList holds detached nodes waiting
// for reclamation and inFlight counts Pop/Drain calls between entry and exit.
type Stack[T any] struct {
	head     atomic.Pointer[node[T]]
	freeList atomic.Pointer[node[T]]
	inFlight atomic.Int64

	pool    sync.Pool // released nodes; unused when recycling is off
	cfg     config    // resolved options
	counter *counters // nil unless WithStats
}

// Stats is a snapshot of operation counters. All fields are zero unless the
// stack was created with WithStats.
type Stats struct {
	// Pushed counts values spliced onto the stack.
	Pushed uint64
	// Popped counts values detached by any pop or drain variant.
	Popped uint64
	// Released counts nodes handed back for reuse (or to the GC).
	Released uint64
	// Deferred counts nodes parked on the free list instead of being
	// released at once.
	Deferred uint64
	// InFlight is the number of Pop/Drain calls in progress when the
	// snapshot was taken.
	InFlight int64
}

type counters struct {
	pushed   atomic.Uint64
	popped   atomic.Uint64
	released atomic.Uint64
	deferred atomic.Uint64
}

// New creates an empty Stack configured by opts.
// By default nodes are recycled and no counters are kept.
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *Stack[T] {
	s := &Stack[T]{cfg: newConfig(opts...)}
	s.pool.New = func() any { return new(node[T]) }
	if s.cfg.stats {
		s.counter = &counters{}
	}

	return s
}

// Stats returns a snapshot of the stack's counters. Fields are read one by
// one, so under concurrent use they need not be mutually consistent.
func (s *Stack[T]) Stats() Stats {
	st := Stats{InFlight: s.inFlight.Load()}
	if s.counter == nil {
		return st
	}
	st.Pushed = s.counter.pushed.Load()
	st.Popped = s.counter.popped.Load()
	st.Released = s.counter.released.Load()
	st.Deferred = s.counter.deferred.Load()

	return st
}

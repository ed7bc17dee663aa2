// SPDX-License-Identifier: MIT
// Package: lfstack/stack
//
// stack.go — push, pop, drain and the emptiness probe.
//
// Every mutation of head is a CAS retry loop: read head, prepare the new
// value, CAS, and on failure start over from a fresh read. Pop and Drain are
// bracketed by inFlight increments/decrements; see reclaim.go for what the
// bracket protects.

package stack

import "iter"

// Push places v on top of the stack.
// Complexity: O(1) plus CAS retries.
func (s *Stack[T]) Push(v T) {
	n := s.newNode(v)
	s.splice(n, n)
	s.countPushed(1)
}

// PushAll places vs on the stack with a single CAS, so no other operation
// observes a partial batch. vs[0] ends up deepest and vs[len(vs)-1] on top,
// as if the values had been pushed one by one in order.
// An empty vs is a no-op.
// Complexity: O(len(vs)) plus CAS retries.
func (s *Stack[T]) PushAll(vs ...T) {
	if len(vs) == 0 {
		return
	}
	// Build the private chain newest-to-oldest: last is the chain's tail.
	last := s.newNode(vs[0])
	first := last
	for _, v := range vs[1:] {
		n := s.newNode(v)
		n.next.Store(first)
		first = n
	}
	s.splice(first, last)
	s.countPushed(uint64(len(vs)))
}

// PushSeq is PushAll over an iterator. The sequence is consumed completely
// before the chain is published.
func (s *Stack[T]) PushSeq(seq iter.Seq[T]) {
	var first, last *node[T]
	k := 0
	for v := range seq {
		n := s.newNode(v)
		if last == nil {
			last = n
		} else {
			n.next.Store(first)
		}
		first = n
		k++
	}
	if first == nil {
		return
	}
	s.splice(first, last)
	s.countPushed(uint64(k))
}

// Pop removes and returns the top value. ok is false if the stack was
// observed empty.
// Complexity: O(1) plus CAS retries.
func (s *Stack[T]) Pop() (v T, ok bool) {
	s.inFlight.Add(1)
	for top := s.head.Load(); top != nil; top = s.head.Load() {
		// top cannot be released while we are counted in inFlight, so
		// reading its link is safe even if another popper wins the race.
		if !s.head.CompareAndSwap(top, top.next.Load()) {
			continue
		}
		v = take(top)
		top.next.Store(nil) // cut the detached node off the live chain
		s.countPopped(1)
		s.tryFreeMemory()
		s.retire(top, top, 1)

		return v, true
	}
	s.tryFreeMemory()
	s.inFlight.Add(-1)

	return v, false
}

// Drain removes every value with a single CAS and returns them top to
// bottom, i.e. in the order repeated Pop calls would have produced.
// It returns nil if the stack was observed empty.
// Complexity: O(k) for k drained values.
func (s *Stack[T]) Drain() []T {
	return s.DrainInto(nil)
}

// PopAll is an alias of Drain.
func (s *Stack[T]) PopAll() []T {
	return s.DrainInto(nil)
}

// DrainInto is Drain appending to dst. The extended slice is returned;
// dst is returned unchanged if the stack was observed empty.
func (s *Stack[T]) DrainInto(dst []T) []T {
	s.inFlight.Add(1)
	for top := s.head.Load(); top != nil; top = s.head.Load() {
		if !s.head.CompareAndSwap(top, nil) {
			continue
		}
		// The whole chain is ours now; walk it front to back.
		last, k := top, 0
		for n := top; n != nil; n = n.next.Load() {
			dst = append(dst, take(n))
			last = n
			k++
		}
		s.countPopped(uint64(k))
		s.tryFreeMemory()
		s.retire(top, last, k)

		return dst
	}
	s.tryFreeMemory()
	s.inFlight.Add(-1)

	return dst
}

// IsEmpty reports whether the stack was empty at the moment of the check.
// The answer may be stale by the time it is returned if other goroutines
// push or pop concurrently.
func (s *Stack[T]) IsEmpty() bool {
	// Ordering point with in-flight pops; the result is still approximate.
	_ = s.inFlight.Load()

	return s.head.Load() == nil
}

// splice links the private chain first..last on top of head.
func (s *Stack[T]) splice(first, last *node[T]) {
	for {
		top := s.head.Load()
		last.next.Store(top)
		if s.head.CompareAndSwap(top, first) {
			return
		}
	}
}

// take moves the payload out of a detached node.
func take[T any](n *node[T]) T {
	var zero T
	v := n.value
	n.value = zero

	return v
}

func (s *Stack[T]) newNode(v T) *node[T] {
	if !s.cfg.recycle {
		return &node[T]{value: v}
	}
	n := s.pool.Get().(*node[T])
	n.value = v

	return n
}

// SPDX-License-Identifier: MIT
// Package: lfstack/stack
//
// single_consumer.go — fast paths for a single consumer goroutine.
//
// With one consumer, a detached node can never be held by a second popper,
// so the in-flight bracket and the free list are skipped and nodes are
// released right after detachment. Producers may still run concurrently.
// Calling these from more than one goroutine, or alongside Pop/Drain, is a
// precondition violation that is not detected.

package stack

// PopSingleConsumer is Pop for callers that guarantee a single consumer.
// Complexity: O(1) plus CAS retries against concurrent producers.
func (s *Stack[T]) PopSingleConsumer() (v T, ok bool) {
	for top := s.head.Load(); top != nil; top = s.head.Load() {
		if !s.head.CompareAndSwap(top, top.next.Load()) {
			continue
		}
		v = take(top)
		top.next.Store(nil)
		s.countPopped(1)
		s.release(top)

		return v, true
	}

	return v, false
}

// DrainSingleConsumer is Drain for callers that guarantee a single consumer.
// Values are returned top to bottom; nil if the stack was observed empty.
func (s *Stack[T]) DrainSingleConsumer() []T {
	return s.DrainIntoSingleConsumer(nil)
}

// DrainIntoSingleConsumer is DrainSingleConsumer appending to dst.
func (s *Stack[T]) DrainIntoSingleConsumer(dst []T) []T {
	for top := s.head.Load(); top != nil; top = s.head.Load() {
		if !s.head.CompareAndSwap(top, nil) {
			continue
		}
		k := 0
		for n := top; n != nil; n = n.next.Load() {
			dst = append(dst, take(n))
			k++
		}
		s.countPopped(uint64(k))
		s.release(top)

		return dst
	}

	return dst
}

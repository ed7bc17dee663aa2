// SPDX-License-Identifier: MIT
// Package: lfstack/stack
//
// reclaim.go — deferred node reclamation.
//
// Protocol:
//   • Pop/Drain increment inFlight before their first read of head and
//     decrement it only after they stop dereferencing nodes.
//   • A detached node (or chain) is released at once only by the popper whose
//     decrement takes inFlight from 1 to 0. Any popper that could still hold
//     the node was counted when the node was detached, so the count was ≥ 2.
//   • Otherwise the detached nodes are spliced onto freeList. They are no
//     longer reachable from head, so no popper starting later can reach them.
//   • tryFreeMemory releases the whole free list when the caller observes
//     itself as the only operation in flight.
//
// All sync/atomic operations are sequentially consistent, so the 1 → 0
// transition observed by Add(-1) and the == 1 check in tryFreeMemory are
// totally ordered with every popper's increment.

package stack

// tryFreeMemory releases the free list if the caller is the only Pop/Drain
// in flight. It never blocks; losing the CAS race leaves the list for a later
// operation.
func (s *Stack[T]) tryFreeMemory() {
	list := s.freeList.Load()
	if list == nil {
		return
	}
	if s.inFlight.Load() != 1 {
		return
	}
	if s.freeList.CompareAndSwap(list, nil) {
		s.release(list)
	}
}

// retire ends a Pop/Drain that detached the chain first..last of k nodes:
// it leaves the in-flight set and either releases the chain or parks it on
// the free list.
func (s *Stack[T]) retire(first, last *node[T], k int) {
	if s.inFlight.Add(-1) == 0 {
		// Last one out: nobody can be traversing the chain.
		s.release(first)
		return
	}
	for {
		top := s.freeList.Load()
		last.next.Store(top)
		if s.freeList.CompareAndSwap(top, first) {
			break
		}
	}
	if s.counter != nil {
		s.counter.deferred.Add(uint64(k))
	}
}

// release hands every node of the nil-terminated chain starting at n back
// to the node pool and returns how many nodes it released.
func (s *Stack[T]) release(n *node[T]) int {
	k := 0
	for n != nil {
		next := n.next.Load()
		n.next.Store(nil)
		if s.cfg.recycle {
			s.pool.Put(n)
		}
		n = next
		k++
	}
	if s.counter != nil {
		s.counter.released.Add(uint64(k))
	}
	if s.cfg.releaseHook != nil {
		s.cfg.releaseHook(k)
	}

	return k
}

func (s *Stack[T]) countPushed(k uint64) {
	if s.counter != nil {
		s.counter.pushed.Add(k)
	}
}

func (s *Stack[T]) countPopped(k uint64) {
	if s.counter != nil {
		s.counter.popped.Add(k)
	}
}

// Package stack implements an unbounded, multi-producer, multi-consumer,
// lock-free LIFO stack with deferred reclamation of popped nodes.
//
// What:
//
//   - Push / PushAll / PushSeq splice one node or a private chain onto the
//     head with a CAS retry loop.
//   - Pop detaches the head node; Drain detaches the whole chain in one CAS.
//   - PopSingleConsumer / DrainSingleConsumer are narrower-contract fast paths
//     for callers that guarantee a single consumer goroutine.
//   - IsEmpty is a best-effort snapshot.
//
// Why deferred reclamation:
//
// Nodes are recycled through a per-stack pool, so a popped node may come back
// as a fresh node for a later Push. A popper that loaded the old head and is
// about to read head.next would then see a link that belongs to a different
// chain, and its CAS could succeed against the reused address (the ABA
// problem). Every Pop and Drain is therefore counted in inFlight, and a
// detached node is only released once the popper that detached it is the
// last one in flight. Otherwise it is parked on freeList, and whichever
// operation later finds itself alone reclaims the whole free list.
//
//	head ──► [v3] ──► [v2] ──► [v1] ──► nil     live chain
//	freeList ──► [x] ──► [y] ──► nil            detached, not yet released
//
// A node is always in exactly one of: live chain, free list, released.
//
// Progress:
//
// All operations are lock-free, not wait-free: some operation always
// completes, but an individual caller may retry its CAS without bound under
// contention. No operation blocks and none takes a lock.
//
// Single-consumer contract:
//
// PopSingleConsumer and DrainSingleConsumer release detached nodes at once.
// They are safe only while a single goroutine is consuming (producers may be
// concurrent). Mixing them with Pop/Drain on another goroutine, or calling
// them from two goroutines, is a precondition violation and is not detected.
//
// Complexity:
//
//   - Push, Pop:        O(1) amortized, plus retries under contention
//   - PushAll(n):       O(n)
//   - Drain:            O(k) for k detached nodes
//   - IsEmpty, Stats:   O(1)
package stack

// Package lfstack is a lock-free LIFO stack for Go with deferred node
// reclamation, plus the tooling to prove it under load.
//
// What is in the box?
//
//	stack/    — Stack[T]: lock-free Push/PushAll/Pop/Drain, single-consumer
//	            fast paths, node recycling guarded by an in-flight counter
//	            and a free list
//	barrier/  — reusable cyclic barrier for lining goroutines up
//	stress/   — concurrent producer/consumer runner that verifies every
//	            pushed value is popped exactly once
//	cmd/      — the lfstack CLI (demo, stress)
//
// Quick picture:
//
//	head ──► [3] ──► [2] ──► [1] ──► nil
//
//	Push(4): new node → CAS head        Pop(): CAS head → head.next
//
// Why lock-free?
//
//   - No mutex anywhere on the stack's paths; CAS is the only
//     synchronization, so a stalled goroutine never blocks the others.
//   - Recycled nodes keep allocation off the hot path; the reclamation
//     protocol keeps recycling from reintroducing the ABA problem.
//
//	go get github.com/katalvlaran/lfstack/stack
package lfstack

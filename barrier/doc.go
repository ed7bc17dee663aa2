// Package barrier provides a reusable cyclic barrier: a fixed number of
// goroutines block in Wait until all of them have arrived, then all are
// released together and the barrier resets for the next cycle.
//
// Unlike the lock-free stack, the barrier is a blocking primitive and is
// built on sync.Mutex and sync.Cond.
package barrier

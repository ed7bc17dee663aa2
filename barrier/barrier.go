// SPDX-License-Identifier: MIT
// Package: lfstack/barrier
//
// barrier.go — Barrier, its constructor and Wait.

package barrier

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidParties indicates a barrier was requested for fewer than one
// participant.
var ErrInvalidParties = errors.New("barrier: parties must be at least 1")

// Barrier is a cyclic barrier for a fixed number of parties.
//
// cycle identifies the current round; waiters sleep until it changes, which
// keeps a fast goroutine that re-enters Wait from leaking into the round it
// just left.
type Barrier struct {
	mu      sync.Mutex
	cv      *sync.Cond
	parties int    // goroutines required per cycle
	arrived int    // goroutines waiting in the current cycle
	cycle   uint64 // incremented each time the barrier trips
}

// New creates a Barrier that trips once parties goroutines have called Wait.
// Returns ErrInvalidParties if parties < 1.
func New(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParties, parties)
	}
	b := &Barrier{parties: parties}
	b.cv = sync.NewCond(&b.mu)

	return b, nil
}

// Wait blocks until Parties goroutines (this one included) have called Wait
// in the current cycle. Exactly one caller per cycle, the last to arrive,
// gets true; it may be used to run a per-cycle step once.
func (b *Barrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cycle := b.cycle
	b.arrived++
	if b.arrived == b.parties {
		// Trip: open the next cycle and wake everyone from this one.
		b.arrived = 0
		b.cycle++
		b.cv.Broadcast()
		return true
	}
	for cycle == b.cycle {
		b.cv.Wait()
	}

	return false
}

// Parties returns the number of goroutines needed to trip the barrier.
func (b *Barrier) Parties() int {
	return b.parties
}

// Cycle returns how many times the barrier has tripped.
func (b *Barrier) Cycle() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cycle
}

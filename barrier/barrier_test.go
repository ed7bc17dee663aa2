// SPDX-License-Identifier: MIT
// Package barrier_test verifies barrier.Barrier: validation, per-cycle
// release and exactly one serial waiter per cycle.

package barrier_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lfstack/barrier"
	"github.com/stretchr/testify/require"
)

const (
	NParties = 8
	NCycles  = 200
)

// TestNew_InvalidParties checks constructor validation.
func TestNew_InvalidParties(t *testing.T) {
	for _, n := range []int{0, -1} {
		b, err := barrier.New(n)
		require.ErrorIs(t, err, barrier.ErrInvalidParties)
		require.Nil(t, b)
	}
}

// TestBarrier_SingleParty checks a one-party barrier never blocks.
func TestBarrier_SingleParty(t *testing.T) {
	b, err := barrier.New(1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.True(t, b.Wait())
	}
	require.Equal(t, uint64(3), b.Cycle())
	require.Equal(t, 1, b.Parties())
}

// TestBarrier_Cycles checks nobody passes cycle k before everyone reached it,
// and that exactly one waiter per cycle is reported as the serial one.
func TestBarrier_Cycles(t *testing.T) {
	b, err := barrier.New(NParties)
	require.NoError(t, err)

	var arrivals [NCycles]atomic.Int32
	var serials [NCycles]atomic.Int32
	var early atomic.Int32 // passes observed before the cycle was complete

	var wg sync.WaitGroup
	wg.Add(NParties)
	for p := 0; p < NParties; p++ {
		go func() {
			defer wg.Done()
			for c := 0; c < NCycles; c++ {
				arrivals[c].Add(1)
				if b.Wait() {
					serials[c].Add(1)
				}
				if arrivals[c].Load() != NParties {
					early.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	require.Zero(t, early.Load())
	for c := 0; c < NCycles; c++ {
		require.Equal(t, int32(1), serials[c].Load(), "cycle %d", c)
	}
	require.Equal(t, uint64(NCycles), b.Cycle())
}

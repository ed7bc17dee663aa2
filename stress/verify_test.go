// SPDX-License-Identifier: MIT
// Package stress contains white-box tests for verification, configuration
// and consumer termination.

package stress

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfstack/stack"
)

func TestCheckValues(t *testing.T) {
	v := func(p, i uint64) uint64 { return p<<32 | i }

	cases := []struct {
		name string
		seen [][]uint64
		want error
	}{
		{"complete", [][]uint64{{v(0, 1), v(1, 0)}, {v(0, 0), v(1, 1)}}, nil},
		{"duplicate across consumers", [][]uint64{{v(0, 0), v(0, 1), v(1, 0)}, {v(0, 1), v(1, 1)}}, ErrDuplicateValue},
		{"foreign producer", [][]uint64{{v(2, 0)}}, ErrForeignValue},
		{"foreign index", [][]uint64{{v(0, 2)}}, ErrForeignValue},
		{"lost", [][]uint64{{v(0, 0), v(0, 1)}, {v(1, 1)}}, ErrLostValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkValues(2, 2, tc.seen)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	require.Equal(t, defaultProducers, cfg.producers)
	require.Equal(t, defaultConsumers, cfg.consumers)
	require.Equal(t, defaultOpsPerProducer, cfg.opsPerProducer)
	require.Equal(t, defaultBatchSize, cfg.batchSize)
	require.Equal(t, defaultDrainEvery, cfg.drainEvery)
	require.NotNil(t, cfg.logger)

	// Single consumer wins regardless of option order.
	cfg = newConfig(WithSingleConsumer(), WithConsumers(5))
	require.Equal(t, 1, cfg.consumers)
}

// TestConsume_DrainEveryOpTerminates checks that a consumer draining on every
// operation still notices an empty stack once producers are gone.
func TestConsume_DrainEveryOpTerminates(t *testing.T) {
	for _, single := range []bool{false, true} {
		s := stack.New[uint64]()
		s.PushAll(1, 2, 3)
		cfg := newConfig(WithDrainEvery(1))
		cfg.singleConsumer = single

		var producersLeft atomic.Int64 // already zero: producers finished
		var drains atomic.Uint64
		ticks := 0

		local, err := consume(context.Background(), s, cfg, &producersLeft, &drains, func() { ticks++ })
		require.NoError(t, err)
		require.Equal(t, []uint64{3, 2, 1}, local)
		require.Equal(t, uint64(2), drains.Load()) // one full drain, one empty
		require.Zero(t, ticks)
		require.True(t, s.IsEmpty())
	}
}

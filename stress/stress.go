// SPDX-License-Identifier: MIT
// Package: lfstack/stress
//
// stress.go — Run, the producer and consumer loops, and verification.

package stress

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lfstack/barrier"
	"github.com/katalvlaran/lfstack/internal/logging"
	"github.com/katalvlaran/lfstack/stack"
)

// ctxCheckEvery is how many consumer/producer steps pass between context
// checks; ctx.Err takes a lock.
const ctxCheckEvery = 256

// progressEvery rate-limits debug progress lines.
const progressEvery = time.Second

// Run executes one stress run configured by opts and returns its report.
// The returned error wraps ErrDuplicateValue, ErrForeignValue, ErrLostValue,
// ErrNotEmpty or ErrReclaimMismatch when verification fails, or the context
// error when the run was cancelled. A report is returned whenever all
// workers finished, even if verification failed.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	log := cfg.logger

	s := stack.New[uint64](stack.WithStats())
	bar, err := barrier.New(cfg.producers + cfg.consumers)
	if err != nil {
		return nil, fmt.Errorf("stress: %w", err)
	}

	var (
		producersLeft atomic.Int64
		drains        atomic.Uint64
		startedAt     atomic.Int64
		every         = logging.NewEvery(progressEvery)
	)
	producersLeft.Store(int64(cfg.producers))
	seen := make([][]uint64, cfg.consumers)

	log.Info.Printf("stress: %d producers x %d values, %d consumers (single=%v), batch<=%d, drainEvery=%d",
		cfg.producers, cfg.opsPerProducer, cfg.consumers, cfg.singleConsumer, cfg.batchSize, cfg.drainEvery)

	g, gctx := errgroup.WithContext(ctx)
	arrive := func() {
		// The last goroutine through the barrier stamps the start time.
		if bar.Wait() {
			startedAt.Store(time.Now().UnixNano())
		}
	}

	for p := 0; p < cfg.producers; p++ {
		g.Go(func() error {
			arrive()
			defer producersLeft.Add(-1)
			return produce(gctx, s, cfg, p)
		})
	}

	for c := 0; c < cfg.consumers; c++ {
		g.Go(func() error {
			arrive()
			local, err := consume(gctx, s, cfg, &producersLeft, &drains, func() {
				if c == 0 && log.DebugEnabled() && every.ShouldLog() {
					st := s.Stats()
					log.Debug.Printf("stress: pushed=%d popped=%d deferred=%d released=%d",
						st.Pushed, st.Popped, st.Deferred, st.Released)
				}
			})
			seen[c] = local
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.Warning.Printf("stress: aborted: %v", err)
		return nil, fmt.Errorf("stress: run aborted: %w", err)
	}
	elapsed := time.Since(time.Unix(0, startedAt.Load()))

	rep := &Report{
		Producers:      cfg.producers,
		Consumers:      cfg.consumers,
		SingleConsumer: cfg.singleConsumer,
		Drains:         drains.Load(),
		Duration:       elapsed,
	}
	err = verify(cfg, s, seen)
	rep.Stats = s.Stats()
	if err != nil {
		log.Error.Printf("stress: verification failed: %v", err)
		return rep, err
	}
	log.Info.Printf("stress: ok, %s", rep)

	return rep, nil
}

// produce pushes this producer's values, choosing between Push and PushAll
// from a seeded source.
func produce(ctx context.Context, s *stack.Stack[uint64], cfg config, p int) error {
	rng := rand.New(rand.NewSource(cfg.seed + int64(p)))
	batch := make([]uint64, 0, cfg.batchSize)
	base := uint64(p) << 32

	for i, step := 0, 0; i < cfg.opsPerProducer; step++ {
		if step%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		n := 1
		if cfg.batchSize > 1 && rng.Intn(2) == 0 {
			n = 1 + rng.Intn(cfg.batchSize)
		}
		n = min(n, cfg.opsPerProducer-i)
		if n == 1 {
			s.Push(base | uint64(i))
			i++
			continue
		}
		batch = batch[:0]
		for j := 0; j < n; j++ {
			batch = append(batch, base|uint64(i+j))
		}
		s.PushAll(batch...)
		i += n
	}

	return nil
}

// consume pops and drains until every producer is done and the stack is
// observed empty. tick runs once per empty pop or drain.
func consume(ctx context.Context, s *stack.Stack[uint64], cfg config,
	producersLeft *atomic.Int64, drains *atomic.Uint64, tick func()) ([]uint64, error) {
	pop, drainInto := s.Pop, s.DrainInto
	if cfg.singleConsumer {
		pop, drainInto = s.PopSingleConsumer, s.DrainIntoSingleConsumer
	}

	var local []uint64
	for op := 1; ; op++ {
		if op%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return local, err
			}
		}
		if cfg.drainEvery > 0 && op%cfg.drainEvery == 0 {
			n := len(local)
			local = drainInto(local)
			drains.Add(1)
			if len(local) > n {
				continue
			}
			// An empty drain falls through to the termination check.
		} else if v, ok := pop(); ok {
			local = append(local, v)
			continue
		}
		if producersLeft.Load() == 0 && s.IsEmpty() {
			return local, nil
		}
		tick()
		runtime.Gosched()
	}
}

// verify checks conservation of values and of nodes.
func verify(cfg config, s *stack.Stack[uint64], seen [][]uint64) error {
	if err := checkValues(cfg.producers, cfg.opsPerProducer, seen); err != nil {
		return err
	}
	if !s.IsEmpty() {
		return ErrNotEmpty
	}
	// Quiescent: a lone Pop reclaims anything still parked on the free list.
	if _, ok := s.Pop(); ok {
		return ErrNotEmpty
	}
	if st := s.Stats(); st.Released != st.Popped {
		return fmt.Errorf("%w: popped=%d released=%d", ErrReclaimMismatch, st.Popped, st.Released)
	}

	return nil
}

// checkValues verifies that seen holds every value p<<32|i for p < producers
// and i < ops exactly once.
func checkValues(producers, ops int, seen [][]uint64) error {
	hits := make([][]bool, producers)
	for p := range hits {
		hits[p] = make([]bool, ops)
	}
	for _, vs := range seen {
		for _, v := range vs {
			p, i := v>>32, v&(1<<32-1)
			if p >= uint64(producers) || i >= uint64(ops) {
				return fmt.Errorf("%w: %#x", ErrForeignValue, v)
			}
			if hits[p][i] {
				return fmt.Errorf("%w: producer %d value %d", ErrDuplicateValue, p, i)
			}
			hits[p][i] = true
		}
	}
	lost := 0
	first := uint64(0)
	for p, row := range hits {
		for i, hit := range row {
			if !hit {
				if lost == 0 {
					first = uint64(p)<<32 | uint64(i)
				}
				lost++
			}
		}
	}
	if lost > 0 {
		return fmt.Errorf("%w: %d values, first %#x", ErrLostValue, lost, first)
	}

	return nil
}

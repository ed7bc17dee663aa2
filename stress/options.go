// SPDX-License-Identifier: MIT
// Package: lfstack/stress
//
// options.go — functional options and deterministic defaults for Run.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors panic on meaningless input; Run never panics.
//   • WithSingleConsumer forces exactly one consumer whatever
//     WithConsumers says, because the fast paths require it.

package stress

import (
	"math"

	"github.com/katalvlaran/lfstack/internal/logging"
)

// Option customizes a stress run.
type Option func(*config)

// config is the resolved run configuration, passed by value.
type config struct {
	producers      int
	consumers      int
	opsPerProducer int   // values pushed by each producer
	batchSize      int   // max PushAll length; 1 means Push only
	drainEvery     int   // every n-th consumer op drains; 0 disables
	singleConsumer bool  // use PopSingleConsumer / DrainIntoSingleConsumer
	seed           int64 // base seed for producer batch choices
	logger         *logging.Logger
}

const (
	defaultProducers      = 4
	defaultConsumers      = 4
	defaultOpsPerProducer = 100_000
	defaultBatchSize      = 8
	defaultDrainEvery     = 64
	defaultSeed           = int64(1)
)

func newConfig(opts ...Option) config {
	cfg := config{
		producers:      defaultProducers,
		consumers:      defaultConsumers,
		opsPerProducer: defaultOpsPerProducer,
		batchSize:      defaultBatchSize,
		drainEvery:     defaultDrainEvery,
		seed:           defaultSeed,
		logger:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.singleConsumer {
		cfg.consumers = 1
	}

	return cfg
}

// WithProducers sets the number of producer goroutines. Panics if n < 1.
func WithProducers(n int) Option {
	if n < 1 {
		panic("stress: WithProducers(n < 1)")
	}
	return func(c *config) { c.producers = n }
}

// WithConsumers sets the number of consumer goroutines. Panics if n < 1.
func WithConsumers(n int) Option {
	if n < 1 {
		panic("stress: WithConsumers(n < 1)")
	}
	return func(c *config) { c.consumers = n }
}

// WithOpsPerProducer sets how many values each producer pushes.
// Panics if n < 0 or n does not fit in 32 bits (values encode the
// producer index in the high half).
func WithOpsPerProducer(n int) Option {
	if n < 0 || int64(n) > math.MaxUint32 {
		panic("stress: WithOpsPerProducer out of range")
	}
	return func(c *config) { c.opsPerProducer = n }
}

// WithBatchSize sets the largest PushAll batch a producer may use.
// 1 restricts producers to Push. Panics if n < 1.
func WithBatchSize(n int) Option {
	if n < 1 {
		panic("stress: WithBatchSize(n < 1)")
	}
	return func(c *config) { c.batchSize = n }
}

// WithDrainEvery makes every n-th consumer operation a drain instead of a
// pop; 0 disables drains. Panics if n < 0.
func WithDrainEvery(n int) Option {
	if n < 0 {
		panic("stress: WithDrainEvery(n < 0)")
	}
	return func(c *config) { c.drainEvery = n }
}

// WithSingleConsumer runs one consumer on the single-consumer fast paths.
func WithSingleConsumer() Option {
	return func(c *config) { c.singleConsumer = true }
}

// WithSeed sets the base seed; producer p uses seed+p.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithLogger sets the logger for progress and summary lines.
// Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("stress: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

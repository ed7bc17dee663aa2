// SPDX-License-Identifier: MIT
// Package: lfstack/stack
//
// options.go — functional options for New.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors panic on meaningless input (nil hooks).
//     Stack operations themselves never panic.

package stack

// Option customizes a Stack before its first use.
type Option func(*config)

// config holds the resolved options of a Stack.
type config struct {
	recycle     bool      // reuse released nodes for later pushes
	stats       bool      // keep atomic counters
	releaseHook func(int) // observes every reclamation step; may be nil
}

// Defaults: recycling on, counters off, no hook.
const (
	defaultRecycle = true
	defaultStats   = false
)

func newConfig(opts ...Option) config {
	cfg := config{
		recycle: defaultRecycle,
		stats:   defaultStats,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStats enables the counters reported by Stack.Stats.
// Each operation then pays one or two extra atomic adds.
func WithStats() Option {
	return func(c *config) { c.stats = true }
}

// WithoutRecycling makes released nodes unreachable garbage instead of
// reusing them for later pushes. The reclamation protocol still runs.
func WithoutRecycling() Option {
	return func(c *config) { c.recycle = false }
}

// WithReleaseHook registers fn to be called with the number of nodes
// released by each reclamation step (a single pop, a drained chain or a
// reclaimed free list). fn runs on the goroutine doing the reclamation and
// must not call back into the stack.
// Panics on nil.
func WithReleaseHook(fn func(n int)) Option {
	if fn == nil {
		panic("stack: WithReleaseHook(nil)")
	}
	return func(c *config) { c.releaseHook = fn }
}

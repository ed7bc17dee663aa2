// SPDX-License-Identifier: MIT
// Package: lfstack/stress
//
// report.go — the result of a stress run.

package stress

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lfstack/stack"
)

// Report summarizes a finished stress run.
type Report struct {
	Producers      int
	Consumers      int
	SingleConsumer bool

	// Drains counts drain calls, including ones that found the stack empty.
	Drains uint64
	// Duration is measured from the moment all workers passed the start
	// barrier until the last one returned.
	Duration time.Duration
	// Stats is the stack's counter snapshot after verification.
	Stats stack.Stats
}

// Ops returns the number of values pushed plus values popped.
func (r *Report) Ops() uint64 {
	return r.Stats.Pushed + r.Stats.Popped
}

// OpsPerSecond returns throughput over Duration; 0 for an empty duration.
func (r *Report) OpsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Ops()) / r.Duration.Seconds()
}

// DeferredRatio returns the share of popped nodes that went through the
// free list instead of being released at once.
func (r *Report) DeferredRatio() float64 {
	if r.Stats.Popped == 0 {
		return 0
	}
	return float64(r.Stats.Deferred) / float64(r.Stats.Popped)
}

func (r *Report) String() string {
	return fmt.Sprintf("pushed=%d popped=%d drains=%d deferred=%d (%.1f%%) released=%d in %s (%.0f ops/s)",
		r.Stats.Pushed, r.Stats.Popped, r.Drains, r.Stats.Deferred, 100*r.DeferredRatio(),
		r.Stats.Released, r.Duration.Round(time.Microsecond), r.OpsPerSecond())
}

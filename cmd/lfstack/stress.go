// SPDX-License-Identifier: MIT
// Package: lfstack/cmd/lfstack
//
// stress.go — the stress subcommand and its flag validation.

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lfstack/stress"
)

// stressFlags mirrors the stress options; zero timeout means no limit.
type stressFlags struct {
	producers      int
	consumers      int
	ops            int
	batch          int
	drainEvery     int
	singleConsumer bool
	seed           int64
	timeout        time.Duration
}

func newStressCmd() *cobra.Command {
	var f stressFlags
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Hammer one stack with concurrent producers and consumers and verify conservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if f.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, f.timeout)
				defer cancel()
			}

			rep, err := stress.Run(ctx, append(opts, stress.WithLogger(newLogger()))...)
			if rep != nil {
				printReport(cmd, rep)
			}
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", color.GreenString("PASS: every pushed value popped exactly once"))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.producers, "producers", "p", 4, "producer goroutines")
	fl.IntVarP(&f.consumers, "consumers", "c", 4, "consumer goroutines")
	fl.IntVarP(&f.ops, "ops", "n", 100_000, "values pushed per producer")
	fl.IntVar(&f.batch, "batch", 8, "largest PushAll batch (1 = Push only)")
	fl.IntVar(&f.drainEvery, "drain-every", 64, "every n-th consumer op drains (0 = never)")
	fl.BoolVar(&f.singleConsumer, "single-consumer", false, "one consumer on the single-consumer fast paths")
	fl.Int64Var(&f.seed, "seed", 1, "base seed for producer batch choices")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort the run after this long (0 = no limit)")

	return cmd
}

var errBadFlag = errors.New("lfstack: invalid flag value")

// options validates flags before they reach the panicking option
// constructors.
func (f stressFlags) options() ([]stress.Option, error) {
	switch {
	case f.producers < 1:
		return nil, errors.Join(errBadFlag, errors.New("--producers must be >= 1"))
	case f.consumers < 1:
		return nil, errors.Join(errBadFlag, errors.New("--consumers must be >= 1"))
	case f.ops < 0 || int64(f.ops) > 1<<32-1:
		return nil, errors.Join(errBadFlag, errors.New("--ops must be in [0, 2^32)"))
	case f.batch < 1:
		return nil, errors.Join(errBadFlag, errors.New("--batch must be >= 1"))
	case f.drainEvery < 0:
		return nil, errors.Join(errBadFlag, errors.New("--drain-every must be >= 0"))
	}

	opts := []stress.Option{
		stress.WithProducers(f.producers),
		stress.WithConsumers(f.consumers),
		stress.WithOpsPerProducer(f.ops),
		stress.WithBatchSize(f.batch),
		stress.WithDrainEvery(f.drainEvery),
		stress.WithSeed(f.seed),
	}
	if f.singleConsumer {
		opts = append(opts, stress.WithSingleConsumer())
	}

	return opts, nil
}

func printReport(cmd *cobra.Command, rep *stress.Report) {
	label := color.New(color.FgCyan).SprintFunc()
	printf(cmd, "%s %d producers, %d consumers (single=%v)\n", label("workers:"), rep.Producers, rep.Consumers, rep.SingleConsumer)
	printf(cmd, "%s pushed=%d popped=%d drains=%d\n", label("values: "), rep.Stats.Pushed, rep.Stats.Popped, rep.Drains)
	printf(cmd, "%s deferred=%d (%.1f%%) released=%d\n", label("nodes:  "), rep.Stats.Deferred, 100*rep.DeferredRatio(), rep.Stats.Released)
	printf(cmd, "%s %s, %.0f ops/s\n", label("time:   "), rep.Duration.Round(time.Microsecond), rep.OpsPerSecond())
}

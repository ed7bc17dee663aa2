// SPDX-License-Identifier: MIT
// Package: lfstack/cmd/lfstack
//
// demo.go — the demo subcommand.

package main

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lfstack/stack"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the ordering scenarios on a single goroutine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := runDemo()
			ok := color.New(color.FgGreen).SprintFunc()
			for _, l := range lines {
				printf(cmd, "%-34s %s\n", l.step, ok(l.result))
			}
			return nil
		},
	}
}

type demoLine struct {
	step   string
	result string
}

// runDemo replays the scenarios and records each observable result.
func runDemo() []demoLine {
	var out []demoLine
	add := func(step string, v any) {
		out = append(out, demoLine{step: step, result: fmt.Sprint(v)})
	}

	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	v, _ := s.Pop()
	add("push 1,2,3; pop", v)
	v, _ = s.Pop()
	add("pop", v)
	s.Push(4)
	add("push 4; drain", s.Drain())
	add("empty", s.IsEmpty())

	s.PushAll(1, 2, 3, 4, 5, 6)
	add("pushAll [1..6]; drain", s.Drain())

	s.PushSeq(slices.Values([]int{7, 8}))
	v, _ = s.PopSingleConsumer()
	add("pushSeq [7 8]; popSingleConsumer", v)
	add("drainSingleConsumer", s.DrainSingleConsumer())

	_, ok := s.Pop()
	add("pop on empty ok", ok)
	add("drain on empty", s.Drain())

	return out
}

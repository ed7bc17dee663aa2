// Package stack_test provides benchmarks for stack.Stack operations.
package stack_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lfstack/stack"
)

// BenchmarkPushPop measures an uncontended Push followed by Pop.
func BenchmarkPushPop(b *testing.B) {
	s := stack.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		_, _ = s.Pop()
	}
}

// BenchmarkPushPop_NoRecycling is BenchmarkPushPop with node reuse off, to
// show what the pool saves.
func BenchmarkPushPop_NoRecycling(b *testing.B) {
	s := stack.New[int](stack.WithoutRecycling())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		_, _ = s.Pop()
	}
}

// BenchmarkPushPopSingleConsumer measures the single-consumer fast path.
func BenchmarkPushPopSingleConsumer(b *testing.B) {
	s := stack.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		_, _ = s.PopSingleConsumer()
	}
}

// BenchmarkPushAllDrain measures a batch of 64 pushed and drained at once.
func BenchmarkPushAllDrain(b *testing.B) {
	s := stack.New[int]()
	batch := make([]int, 64)
	buf := make([]int, 0, len(batch))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.PushAll(batch...)
		buf = s.DrainInto(buf[:0])
	}
}

// BenchmarkParallelPushPop measures contended Push/Pop pairs on every P.
func BenchmarkParallelPushPop(b *testing.B) {
	s := stack.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s.Push(i)
			_, _ = s.Pop()
			i++
		}
	})
}

// BenchmarkMutexSlice is the locked baseline for BenchmarkParallelPushPop.
func BenchmarkMutexSlice(b *testing.B) {
	var mu sync.Mutex
	var items []int
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			mu.Lock()
			items = append(items, i)
			mu.Unlock()
			mu.Lock()
			if n := len(items); n > 0 {
				items = items[:n-1]
			}
			mu.Unlock()
			i++
		}
	})
}

package stack_test

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lfstack/stack"
)

// ExampleStack demonstrates LIFO order and draining.
func ExampleStack() {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, _ := s.Pop()
	fmt.Println("pop:", v)
	v, _ = s.Pop()
	fmt.Println("pop:", v)

	s.Push(4)
	fmt.Println("drain:", s.Drain())
	fmt.Println("empty:", s.IsEmpty())

	// Output:
	// pop: 3
	// pop: 2
	// drain: [4 1]
	// empty: true
}

// ExampleStack_PushAll shows that a batch keeps its order: the last input
// element is on top.
func ExampleStack_PushAll() {
	s := stack.New[int]()
	s.PushAll(1, 2, 3, 4, 5, 6)
	fmt.Println(s.Drain())

	// Output:
	// [6 5 4 3 2 1]
}

// ExampleStack_Pop shows the empty sentinel.
func ExampleStack_Pop() {
	s := stack.New[string]()
	v, ok := s.Pop()
	fmt.Printf("%q %v\n", v, ok)

	// Output:
	// "" false
}

// ExampleStack_Stats counts work done by concurrent producers.
func ExampleStack_Stats() {
	s := stack.New[int](stack.WithStats())
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				s.Push(i)
			}
		}()
	}
	wg.Wait()

	fmt.Println(len(s.Drain()))
	st := s.Stats()
	fmt.Println(st.Pushed, st.Popped, st.Released)

	// Output:
	// 40
	// 40 40 40
}

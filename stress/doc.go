// Package stress drives a stack.Stack with concurrent producers and
// consumers and checks that what came out is exactly what went in.
//
// Every pushed value is unique: producer p pushes p<<32 | i for
// i in [0, opsPerProducer). After all goroutines join, Run checks that no
// value was popped twice, none was invented, none was lost, the stack
// reports empty, and every popped node was released.
//
// Workers start together behind a barrier.Barrier and are supervised by an
// errgroup.Group; cancelling the context aborts the run.
package stress

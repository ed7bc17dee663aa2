// SPDX-License-Identifier: MIT
// Package: lfstack/stress
//
// errors.go — sentinel errors reported by Run.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Run wraps them with the offending value or count using %w.

package stress

import "errors"

// ErrDuplicateValue indicates a value was returned by more than one
// successful pop or drain.
var ErrDuplicateValue = errors.New("stress: value popped more than once")

// ErrForeignValue indicates a popped value that no producer pushed.
var ErrForeignValue = errors.New("stress: value was never pushed")

// ErrLostValue indicates a pushed value that no consumer ever popped.
var ErrLostValue = errors.New("stress: pushed value never popped")

// ErrNotEmpty indicates the stack still held values after every producer
// and consumer finished.
var ErrNotEmpty = errors.New("stress: stack not empty after run")

// ErrReclaimMismatch indicates that, once quiescent, the number of released
// nodes differs from the number of popped values.
var ErrReclaimMismatch = errors.New("stress: released nodes do not match popped values")

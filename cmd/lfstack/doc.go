// Command lfstack exercises the lock-free stack: a deterministic demo of its
// ordering contracts and a concurrent stress run that verifies conservation.
//
// Usage:
//
//	lfstack demo
//	lfstack stress -p 8 -c 8 -n 100000 --drain-every 64 [--single-consumer] [--timeout 30s]
//
// The persistent --debug flag (or LFSTACK_DEBUG=1) enables debug logging.
package main

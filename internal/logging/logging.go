// SPDX-License-Identifier: MIT
// Package: lfstack/internal/logging
//
// logging.go — per-level loggers and the Every rate limiter.

package logging

import (
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// DebugEnv enables debug output when set to "1" or "true".
const DebugEnv = "LFSTACK_DEBUG"

const flags = log.Ldate | log.Ltime | log.Lmicroseconds

// Logger bundles one *log.Logger per level. All levels share a writer.
type Logger struct {
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	Debug   *log.Logger

	debug bool
}

// New returns loggers writing to w. Debug output is discarded unless debug
// is true or DebugEnv is set.
func New(w io.Writer, debug bool) *Logger {
	debug = debug || DebugFromEnv()
	l := &Logger{
		Info:    log.New(w, "INFO: ", flags),
		Warning: log.New(w, "WARNING: ", flags),
		Error:   log.New(w, "ERROR: ", flags),
		Debug:   log.New(io.Discard, "", 0),
		debug:   debug,
	}
	if debug {
		l.Debug = log.New(w, "DEBUG: ", flags|log.Lshortfile)
	}

	return l
}

// Discard returns loggers that drop everything.
func Discard() *Logger {
	d := log.New(io.Discard, "", 0)
	return &Logger{Info: d, Warning: d, Error: d, Debug: d}
}

// DebugEnabled reports whether l writes debug output.
func (l *Logger) DebugEnabled() bool {
	return l.debug
}

// DebugFromEnv reports whether DebugEnv asks for debug output.
func DebugFromEnv() bool {
	v := os.Getenv(DebugEnv)
	return v == "1" || v == "true"
}

// Every gates a repeated log line so it is emitted at most once per
// interval. Unlike a bare timer check, ShouldLog may be called from several
// goroutines at once: the timer is created and re-armed under mu, so only one
// caller wins each interval.
type Every struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer // nil until the first ShouldLog
}

// NewEvery returns an Every that lets one line through per interval.
// The first call to ShouldLog always succeeds.
func NewEvery(interval time.Duration) *Every {
	return &Every{interval: interval}
}

// ShouldLog reports whether the caller may log now. A true result starts a
// new interval.
func (e *Every) ShouldLog() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer == nil {
		e.timer = time.NewTimer(e.interval)
		return true
	}
	select {
	case <-e.timer.C:
		e.timer.Reset(e.interval)
		return true
	default:
		return false
	}
}

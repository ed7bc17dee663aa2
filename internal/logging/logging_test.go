// SPDX-License-Identifier: MIT
// Package logging verifies level routing, debug gating and Every.

package logging

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Info.Print("hello")
	l.Warning.Print("careful")
	l.Error.Print("boom")
	l.Debug.Print("hidden")

	out := buf.String()
	require.Contains(t, out, "INFO: ")
	require.Contains(t, out, "WARNING: ")
	require.Contains(t, out, "ERROR: ")
	require.NotContains(t, out, "hidden")
	require.False(t, l.DebugEnabled())
}

func TestNew_DebugFromFlagAndEnv(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(DebugEnv, "")
	l := New(&buf, true)
	l.Debug.Print("visible")
	require.Contains(t, buf.String(), "DEBUG: ")
	require.True(t, l.DebugEnabled())

	buf.Reset()
	t.Setenv(DebugEnv, "1")
	l = New(&buf, false)
	l.Debug.Print("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info.Print("nothing")
	require.False(t, l.DebugEnabled())
}

func TestEvery(t *testing.T) {
	e := NewEvery(time.Hour)
	require.True(t, e.ShouldLog())
	require.False(t, e.ShouldLog())

	e = NewEvery(time.Millisecond)
	require.True(t, e.ShouldLog())
	require.Eventually(t, e.ShouldLog, time.Second, time.Millisecond)
}

func TestEvery_ConcurrentCallersShareOneInterval(t *testing.T) {
	const callers = 32
	e := NewEvery(time.Hour)

	var wins atomic.Int32
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			if e.ShouldLog() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
}

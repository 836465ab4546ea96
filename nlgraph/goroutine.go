// SPDX-License-Identifier: MIT
// File: goroutine.go
// Role: goroutine-id extraction, used only to key the thread-local graph
// context stack (spec §5: "The NLGraph context stack is thread-local").
// Go exposes no public goroutine-id API; this is the same technique the
// wider ecosystem uses for the same problem (e.g. petermattis/goid) —
// parse the numeric id out of the leading "goroutine N [...]:" line that
// runtime.Stack always produces for the calling goroutine.

package nlgraph

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID returns a small-ish integer unique to the calling
// goroutine for the lifetime of that goroutine. Not exported: callers
// never need the raw id, only the stack keyed by it (see context.go).
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	// buf looks like: "goroutine 18 [running]:\n..."
	const prefix = "goroutine "
	idx := bytes.Index(buf, []byte(prefix))
	if idx < 0 {
		return 0
	}
	rest := buf[idx+len(prefix):]
	end := bytes.IndexByte(rest, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(rest[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

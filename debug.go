package easel

import (
	"fmt"
	"os"
)

// globalDebug enables invariant checks and stderr diagnostics. Off by
// default; flip with SetDebugMode.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, history
// invariant violations panic with descriptive messages and restore timings
// are logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugLogf prints a diagnostic line to stderr. Only called behind
// globalDebug checks.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}

// debugCheckHistory panics when the history sequence violates its
// invariants. Called after commit in debug mode; violations here are always
// programming errors in easel itself, never caller mistakes.
func debugCheckHistory(h *History) {
	n := len(h.snapshots)
	if n > h.capacity {
		panic(fmt.Sprintf("easel debug: history length %d exceeds capacity %d", n, h.capacity))
	}
	if n == 0 && h.cursor != -1 {
		panic(fmt.Sprintf("easel debug: empty history with cursor %d", h.cursor))
	}
	if n > 0 && (h.cursor < 0 || h.cursor >= n) {
		panic(fmt.Sprintf("easel debug: cursor %d out of range [0, %d)", h.cursor, n))
	}
}

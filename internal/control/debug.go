// Package control drives the transform engine from pointer gestures.
package control

import (
	"log"
	"sync/atomic"
)

// debugGestures controls whether per-event gesture logs are emitted.
var debugGestures atomic.Bool

// SetDebugLogging enables/disables verbose gesture logs.
func SetDebugLogging(enabled bool) {
	debugGestures.Store(enabled)
}

// debugf logs only when debug logging is enabled.
func debugf(format string, args ...any) {
	if debugGestures.Load() {
		log.Printf("control: "+format, args...)
	}
}

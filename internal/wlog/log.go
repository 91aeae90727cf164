// Package wlog is a tiny env-gated debug logger, grounded on the teacher's
// own debugFlush/TimingString pattern of gating diagnostic output behind
// an environment variable rather than pulling in a structured logging
// dependency.
package wlog

import (
	"log"
	"os"
)

var enabled = os.Getenv("WEFT_DEBUG") != ""

var logger = log.New(os.Stderr, "weft: ", log.Ltime|log.Lmicroseconds)

// Debugf logs a formatted message when WEFT_DEBUG is set in the
// environment; otherwise it's a no-op.
func Debugf(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// Enabled reports whether debug logging is currently on.
func Enabled() bool { return enabled }

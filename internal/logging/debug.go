package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

var (
	output  io.Writer = os.Stderr
	verbose atomic.Bool
)

// DebugEnabled returns true if debug mode is enabled via the TODO_DEBUG
// environment variable or SetVerbose.
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TODO_DEBUG") != ""
}

// SetVerbose turns debug output on regardless of TODO_DEBUG.
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	previous := output
	output = w
	return previous
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(output, format, args...)
	}
}


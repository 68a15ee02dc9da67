package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugEnvVar forces debug logging when set to any non-empty value.
const DebugEnvVar = "TODO_DEBUG"

// debugOut receives Debugf/Debugln output; stdout belongs to the menu.
var debugOut io.Writer = os.Stderr

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(debugOut, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(debugOut, args...)
	}
}

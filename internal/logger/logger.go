package logger

import (
	"github.com/fatih/color" // Colored console output for the different log levels
)

// Colorized printing functions for the log levels, defined as package-level
// variables holding fmt.Printf-shaped functions. Callers include their own
// [INFO]/[WARN]/[ERROR]/[DEBUG] prefix so that grepping a captured run log
// stays trivial even when colors are stripped.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta, visually distinct from both
// routine info and fatal errors.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Dry logs the commands and writes that a dry run suppressed, in yellow.
// It is always enabled; dry-run output is the whole point of the mode.
var Dry = color.New(color.FgYellow).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise it is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger, enabling or disabling debug output.
// When disabled, Debug is a no-op function so call sites need no guards.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Keep Debug callable even if Init was never reached (early failures,
	// package-level tests).
	Init(false)
}

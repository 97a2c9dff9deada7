package log

import (
	"fmt"
	"io"
	"os"
)

var (
	// Out is where diagnostics are written
	Out io.Writer = os.Stderr

	// Verbose enables Trace output
	Verbose = false
)

// Err prints a diagnostic to Out according to format.  It also prepends the
// program name and appends a newline, much like the warnx(3) function from C.
// Exiting is left to the caller.
func Err(format string, args ...any) {
	fmt.Fprintf(Out, "tiny: "+format+"\n", args...)
}

// Trace is like Err, but only prints anything when Verbose is set.
func Trace(format string, args ...any) {
	if Verbose {
		fmt.Fprintf(Out, "tiny: trace: "+format+"\n", args...)
	}
}

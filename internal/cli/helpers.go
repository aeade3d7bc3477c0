package cli

import (
	"fmt"
	"io"
)

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

// hasHelpFlag reports whether args contains a bare -h/--help anywhere,
// including after positional arguments, so a subcommand can short-circuit flag parsing and
// print its own usage instead of pflag's generic error output.
func hasHelpFlag(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

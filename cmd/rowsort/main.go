// Command rowsort is a thin wrapper around internal/cli exposing the
// row codec and external sorter for manual invocation and inspection.
package main

import (
	"os"
	"strings"

	"rowsort/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, env))
}

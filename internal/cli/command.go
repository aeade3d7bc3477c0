package cli

import "io"

// command describes one rowsort subcommand. Exec receives only the
// arguments after the subcommand name and returns a process exit code,
// matching the convention cmd/rowsort/main.go passes through to
// os.Exit.
type command struct {
	name  string
	usage string
	short string
	exec  func(stdout, stderr io.Writer, args []string) int
}

func (c *command) printHelp(out io.Writer) {
	fprintln(out, "Usage: rowsort", c.usage)
	fprintln(out)
	fprintln(out, c.short)
}

// Package cli implements the rowsort command-line dispatcher: a small
// set of subcommands over the schema and extsort packages, in the
// global-flags-then-subcommand style used elsewhere in the corpus.
package cli

import (
	"io"
)

// Run is cmd/rowsort's entire implementation: parse the subcommand out
// of args (os.Args, including the program name at index 0), dispatch,
// and return a process exit code. stdin is accepted for symmetry with
// the corpus's Run signature even though no current subcommand reads
// from it.
func Run(stdin io.Reader, stdout, errOut io.Writer, args []string, env map[string]string) int {
	commands := allCommands(env)

	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printUsage(stdout, commands)
		if len(args) < 2 {
			return 1
		}
		return 0
	}

	name := args[1]
	for _, c := range commands {
		if c.name == name {
			if hasHelpFlag(args[2:]) {
				c.printHelp(stdout)
				return 0
			}
			return c.exec(stdout, errOut, args[2:])
		}
	}

	fprintln(errOut, "error: unknown command:", name)
	printUsage(errOut, commands)
	return 2
}

func printUsage(out io.Writer, commands []*command) {
	fprintln(out, "Usage: rowsort <command> [flags] [args]")
	fprintln(out)
	fprintln(out, "Commands:")
	for _, c := range commands {
		fprintf(out, "  %-10s %s\n", c.name, c.short)
	}
}

func allCommands(env map[string]string) []*command {
	return []*command{
		sortCommand(env),
		dumpCommand(),
		inspectCommand(),
	}
}

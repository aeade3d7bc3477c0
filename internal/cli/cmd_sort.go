package cli

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"rowsort/extsort"
	"rowsort/internal/diag"
	"rowsort/schema"
)

const scratchDirEnv = "ROWSORT_SCRATCH_DIR"

func sortCommand(env map[string]string) *command {
	return &command{
		name:  "sort",
		usage: "sort --schema <file.jsonc> [--scratch <dir>] [-v] <input> <output>",
		short: "externally sort a row file by the columns named in a schema document",
		exec: func(stdout, errOut io.Writer, args []string) int {
			return runSort(stdout, errOut, args, env)
		},
	}
}

func runSort(stdout, errOut io.Writer, args []string, env map[string]string) int {
	flagSet := flag.NewFlagSet("sort", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	schemaPath := flagSet.String("schema", "", "path to the schema/plan document")
	scratchDir := flagSet.String("scratch", env[scratchDirEnv], "directory for intermediate files")
	verbose := flagSet.BoolP("verbose", "v", false, "log sort-pipeline progress to stderr")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)
		return 2
	}
	rest := flagSet.Args()
	if *schemaPath == "" || len(rest) != 2 {
		fprintln(errOut, "error: usage: rowsort sort --schema <file.jsonc> [--scratch <dir>] <input> <output>")
		return 2
	}
	input, output := rest[0], rest[1]

	if *scratchDir == "" {
		*scratchDir = os.TempDir()
	}

	sch, plan, err := schema.Load(*schemaPath)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	var logger *diag.Logger
	if *verbose {
		logger = diag.NewLogger(errOut, true)
	}
	manifest := diag.NewManifest(logger)

	resultPath, err := extsort.Sort(input, sch, plan.KeyIndices, *scratchDir, plan.BlockSize, plan.Ascending, extsort.WithObserver(manifest))
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	data, err := os.ReadFile(resultPath)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	_ = os.Remove(resultPath)

	if outstanding := manifest.Outstanding(); len(outstanding) > 0 {
		fprintln(errOut, "warning:", manifest.String())
	}

	return 0
}

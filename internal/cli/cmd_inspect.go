package cli

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"rowsort/rowcodec"
	"rowsort/schema"
)

func inspectCommand() *command {
	return &command{
		name:  "inspect",
		usage: "inspect --schema <file.jsonc> <input>",
		short: "print row count, byte size, and per-column null counts",
		exec:  runInspect,
	}
}

func runInspect(stdout, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	schemaPath := flagSet.String("schema", "", "path to the schema/plan document")

	if err := flagSet.Parse(args); err != nil {
		fprintln(errOut, "error:", err)
		return 2
	}
	rest := flagSet.Args()
	if *schemaPath == "" || len(rest) != 1 {
		fprintln(errOut, "error: usage: rowsort inspect --schema <file.jsonc> <input>")
		return 2
	}
	path := rest[0]

	sch, _, err := schema.Load(*schemaPath)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	info, err := os.Stat(path)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}

	rows, residual, err := rowcodec.Decode(sch, data)
	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	if len(residual) != 0 {
		fprintln(errOut, "error: trailing", len(residual), "byte(s) after the last complete row")
		return 1
	}

	nullCounts := make([]int, len(sch))
	for _, row := range rows {
		for i, v := range row {
			if v == nil {
				nullCounts[i]++
			}
		}
	}

	fprintf(stdout, "path: %s\n", path)
	fprintf(stdout, "size: %d bytes\n", info.Size())
	fprintf(stdout, "rows: %d\n", len(rows))
	fprintf(stdout, "columns: %d\n", len(sch))
	for i, ct := range sch {
		fprintf(stdout, "  [%d] %s: %d null(s)\n", i, ct, nullCounts[i])
	}

	return 0
}

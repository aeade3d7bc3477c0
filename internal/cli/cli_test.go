package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rowsort/rowcodec"
)

func writeSchema(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"columns": ["int", "string"], "keys": [0]}`), 0o644))
	return path
}

func writeInput(t *testing.T, dir string, rows []rowcodec.Row) string {
	t.Helper()
	schema := []rowcodec.CellType{rowcodec.CellInt, rowcodec.CellString}
	buf, err := rowcodec.Encode(schema, rows)
	require.NoError(t, err)
	path := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestRunNoArgsPrintsUsageAndFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort"}, nil)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Usage:")
}

func TestRunHelpFlagExitsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort", "--help"}, nil)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Usage:")
}

func TestRunUnknownCommandExitsTwo(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort", "bogus"}, nil)
	require.Equal(t, 2, code)
	require.Contains(t, errOut.String(), "unknown command")
}

func TestRunSortEndToEnd(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir)
	input := writeInput(t, dir, []rowcodec.Row{
		{int32(2), "b"},
		{int32(1), "a"},
	})
	output := filepath.Join(dir, "output")

	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{
		"rowsort", "sort", "--schema", schemaPath, "--scratch", dir, input, output,
	}, nil)
	require.Equal(t, 0, code, errOut.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	rows, residual, err := rowcodec.Decode([]rowcodec.CellType{rowcodec.CellInt, rowcodec.CellString}, data)
	require.NoError(t, err)
	require.Empty(t, residual)
	require.Equal(t, []rowcodec.Row{{int32(1), "a"}, {int32(2), "b"}}, rows)
}

func TestRunSortMissingArgsExitsTwo(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort", "sort"}, nil)
	require.Equal(t, 2, code)
}

func TestRunDumpPrintsRows(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir)
	input := writeInput(t, dir, []rowcodec.Row{{int32(1), "a"}, {nil, "b"}})

	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort", "dump", "--schema", schemaPath, input}, nil)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "1\ta")
	require.Contains(t, out.String(), "NULL\tb")
}

func TestRunInspectPrintsSummary(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir)
	input := writeInput(t, dir, []rowcodec.Row{{int32(1), "a"}, {nil, "b"}})

	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{"rowsort", "inspect", "--schema", schemaPath, input}, nil)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), "rows: 2")
	require.Contains(t, out.String(), "1 null(s)")
}

func TestRunSortUsesScratchDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeSchema(t, dir)
	input := writeInput(t, dir, []rowcodec.Row{{int32(1), "a"}})
	output := filepath.Join(dir, "output")

	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut, []string{
		"rowsort", "sort", "--schema", schemaPath, input, output,
	}, map[string]string{scratchDirEnv: dir})
	require.Equal(t, 0, code, errOut.String())
	require.FileExists(t, output)
}

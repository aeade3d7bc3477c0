package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rowsort/extsort"
	"rowsort/rowcodec"
)

func TestManifestHasNoOutstandingAfterSuccessfulSort(t *testing.T) {
	dir := t.TempDir()
	schema := []rowcodec.CellType{rowcodec.CellInt}
	buf, err := rowcodec.Encode(schema, []rowcodec.Row{{int32(3)}, {int32(1)}, {int32(2)}})
	require.NoError(t, err)
	input := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(input, buf, 0o644))

	var logBuf bytes.Buffer
	logger := NewLogger(&logBuf, true)
	manifest := NewManifest(logger)

	out, err := extsort.Sort(input, schema, []int{0}, dir, 4096, true, extsort.WithObserver(manifest))
	require.NoError(t, err)
	require.NotEmpty(t, out)

	require.Empty(t, manifest.Outstanding(), manifest.String())
	require.Contains(t, logBuf.String(), "sort pass starting")
}

func TestLoggerDebugfSilentWithoutVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, false)
	logger.Debugf("should not appear")
	require.Empty(t, buf.String())

	logger.Infof("should appear")
	require.Contains(t, buf.String(), "should appear")
}

func TestManifestStringFormatsOutstanding(t *testing.T) {
	manifest := NewManifest(nil)
	manifest.ScratchCreated("/tmp/a")
	require.Contains(t, manifest.String(), "/tmp/a")
	manifest.ScratchRemoved("/tmp/a")
	require.Equal(t, "manifest: no outstanding scratch files", manifest.String())
}

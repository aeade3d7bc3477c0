package extsort

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rowsort/rowcodec"
)

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) PassStart(key int)             { r.events = append(r.events, "pass-start") }
func (r *recordingObserver) PassEnd(key int, path string)  { r.events = append(r.events, "pass-end") }
func (r *recordingObserver) SplitStart(path string)        { r.events = append(r.events, "split") }
func (r *recordingObserver) MergeStart(left, right string) { r.events = append(r.events, "merge") }
func (r *recordingObserver) ScratchCreated(path string)    { r.events = append(r.events, "created") }
func (r *recordingObserver) ScratchRemoved(path string)    { r.events = append(r.events, "removed") }

func TestWithObserverReceivesPassEvents(t *testing.T) {
	dir := t.TempDir()
	schema := []rowcodec.CellType{rowcodec.CellInt}
	buf, err := rowcodec.Encode(schema, []rowcodec.Row{{int32(2)}, {int32(1)}})
	require.NoError(t, err)
	input := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(input, buf, 0o644))

	obs := &recordingObserver{}
	_, err = Sort(input, schema, []int{0}, dir, 4096, true, WithObserver(obs))
	require.NoError(t, err)

	require.Contains(t, obs.events, "pass-start")
	require.Contains(t, obs.events, "pass-end")
	require.Contains(t, obs.events, "created")
}

func TestWithObserverNilIsNoop(t *testing.T) {
	cfg := newConfig([]Option{WithObserver(nil)})
	require.IsType(t, noopObserver{}, cfg.observer)
}

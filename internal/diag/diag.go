// Package diag supplies the logging and scratch-file bookkeeping that
// cmd/rowsort wires into extsort.Sort through extsort.WithObserver. Sort
// itself has no notion of logging or manifests; diag is the seam where
// those ambient concerns live, kept out of the sort algorithm proper.
package diag

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger wraps the standard library logger with the leveled Infof/
// Debugf/Errorf calls the rest of this package and cmd/rowsort use.
// Debugf is silent unless verbose is set, matching the corpus's plain
// stdlib log convention rather than reaching for a structured logging
// library (see DESIGN.md).
type Logger struct {
	out     *log.Logger
	verbose bool
}

// NewLogger returns a Logger writing to w. Debugf is a no-op unless
// verbose is true.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), verbose: verbose}
}

func (l *Logger) Infof(format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("INFO  "+format, args...)
}

func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.out.Printf("DEBUG "+format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("ERROR "+format, args...)
}

// Manifest tracks scratch files created and removed over the course of
// one extsort.Sort call. Outstanding reports paths that were created
// but never removed, other than the result of the last completed pass
// (the file Sort returns), which should be empty once Sort returns
// successfully; a non-empty result after a successful run points at a
// bug in extsort's cleanup, not at the caller.
//
// Manifest implements extsort.Observer directly so cmd/rowsort can pass
// one to extsort.WithObserver without an adapter.
type Manifest struct {
	log *Logger

	mu      sync.Mutex
	created map[string]bool
	result  string
}

// NewManifest returns a Manifest that also logs each event through log.
// log may be nil to track scratch files silently.
func NewManifest(log *Logger) *Manifest {
	return &Manifest{log: log, created: make(map[string]bool)}
}

func (m *Manifest) PassStart(key int) {
	m.log.Infof("sort pass starting on key column %d", key)
}

func (m *Manifest) PassEnd(key int, resultPath string) {
	m.mu.Lock()
	m.result = resultPath
	m.mu.Unlock()
	m.log.Infof("sort pass on key column %d complete, result %s", key, resultPath)
}

func (m *Manifest) SplitStart(path string) {
	m.log.Debugf("splitting %s", path)
}

func (m *Manifest) MergeStart(left, right string) {
	m.log.Debugf("merging %s + %s", left, right)
}

func (m *Manifest) ScratchCreated(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[path] = true
	m.log.Debugf("scratch file created: %s", path)
}

func (m *Manifest) ScratchRemoved(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.created, path)
	m.log.Debugf("scratch file removed: %s", path)
}

// Outstanding returns the scratch paths created but not yet removed, in
// no particular order, leaving out the result path of the last completed
// pass. A caller can assert this is empty after a successful Sort call
// to confirm extsort left no litter behind.
func (m *Manifest) Outstanding() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.created))
	for p := range m.created {
		if p == m.result {
			continue
		}
		paths = append(paths, p)
	}
	return paths
}

// String renders the outstanding set for error messages and test
// failure output.
func (m *Manifest) String() string {
	paths := m.Outstanding()
	if len(paths) == 0 {
		return "manifest: no outstanding scratch files"
	}
	return fmt.Sprintf("manifest: %d outstanding scratch file(s): %v", len(paths), paths)
}

package extsort

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
)

// scratchCounter is the process-wide monotonic counter backing the
// unique-name generator. It is a package-level atomic rather than a
// mutex-guarded singleton because the only operation it needs to
// serialize is a single increment; concurrent Sort calls are not
// supported regardless (see SPEC_FULL.md §5), but the counter itself stays
// race-free for the lifetime of the process.
var scratchCounter uint64

// nextScratchName returns the next lexicographically-unique, zero-padded
// 15-digit decimal fragment. Padding width is chosen so that plain
// string comparison of names agrees with numeric order for any run
// short of 10^15 intermediate files.
func nextScratchName() string {
	n := atomic.AddUint64(&scratchCounter, 1) - 1
	return fmt.Sprintf("%015d", n)
}

// newScratchPath joins a fresh unique name under dir.
func newScratchPath(dir string) string {
	return filepath.Join(dir, nextScratchName())
}

// Package extsort implements an external merge sort over files framed by
// package rowcodec. It sorts files larger than memory using bounded
// working-set recursion: split on row boundaries, recurse, merge.
package extsort

import (
	"fmt"
	"os"
	"sort"

	"rowsort/rowcodec"
)

// sorter carries the parameters and shared state of one top-level Sort
// call across its recursive split/sort/merge steps.
type sorter struct {
	schema        []rowcodec.CellType
	scratchDir    string
	blockSize     int
	ascending     bool
	originalInput string
	obs           Observer
}

// Sort reproduces path's rows ordered by the key tuple named by
// keyIndices (most-significant column first), written to a new file
// under scratchDir. The input file is never modified or deleted. Any
// intermediate files the sort creates are removed before Sort returns
// successfully; on error, partially-written scratch files are left in
// place for inspection.
//
// keyIndices must be non-empty and none of its columns may have BYTES
// type, since blob comparison is undefined. blockSize must exceed the
// size of the largest encoded row in path; it bounds both the I/O chunk
// size and the in-memory row buffer for one split/merge step.
func Sort(
	path string,
	schema []rowcodec.CellType,
	keyIndices []int,
	scratchDir string,
	blockSize int,
	ascending bool,
	opts ...Option,
) (string, error) {
	if err := rowcodec.ValidateSchema(schema); err != nil {
		return "", err
	}
	if len(keyIndices) == 0 {
		return "", fmt.Errorf("%w: key_indices must be non-empty", ErrInvalidArgs)
	}
	if blockSize <= 0 {
		return "", fmt.Errorf("%w: block_size must be positive, got %d", ErrInvalidArgs, blockSize)
	}
	for _, key := range keyIndices {
		if key < 0 || key >= len(schema) {
			return "", fmt.Errorf("%w: key index %d out of range for a %d-column schema", ErrInvalidArgs, key, len(schema))
		}
		if schema[key] == rowcodec.CellBytes {
			return "", fmt.Errorf("%w: column %d", ErrBlobKey, key)
		}
	}

	cfg := newConfig(opts)
	s := &sorter{
		schema:        schema,
		scratchDir:    scratchDir,
		blockSize:     blockSize,
		ascending:     ascending,
		originalInput: path,
		obs:           cfg.observer,
	}

	// Stable sort least-significant key first, most-significant last:
	// each later pass's stability preserves the relative order already
	// established by the earlier, less-significant passes.
	working := path
	for i := len(keyIndices) - 1; i >= 0; i-- {
		key := keyIndices[i]
		s.obs.PassStart(key)
		next, err := s.sortBy(working, key)
		if err != nil {
			return "", err
		}
		s.obs.PassEnd(key, next)
		working = next
	}
	return working, nil
}

// sortBy recursively sorts path by a single key column.
func (s *sorter) sortBy(path string, key int) (string, error) {
	size, err := fileSize(path)
	if err != nil {
		return "", err
	}
	if size <= int64(s.blockSize) {
		return s.sortBaseCase(path, key)
	}

	s.obs.SplitStart(path)
	left, right, err := s.split(path)
	if err != nil {
		return "", err
	}

	sortedLeft, err := s.sortBy(left, key)
	if err != nil {
		return "", err
	}
	sortedRight, err := s.sortBy(right, key)
	if err != nil {
		return "", err
	}

	s.obs.MergeStart(sortedLeft, sortedRight)
	return s.merge(sortedLeft, sortedRight, key)
}

// sortBaseCase sorts a file that already fits within one block: read it
// whole, decode, stable-sort in memory, write to a fresh scratch file.
func (s *sorter) sortBaseCase(path string, key int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	rows, residual, err := rowcodec.Decode(s.schema, data)
	if err != nil {
		return "", err
	}
	if len(residual) != 0 {
		return "", fmt.Errorf("%w: %d trailing byte(s) in %s", rowcodec.ErrCorrupt, len(residual), path)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		// compareKey cannot fail here: Sort already rejected BYTES key
		// columns before any recursion started.
		return s.compareKey(rows[i][key], rows[j][key], key) < 0
	})

	encoded, err := rowcodec.Encode(s.schema, rows)
	if err != nil {
		return "", err
	}

	newPath := newScratchPath(s.scratchDir)
	if err := os.WriteFile(newPath, encoded, 0o644); err != nil {
		return "", err
	}
	s.obs.ScratchCreated(newPath)

	if err := s.removeIfScratch(path); err != nil {
		return "", err
	}
	return newPath, nil
}

// compareKey orders two (possibly null) key values under this sorter's
// direction and null policy: nulls sort first in ascending order, last
// in descending order. It returns <0, 0, or >0 the same way
// rowcodec.CompareValues does.
func (s *sorter) compareKey(a, b any, key int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if s.ascending {
			return -1
		}
		return 1
	case b == nil:
		if s.ascending {
			return 1
		}
		return -1
	}

	cmp, _ := rowcodec.CompareValues(s.schema[key], a, b)
	if !s.ascending {
		cmp = -cmp
	}
	return cmp
}

package extsort

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"rowsort/rowcodec"
)

// split divides path into two row-aligned files whose sizes straddle the
// midpoint. It never decodes a row's cells, only its length prefix, so a
// split step costs one sequential scan plus two bounded-memory copies
// regardless of how wide the rows are.
func (s *sorter) split(path string) (left, right string, err error) {
	size, err := fileSize(path)
	if err != nil {
		return "", "", err
	}

	boundary, err := findSplitBoundary(path, size)
	if err != nil {
		return "", "", err
	}

	leftPath := newScratchPath(s.scratchDir)
	rightPath := newScratchPath(s.scratchDir)

	if err := copyRange(path, leftPath, 0, boundary, s.blockSize); err != nil {
		return "", "", err
	}
	s.obs.ScratchCreated(leftPath)

	if err := copyRange(path, rightPath, boundary, size, s.blockSize); err != nil {
		return "", "", err
	}
	s.obs.ScratchCreated(rightPath)

	if err := s.removeIfScratch(path); err != nil {
		return "", "", err
	}

	return leftPath, rightPath, nil
}

// findSplitBoundary returns the first row-start offset >= size/2. If the
// whole file is a single row, the boundary lands at end-of-file and the
// right half ends up empty.
func findSplitBoundary(path string, size int64) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	half := size / 2
	lenBuf := make([]byte, 4)
	var offset int64
	for offset < half {
		if _, err := io.ReadFull(f, lenBuf); err != nil {
			return 0, fmt.Errorf("%w: reading row length at offset %d of %s: %v", rowcodec.ErrCorrupt, offset, path, err)
		}
		rowLen := binary.LittleEndian.Uint32(lenBuf)
		if rowLen < 4 {
			return 0, fmt.Errorf("%w: declared row length %d at offset %d of %s", rowcodec.ErrCorrupt, rowLen, offset, path)
		}
		if _, err := f.Seek(int64(rowLen)-4, io.SeekCurrent); err != nil {
			return 0, err
		}
		offset += int64(rowLen)
	}
	return offset, nil
}

// copyRange copies bytes [start, end) of src into a new file dst, using
// blockSize-sized chunks so the copy itself stays within the memory
// budget regardless of range size.
func copyRange(srcPath, dstPath string, start, end int64, blockSize int) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	buf := make([]byte, blockSize)
	remaining := end - start
	for remaining > 0 {
		chunk := int64(blockSize)
		if chunk > remaining {
			chunk = remaining
		}
		n, err := io.ReadFull(src, buf[:chunk])
		if err != nil {
			return err
		}
		if _, err := dst.Write(buf[:n]); err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return nil
}

package extsort

import (
	"os"

	"rowsort/rowcodec"
)

// merge streams left and right — both already sorted by key — into one
// new file in ascending-or-descending key order, breaking ties in favor
// of the left side to preserve stability.
func (s *sorter) merge(leftPath, rightPath string, key int) (string, error) {
	left, err := openDecodeCursor(leftPath)
	if err != nil {
		return "", err
	}
	defer left.close()

	right, err := openDecodeCursor(rightPath)
	if err != nil {
		return "", err
	}
	defer right.close()

	outPath := newScratchPath(s.scratchDir)
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := s.mergeInto(out, left, right, key); err != nil {
		return "", err
	}

	if err := out.Close(); err != nil {
		return "", err
	}
	s.obs.ScratchCreated(outPath)

	if err := s.removeIfScratch(leftPath); err != nil {
		return "", err
	}
	if err := s.removeIfScratch(rightPath); err != nil {
		return "", err
	}
	return outPath, nil
}

func (s *sorter) mergeInto(out *os.File, left, right *decodeCursor, key int) error {
	for {
		if err := left.fill(s.schema, s.blockSize); err != nil {
			return err
		}
		if err := right.fill(s.schema, s.blockSize); err != nil {
			return err
		}

		lrow, lok := left.current()
		rrow, rok := right.current()
		if !lok || !rok {
			break
		}

		var winner rowcodec.Row
		if s.compareKey(lrow[key], rrow[key], key) <= 0 {
			winner = lrow
			left.advance()
		} else {
			winner = rrow
			right.advance()
		}

		encoded, err := rowcodec.Encode(s.schema, []rowcodec.Row{winner})
		if err != nil {
			return err
		}
		if _, err := out.Write(encoded); err != nil {
			return err
		}
	}

	// At most one side is still non-empty once the loop above stops;
	// draining the other is a no-op.
	if err := left.drainTo(out, s.schema); err != nil {
		return err
	}
	return right.drainTo(out, s.schema)
}

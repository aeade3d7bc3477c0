package extsort

import (
	"fmt"
	"io"
	"os"

	"rowsort/rowcodec"
)

// decodeCursor streams one side of a merge: it reads block-sized chunks,
// decodes whatever whole rows they contain, and carries the residual
// forward exactly the way the codec's contract expects.
type decodeCursor struct {
	path     string
	file     *os.File
	size     int64
	offset   int64
	residual []byte
	rows     []rowcodec.Row
	idx      int
}

func openDecodeCursor(path string) (*decodeCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &decodeCursor{path: path, file: f, size: info.Size()}, nil
}

func (c *decodeCursor) close() error {
	return c.file.Close()
}

// fill tops up c.rows if the buffer is exhausted, reading as many
// blocks as it takes to produce at least one row (or hit EOF).
func (c *decodeCursor) fill(schema []rowcodec.CellType, blockSize int) error {
	if c.idx < len(c.rows) {
		return nil
	}
	c.rows, c.idx = nil, 0

	for len(c.rows) == 0 && c.offset < c.size {
		toRead := int64(blockSize)
		if remaining := c.size - c.offset; remaining < toRead {
			toRead = remaining
		}

		buf := make([]byte, int64(len(c.residual))+toRead)
		copy(buf, c.residual)
		n, err := io.ReadFull(c.file, buf[len(c.residual):])
		if err != nil {
			return fmt.Errorf("extsort: reading %s: %w", c.path, err)
		}
		buf = buf[:int64(len(c.residual))+int64(n)]
		c.offset += int64(n)

		rows, residual, err := rowcodec.Decode(schema, buf)
		if err != nil {
			return err
		}
		c.rows = rows
		c.residual = residual

		if c.offset >= c.size && len(c.residual) != 0 {
			return fmt.Errorf("%w: %d trailing byte(s) at EOF in %s", rowcodec.ErrCorrupt, len(c.residual), c.path)
		}
	}
	return nil
}

// current returns the decoded row the cursor is positioned at, if any.
func (c *decodeCursor) current() (rowcodec.Row, bool) {
	if c.idx < len(c.rows) {
		return c.rows[c.idx], true
	}
	return nil, false
}

func (c *decodeCursor) advance() {
	c.idx++
}

// drainTo writes everything left in the cursor to out: any rows still
// buffered (re-encoded), any pending residual bytes, then the rest of
// the file streamed byte-for-byte with no decode step at all.
func (c *decodeCursor) drainTo(out *os.File, schema []rowcodec.CellType) error {
	if c.idx < len(c.rows) {
		encoded, err := rowcodec.Encode(schema, c.rows[c.idx:])
		if err != nil {
			return err
		}
		if _, err := out.Write(encoded); err != nil {
			return err
		}
		c.idx = len(c.rows)
	}

	if len(c.residual) > 0 {
		if _, err := out.Write(c.residual); err != nil {
			return err
		}
		c.residual = nil
	}

	if c.offset < c.size {
		if _, err := io.Copy(out, c.file); err != nil {
			return err
		}
		c.offset = c.size
	}
	return nil
}

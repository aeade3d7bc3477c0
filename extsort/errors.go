package extsort

import "errors"

var (
	// ErrInvalidArgs is returned when Sort is called with a structurally
	// invalid argument (empty key list, out-of-range key index,
	// non-positive block size).
	ErrInvalidArgs = errors.New("extsort: invalid arguments")

	// ErrBlobKey is returned when a key column has BYTES type. Blob
	// comparison is undefined, so a BYTES column can never be a sort key.
	ErrBlobKey = errors.New("extsort: key column has a blob type, which has no defined ordering")
)

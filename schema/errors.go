package schema

import "errors"

var (
	// ErrConfigRead is returned when the document cannot be opened or read.
	ErrConfigRead = errors.New("schema: cannot read schema document")

	// ErrConfigInvalid is returned when the document is not valid
	// JSON-with-comments, or fails validation after parsing (unknown
	// column type, out-of-range key, blob key, negative block size).
	ErrConfigInvalid = errors.New("schema: invalid schema document")
)

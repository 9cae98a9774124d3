package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a record.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadTag indicates an unexpected tag word in the structure block.
	ErrBadTag = errors.New("format: unexpected tag")
	// ErrBadString indicates a strings-block offset that does not resolve to
	// a NUL-terminated entry.
	ErrBadString = errors.New("format: unterminated string")
	// ErrUnsupported indicates a structure-block version this package does
	// not understand.
	ErrUnsupported = errors.New("format: unsupported version")
)

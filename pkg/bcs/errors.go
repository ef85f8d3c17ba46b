package bcs

import "fmt"

// MalformedInputError is returned for every decode failure: truncated
// buffers, ULEB128 overflow, and length prefixes that exceed the remaining
// input. Offset is the position of the first byte of the field that failed
// to decode, which makes byte-level format bugs reproducible from the
// error message alone.
type MalformedInputError struct {
	Offset int    // Byte offset of the failing field
	Reason string // What went wrong at that offset
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input at offset %d: %s", e.Offset, e.Reason)
}

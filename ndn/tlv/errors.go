package tlv

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrTruncated       = errors.New("truncated input")
	ErrLengthOverrun   = errors.New("TLV-LENGTH exceeds enclosing element")
	ErrMalformedHeader = errors.New("malformed header")
	ErrNestingTooDeep  = errors.New("nesting too deep")
	ErrBufferTooSmall  = errors.New("encoding buffer too small")
	ErrMalformedValue  = errors.New("malformed value")
	ErrTail            = errors.New("junk after end of packet")
)

// DecodeError is a decoding failure at a byte offset of the input buffer.
type DecodeError struct {
	Offset int
	Err    error
}

// ErrAt attaches a byte offset to an error.
// If err already carries an offset, it is returned unchanged.
func ErrAt(offset int, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Offset: offset, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OffsetOf extracts the byte offset from an error, or -1 if it has none.
func OffsetOf(err error) int {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Offset
	}
	return -1
}

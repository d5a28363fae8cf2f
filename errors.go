package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there are no symbols to build a tree from.
var ErrEmptyInput = errors.New("huffman: empty input")

// ErrMalformedPayload is matched by every *MalformedPayloadError via
// errors.Is.
var ErrMalformedPayload = errors.New("huffman: malformed payload")

// MalformedPayloadError is returned when an encoded payload cannot be
// turned back into the original string.
type MalformedPayloadError struct {
	// Offset is the byte offset within the bit string at which decoding
	// failed, or -1 if the failure is in the tree description.
	Offset int

	// Reason is a human-readable description of the failure.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

// Error fulfills the error interface.
func (e *MalformedPayloadError) Error() string {
	var msg string
	if e.Offset < 0 {
		msg = fmt.Sprintf("huffman: malformed payload: %s", e.Reason)
	} else {
		msg = fmt.Sprintf("huffman: malformed payload at bit %d: %s", e.Offset, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is returns true for ErrMalformedPayload.
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// Unwrap returns the underlying cause, if any.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func malformedTree(reason string, err error) error {
	return &MalformedPayloadError{Offset: -1, Reason: reason, Err: err}
}

func malformedBits(offset int, reason string) error {
	return &MalformedPayloadError{Offset: offset, Reason: reason}
}

var _ error = (*MalformedPayloadError)(nil)

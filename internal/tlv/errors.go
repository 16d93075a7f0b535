package tlv

import (
	"errors"
	"fmt"
)

// Parser errors
var (
	// ErrUnexpectedEOF is returned when the parser encounters truncated data.
	ErrUnexpectedEOF = errors.New("tlv: unexpected end of data")

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("tlv: invalid length encoding")

	// ErrIndefiniteLength is returned when indefinite length encoding is
	// encountered; only definite lengths are supported.
	ErrIndefiniteLength = errors.New("tlv: indefinite length not supported")

	// ErrInvalidTag is returned when a tag encoding cannot be read, including
	// long form tag numbers wider than 16 bits.
	ErrInvalidTag = errors.New("tlv: invalid tag encoding")

	// ErrEmptyInput is returned when there is no data to parse.
	ErrEmptyInput = errors.New("tlv: empty input")
)

// DecodeError provides detailed information about a parse failure.
type DecodeError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tlv: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("tlv: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError with the given parameters.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

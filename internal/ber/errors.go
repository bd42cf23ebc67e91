package ber

import (
	"errors"
	"fmt"
)

// Encoder errors
var (
	ErrInvalidTagClass  = errors.New("ber: invalid tag class")
	ErrInvalidTagNumber = errors.New("ber: invalid tag number")
	ErrNegativeLength   = errors.New("ber: negative length not allowed")
)

// Decoder errors
var (
	// ErrUnexpectedEOF is returned when the data ends inside a TLV.
	ErrUnexpectedEOF = errors.New("ber: unexpected end of data")

	// ErrInvalidLength is returned when a length value is malformed.
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrIndefiniteLength is returned for the 0x80 length octet, which LDAP forbids.
	ErrIndefiniteLength = errors.New("ber: indefinite length not supported")

	// ErrInvalidBoolean is returned when a boolean value is not one octet.
	ErrInvalidBoolean = errors.New("ber: invalid boolean encoding")

	// ErrInvalidInteger is returned when an integer is empty or exceeds int64.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrInvalidNull is returned when a null value has content.
	ErrInvalidNull = errors.New("ber: invalid null encoding")

	// ErrTagMismatch is returned when the next element has an unexpected tag.
	ErrTagMismatch = errors.New("ber: tag mismatch")
)

// DecodeError reports where in the input a decoding failure happened.
type DecodeError struct {
	Offset  int
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ber: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ber: decode error at offset %d: %s", e.Offset, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

// TagMismatchError describes an element whose tag was not the one expected.
type TagMismatchError struct {
	Offset            int
	ExpectedClass     int
	ExpectedNumber    int
	ActualClass       int
	ActualNumber      int
	ActualConstructed int
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("ber: tag mismatch at offset %d: expected class=%#x number=%d, got class=%#x number=%d constructed=%t",
		e.Offset, e.ExpectedClass, e.ExpectedNumber, e.ActualClass, e.ActualNumber, e.ActualConstructed == TypeConstructed)
}

// Is allows TagMismatchError to match ErrTagMismatch with errors.Is.
func (e *TagMismatchError) Is(target error) bool {
	return target == ErrTagMismatch
}

func mismatch(h Header, class, number int) *TagMismatchError {
	return &TagMismatchError{
		Offset:            h.Offset,
		ExpectedClass:     class,
		ExpectedNumber:    number,
		ActualClass:       h.Class,
		ActualNumber:      h.Number,
		ActualConstructed: h.Constructed,
	}
}

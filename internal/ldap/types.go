package ldap

import (
	"errors"
	"fmt"
)

// Protocol operation tags used by extended operations (APPLICATION class)
const (
	ApplicationExtendedRequest  = 23 // [APPLICATION 23]
	ApplicationExtendedResponse = 24 // [APPLICATION 24]
)

// Context-specific tags inside extended operations and LDAPResult
const (
	ContextTagRequestName   = 0
	ContextTagRequestValue  = 1
	ContextTagReferral      = 3
	ContextTagResponseName  = 10
	ContextTagResponseValue = 11
)

// MaxMessageID is the maximum valid message ID per RFC 4511
// MessageID ::= INTEGER (0 .. maxInt)
const MaxMessageID = 2147483647

// MinMessageID is the minimum valid message ID
const MinMessageID = 0

// RawOperation holds the tag and undecoded contents of a protocolOp.
type RawOperation struct {
	Tag  int
	Data []byte
}

// LDAPMessage is the envelope around every protocol operation.
type LDAPMessage struct {
	MessageID int
	Operation *RawOperation
}

// Errors for LDAP message handling
var (
	// ErrInvalidMessageID is returned when the message ID is out of valid range
	ErrInvalidMessageID = errors.New("ldap: message ID out of valid range (0 to 2147483647)")

	// ErrMissingOperation is returned when the protocol operation is missing
	ErrMissingOperation = errors.New("ldap: missing protocol operation")

	// ErrInvalidOperation is returned when the protocol operation has invalid tag class
	ErrInvalidOperation = errors.New("ldap: protocol operation must have APPLICATION tag class")

	// ErrUnexpectedOperation is returned when a message carries a different operation than expected
	ErrUnexpectedOperation = errors.New("ldap: unexpected protocol operation")

	// ErrEmptyMessage is returned when trying to parse empty data
	ErrEmptyMessage = errors.New("ldap: empty message data")

	// ErrMissingRequestName is returned when an extended request has no OID
	ErrMissingRequestName = errors.New("ldap: extended request requires a requestName")
)

// ParseError provides detailed information about a parsing failure
type ParseError struct {
	Offset  int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ldap: parse error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("ldap: parse error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(offset int, message string, err error) *ParseError {
	return &ParseError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}

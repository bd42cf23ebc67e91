package extop

import (
	"errors"
	"fmt"

	"github.com/KilimcininKorOglu/obaext/internal/ldap"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is, or one of the registry errors below.
var (
	// ErrParameter marks invalid or missing caller arguments; nothing was encoded.
	ErrParameter = errors.New("extop: invalid parameter")
	// ErrEncoding marks a failure of the byte sink or codec while serializing.
	ErrEncoding = errors.New("extop: encoding error")
	// ErrDecoding marks a payload that does not match the shape its factory expects.
	ErrDecoding = errors.New("extop: decoding error")
)

// Registry errors
var (
	// ErrInvalidOID is returned when an OID is empty or not dotted-decimal.
	ErrInvalidOID = errors.New("extop: invalid OID")
	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("extop: cannot register nil factory")
	// ErrDuplicateOID is returned by Register under DuplicateReject when the OID is taken.
	ErrDuplicateOID = errors.New("extop: OID already registered")
	// ErrNilExtension is returned when installing a nil extension.
	ErrNilExtension = errors.New("extop: cannot install nil extension")
	// ErrTrailingData is wrapped by DecodingError when a payload has bytes left over.
	ErrTrailingData = errors.New("extop: trailing data after last field")
)

// ParameterError reports an invalid argument detected before any byte was written.
type ParameterError struct {
	// Op is the operation that rejected the argument ("build", "dispatch", a request name).
	Op string
	// Index is the position of the offending argument, or -1 when not positional.
	Index int
	// Reason describes what is wrong with the argument.
	Reason string
}

func (e *ParameterError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("extop: %s: argument %d: %s", e.Op, e.Index, e.Reason)
	}
	return fmt.Sprintf("extop: %s: %s", e.Op, e.Reason)
}

// Is allows ParameterError to match ErrParameter with errors.Is.
func (e *ParameterError) Is(target error) bool {
	return target == ErrParameter
}

// ResultCode returns the client-side LDAP result code for this error.
func (e *ParameterError) ResultCode() ldap.ResultCode {
	return ldap.ResultParamError
}

// EncodingError wraps a stream or codec fault raised while serializing a payload.
type EncodingError struct {
	OID string
	Err error
}

func (e *EncodingError) Error() string {
	if e.OID != "" {
		return fmt.Sprintf("extop: encoding %s: %v", e.OID, e.Err)
	}
	return fmt.Sprintf("extop: encoding: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is allows EncodingError to match ErrEncoding with errors.Is.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// ResultCode returns the client-side LDAP result code for this error.
func (e *EncodingError) ResultCode() ldap.ResultCode {
	return ldap.ResultEncodingError
}

// DecodingError reports a response payload that a factory could not interpret.
type DecodingError struct {
	OID   string
	Field string
	Err   error
}

func (e *DecodingError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("extop: decoding %s: field %s: %v", e.OID, e.Field, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("extop: decoding %s: %v", e.OID, e.Err)
	default:
		return fmt.Sprintf("extop: decoding %s: field %s", e.OID, e.Field)
	}
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// Is allows DecodingError to match ErrDecoding with errors.Is.
func (e *DecodingError) Is(target error) bool {
	return target == ErrDecoding
}

// ResultCode returns the client-side LDAP result code for this error.
func (e *DecodingError) ResultCode() ldap.ResultCode {
	return ldap.ResultDecodingError
}

// Retryable reports whether repeating the call that produced err could succeed.
// Parameter, encoding and decoding failures are deterministic, so they are
// never retryable; anything else is left to the transport layer to judge.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrParameter) && !errors.Is(err, ErrEncoding) && !errors.Is(err, ErrDecoding)
}

// ResultCodeOf maps an error from this package to a client-side result code.
// Unknown errors map to ResultLocalError; nil maps to ResultSuccess.
func ResultCodeOf(err error) ldap.ResultCode {
	if err == nil {
		return ldap.ResultSuccess
	}
	var coded interface{ ResultCode() ldap.ResultCode }
	if errors.As(err, &coded) {
		return coded.ResultCode()
	}
	return ldap.ResultLocalError
}

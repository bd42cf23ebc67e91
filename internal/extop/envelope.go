package extop

import (
	"errors"

	"github.com/KilimcininKorOglu/obaext/internal/ldap"
)

// ExtendedOperation is what the protocol-exchange layer needs to send an
// extended request: the OID and the optional encoded value. *Request and
// every typed request embedding it satisfy it.
type ExtendedOperation interface {
	OID() string
	Value() []byte
	HasValue() bool
}

// Request is the generic extended-operation envelope: an OID and an opaque
// payload. A Request without a value is valid (StartTLS, WhoAmI).
type Request struct {
	oid      string
	value    []byte
	hasValue bool
}

// NewRequest creates a Request. A nil value means the request carries no
// requestValue; a non-nil empty slice sends an empty one.
func NewRequest(oid string, value []byte) (*Request, error) {
	if err := ValidateOID(oid); err != nil {
		return nil, &ParameterError{Op: "request", Index: -1, Reason: err.Error()}
	}
	r := &Request{oid: oid}
	if value != nil {
		r.SetValue(value)
	}
	return r, nil
}

// NewRequestWithArgs creates a Request whose value is Build(args...).
// Encoding failures carry the request OID.
func NewRequestWithArgs(oid string, args ...Arg) (*Request, error) {
	r, err := NewRequest(oid, nil)
	if err != nil {
		return nil, err
	}
	value, err := Build(args...)
	if err != nil {
		var ee *EncodingError
		if errors.As(err, &ee) {
			ee.OID = oid
		}
		return nil, err
	}
	r.SetValue(value)
	return r, nil
}

// OID returns the request OID.
func (r *Request) OID() string {
	return r.oid
}

// Value returns a copy of the encoded request value, nil when absent.
func (r *Request) Value() []byte {
	if !r.hasValue {
		return nil
	}
	out := make([]byte, len(r.value))
	copy(out, r.value)
	return out
}

// HasValue reports whether the request carries a requestValue.
func (r *Request) HasValue() bool {
	return r.hasValue
}

// SetValue replaces the encoded request value. Typed requests call it once
// while being constructed; a Request is treated as immutable afterwards.
func (r *Request) SetValue(value []byte) {
	r.value = make([]byte, len(value))
	copy(r.value, value)
	r.hasValue = true
}

// Encode wraps any extended operation in an LDAPMessage with the given ID.
func Encode(op ExtendedOperation, messageID int) ([]byte, error) {
	if op == nil {
		return nil, &ParameterError{Op: "encode", Index: -1, Reason: "operation is nil"}
	}
	req := &ldap.ExtendedRequest{
		Name:     op.OID(),
		Value:    op.Value(),
		HasValue: op.HasValue(),
	}
	data, err := req.Encode(messageID)
	if err != nil {
		if errors.Is(err, ldap.ErrInvalidMessageID) || errors.Is(err, ldap.ErrMissingRequestName) {
			return nil, &ParameterError{Op: "encode", Index: -1, Reason: err.Error()}
		}
		return nil, &EncodingError{OID: op.OID(), Err: err}
	}
	return data, nil
}

// Envelope is a received extended response before dispatch: the LDAP result
// plus the optional response OID and value.
type Envelope struct {
	Result   ldap.Result
	OID      string
	Value    []byte
	HasValue bool
}

// NewEnvelope builds an Envelope from a parsed ldap.ExtendedResponse.
func NewEnvelope(resp *ldap.ExtendedResponse) *Envelope {
	return &Envelope{
		Result:   resp.Result,
		OID:      resp.Name,
		Value:    resp.Value,
		HasValue: resp.HasValue,
	}
}

// ParseEnvelope parses a BER-encoded LDAPMessage carrying an ExtendedResponse.
// Malformed messages are reported as *DecodingError.
func ParseEnvelope(data []byte) (*Envelope, int, error) {
	resp, msgID, err := ldap.ParseExtendedResponse(data)
	if err != nil {
		return nil, msgID, &DecodingError{Field: "LDAPMessage", Err: err}
	}
	return NewEnvelope(resp), msgID, nil
}

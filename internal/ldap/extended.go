package ldap

import (
	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// ExtendedRequest represents an LDAP Extended Request.
// Per RFC 4511 Section 4.12:
// ExtendedRequest ::= [APPLICATION 23] SEQUENCE {
//
//	requestName      [0] LDAPOID,
//	requestValue     [1] OCTET STRING OPTIONAL
//
// }
type ExtendedRequest struct {
	// Name is the object identifier for the extended operation
	Name string
	// Value is the request value; only sent when HasValue is set
	Value    []byte
	HasValue bool
}

// ExtendedResponse represents an LDAP Extended Response.
// Per RFC 4511 Section 4.12:
// ExtendedResponse ::= [APPLICATION 24] SEQUENCE {
//
//	COMPONENTS OF LDAPResult,
//	responseName     [10] LDAPOID OPTIONAL,
//	responseValue    [11] OCTET STRING OPTIONAL
//
// }
type ExtendedResponse struct {
	Result
	// Name is the optional response OID
	Name string
	// Value is the optional response value
	Value    []byte
	HasValue bool
}

// Encode wraps the request in an LDAPMessage with the given message ID.
func (r *ExtendedRequest) Encode(messageID int) ([]byte, error) {
	if r.Name == "" {
		return nil, ErrMissingRequestName
	}

	body, err := ber.AppendElement(nil, ber.ClassContextSpecific, ber.TypePrimitive, ContextTagRequestName, []byte(r.Name))
	if err != nil {
		return nil, err
	}
	if r.HasValue {
		body, err = ber.AppendElement(body, ber.ClassContextSpecific, ber.TypePrimitive, ContextTagRequestValue, r.Value)
		if err != nil {
			return nil, err
		}
	}

	msg := &LDAPMessage{
		MessageID: messageID,
		Operation: &RawOperation{Tag: ApplicationExtendedRequest, Data: body},
	}
	return msg.Encode()
}

// ParseExtendedRequest parses ExtendedRequest contents (without the APPLICATION tag).
func ParseExtendedRequest(data []byte) (*ExtendedRequest, error) {
	if len(data) == 0 {
		return nil, NewParseError(0, "empty extended request data", nil)
	}

	dec := ber.NewDecoder(data)
	name, err := dec.ReadContext(ContextTagRequestName)
	if err != nil {
		return nil, NewParseError(dec.Offset(), "failed to read requestName", err)
	}
	req := &ExtendedRequest{Name: string(name)}

	if dec.IsNext(ber.ClassContextSpecific, ContextTagRequestValue) {
		if req.Value, err = dec.ReadContext(ContextTagRequestValue); err != nil {
			return nil, NewParseError(dec.Offset(), "failed to read requestValue", err)
		}
		req.HasValue = true
	}

	return req, nil
}

// Encode wraps the response in an LDAPMessage with the given message ID.
func (r *ExtendedResponse) Encode(messageID int) ([]byte, error) {
	body, err := r.Result.appendTo(nil)
	if err != nil {
		return nil, err
	}
	if r.Name != "" {
		body, err = ber.AppendElement(body, ber.ClassContextSpecific, ber.TypePrimitive, ContextTagResponseName, []byte(r.Name))
		if err != nil {
			return nil, err
		}
	}
	if r.HasValue {
		body, err = ber.AppendElement(body, ber.ClassContextSpecific, ber.TypePrimitive, ContextTagResponseValue, r.Value)
		if err != nil {
			return nil, err
		}
	}

	msg := &LDAPMessage{
		MessageID: messageID,
		Operation: &RawOperation{Tag: ApplicationExtendedResponse, Data: body},
	}
	return msg.Encode()
}

// ParseExtendedResponse parses a full LDAPMessage carrying an ExtendedResponse
// and returns the response together with its message ID.
func ParseExtendedResponse(data []byte) (*ExtendedResponse, int, error) {
	msg, err := ParseLDAPMessage(data)
	if err != nil {
		return nil, 0, err
	}
	if msg.Operation.Tag != ApplicationExtendedResponse {
		return nil, msg.MessageID, ErrUnexpectedOperation
	}

	resp, err := parseExtendedResponseOp(msg.Operation.Data)
	if err != nil {
		return nil, msg.MessageID, err
	}
	return resp, msg.MessageID, nil
}

func parseExtendedResponseOp(data []byte) (*ExtendedResponse, error) {
	dec := ber.NewDecoder(data)

	result, err := parseResult(dec)
	if err != nil {
		return nil, err
	}
	resp := &ExtendedResponse{Result: result}

	if dec.IsNext(ber.ClassContextSpecific, ContextTagResponseName) {
		name, err := dec.ReadContext(ContextTagResponseName)
		if err != nil {
			return nil, NewParseError(dec.Offset(), "failed to read responseName", err)
		}
		resp.Name = string(name)
	}

	if dec.IsNext(ber.ClassContextSpecific, ContextTagResponseValue) {
		if resp.Value, err = dec.ReadContext(ContextTagResponseValue); err != nil {
			return nil, NewParseError(dec.Offset(), "failed to read responseValue", err)
		}
		resp.HasValue = true
	}

	return resp, nil
}

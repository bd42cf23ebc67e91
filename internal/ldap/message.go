package ldap

import (
	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// ParseLDAPMessage parses a BER-encoded LDAP message envelope.
// Per RFC 4511 Section 4.1.1:
// LDAPMessage ::= SEQUENCE {
//
//	messageID       MessageID,
//	protocolOp      CHOICE { ... },
//	controls        [0] Controls OPTIONAL
//
// }
//
// Controls are not interpreted; extended operations in this module never
// attach them.
func ParseLDAPMessage(data []byte) (*LDAPMessage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	dec, err := ber.NewDecoder(data).ReadSequence()
	if err != nil {
		return nil, NewParseError(0, "expected SEQUENCE for LDAPMessage", err)
	}

	msgID, err := dec.ReadInteger()
	if err != nil {
		return nil, NewParseError(dec.Offset(), "failed to read messageID", err)
	}
	if msgID < MinMessageID || msgID > MaxMessageID {
		return nil, ErrInvalidMessageID
	}

	opStart := dec.Offset()
	h, opData, err := dec.ReadAny()
	if err != nil {
		return nil, NewParseError(opStart, "failed to read protocolOp", err)
	}
	if h.Class != ber.ClassApplication {
		return nil, NewParseError(opStart, "protocolOp must have APPLICATION tag class", ErrInvalidOperation)
	}

	return &LDAPMessage{
		MessageID: int(msgID),
		Operation: &RawOperation{
			Tag:  h.Number,
			Data: opData,
		},
	}, nil
}

// Encode encodes the LDAPMessage to BER format.
func (m *LDAPMessage) Encode() ([]byte, error) {
	if m.MessageID < MinMessageID || m.MessageID > MaxMessageID {
		return nil, ErrInvalidMessageID
	}
	if m.Operation == nil {
		return nil, ErrMissingOperation
	}

	body, err := ber.AppendInteger(nil, int64(m.MessageID))
	if err != nil {
		return nil, err
	}
	body, err = ber.AppendElement(body, ber.ClassApplication, ber.TypeConstructed, m.Operation.Tag, m.Operation.Data)
	if err != nil {
		return nil, err
	}

	return ber.AppendElement(nil, ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, body)
}

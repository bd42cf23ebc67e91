package ldap

import (
	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// Result is the common LDAPResult carried by every response.
// Per RFC 4511 Section 4.1.9:
// LDAPResult ::= SEQUENCE {
//
//	resultCode         ENUMERATED { ... },
//	matchedDN          LDAPDN,
//	diagnosticMessage  LDAPString,
//	referral           [3] Referral OPTIONAL
//
// }
type Result struct {
	ResultCode        ResultCode
	MatchedDN         string
	DiagnosticMessage string
	Referral          []string
}

// appendTo appends the LDAPResult components (without an outer tag) to dst.
func (r *Result) appendTo(dst []byte) ([]byte, error) {
	dst, err := ber.AppendEnumerated(dst, int64(r.ResultCode))
	if err != nil {
		return dst, err
	}
	if dst, err = ber.AppendOctetString(dst, []byte(r.MatchedDN)); err != nil {
		return dst, err
	}
	if dst, err = ber.AppendOctetString(dst, []byte(r.DiagnosticMessage)); err != nil {
		return dst, err
	}

	if len(r.Referral) > 0 {
		var refs []byte
		for _, uri := range r.Referral {
			if refs, err = ber.AppendOctetString(refs, []byte(uri)); err != nil {
				return dst, err
			}
		}
		dst, err = ber.AppendElement(dst, ber.ClassContextSpecific, ber.TypeConstructed, ContextTagReferral, refs)
	}
	return dst, err
}

// parseResult reads the LDAPResult components from dec.
func parseResult(dec *ber.Decoder) (Result, error) {
	var r Result

	code, err := dec.ReadEnumerated()
	if err != nil {
		return r, NewParseError(dec.Offset(), "failed to read resultCode", err)
	}
	r.ResultCode = ResultCode(code)

	if r.MatchedDN, err = dec.ReadString(); err != nil {
		return r, NewParseError(dec.Offset(), "failed to read matchedDN", err)
	}
	if r.DiagnosticMessage, err = dec.ReadString(); err != nil {
		return r, NewParseError(dec.Offset(), "failed to read diagnosticMessage", err)
	}

	if dec.IsNext(ber.ClassContextSpecific, ContextTagReferral) {
		raw, err := dec.ReadContext(ContextTagReferral)
		if err != nil {
			return r, NewParseError(dec.Offset(), "failed to read referral", err)
		}
		refs := ber.NewDecoder(raw)
		for refs.Remaining() > 0 {
			uri, err := refs.ReadString()
			if err != nil {
				return r, NewParseError(dec.Offset(), "failed to read referral URI", err)
			}
			r.Referral = append(r.Referral, uri)
		}
	}

	return r, nil
}

package extension

import (
	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// PasswordModifyOID is the Password Modify operation (RFC 3062). Its
// response has no responseName, so the factory is registered under the
// request OID.
const PasswordModifyOID = "1.3.6.1.4.1.4203.1.11.1"

// PasswdModifyRequestValue tags
const (
	passwdTagUserIdentity = 0
	passwdTagOldPasswd    = 1
	passwdTagNewPasswd    = 2
	passwdTagGenPasswd    = 0
)

// PasswordModifyRequest changes a user password.
//
//	PasswdModifyRequestValue ::= SEQUENCE {
//	    userIdentity [0] OCTET STRING OPTIONAL
//	    oldPasswd    [1] OCTET STRING OPTIONAL
//	    newPasswd    [2] OCTET STRING OPTIONAL }
type PasswordModifyRequest struct {
	*extop.Request
	UserIdentity string
}

// NewPasswordModifyRequest builds a Password Modify request. Empty fields
// are omitted: no userIdentity targets the bound user and no newPasswd asks
// the server to generate one.
func NewPasswordModifyRequest(userIdentity, oldPasswd, newPasswd string) (*PasswordModifyRequest, error) {
	if err := extop.DefaultRegistry.Install(PasswordModifyExtension); err != nil {
		return nil, err
	}

	var fields []extop.Arg
	if userIdentity != "" {
		fields = append(fields, extop.Tagged(passwdTagUserIdentity, extop.OctetString(userIdentity)))
	}
	if oldPasswd != "" {
		fields = append(fields, extop.Tagged(passwdTagOldPasswd, extop.OctetString(oldPasswd)))
	}
	if newPasswd != "" {
		fields = append(fields, extop.Tagged(passwdTagNewPasswd, extop.OctetString(newPasswd)))
	}

	req, err := extop.NewRequestWithArgs(PasswordModifyOID, extop.Sequence(fields...))
	if err != nil {
		return nil, err
	}
	return &PasswordModifyRequest{Request: req, UserIdentity: userIdentity}, nil
}

// PasswordModifyResponse carries the server-generated password, if any.
//
//	PasswdModifyResponseValue ::= SEQUENCE {
//	    genPasswd [0] OCTET STRING OPTIONAL }
type PasswordModifyResponse struct {
	*extop.GenericResponse
	GenPasswd    string `json:"genPasswd,omitempty" yaml:"genPasswd,omitempty"`
	HasGenPasswd bool   `json:"hasGenPasswd" yaml:"hasGenPasswd"`
}

// ParsePasswordModifyResponse is the extop.Factory for PasswordModifyOID.
// A response without a value is valid.
func ParsePasswordModifyResponse(oid string, value []byte) (extop.Response, error) {
	resp := &PasswordModifyResponse{GenericResponse: extop.NewGenericResponse(oid, value)}
	if len(value) == 0 {
		return resp, nil
	}

	r := extop.NewReader(oid, value)
	seq, err := r.ReadSequence("PasswdModifyResponseValue")
	if err != nil {
		return nil, err
	}
	gen, ok, err := seq.ReadOptionalTagged("genPasswd", passwdTagGenPasswd)
	if err != nil {
		return nil, err
	}
	if err := seq.Done(); err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}

	resp.GenPasswd = string(gen)
	resp.HasGenPasswd = ok
	return resp, nil
}

type passwordModifyExt struct{}

func (passwordModifyExt) Name() string {
	return "passwd"
}

func (passwordModifyExt) Register(r *extop.Registry) error {
	_, err := r.Ensure(PasswordModifyOID, ParsePasswordModifyResponse)
	return err
}

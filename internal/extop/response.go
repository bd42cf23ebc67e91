package extop

import (
	"github.com/KilimcininKorOglu/obaext/internal/ldap"
)

// Response is a materialized extended response.
type Response interface {
	// ResponseOID returns the responseName, empty when the server sent none.
	ResponseOID() string
	// ResponseValue returns the raw responseValue, nil when absent.
	ResponseValue() []byte
	// LDAPResult returns the result code and messages of the response.
	LDAPResult() ldap.Result
}

// ResultSetter is implemented by responses that accept the LDAP result after
// their factory ran. GenericResponse implements it, so typed responses that
// embed it get the result attached by the Dispatcher.
type ResultSetter interface {
	SetResult(ldap.Result)
}

// Factory materializes a typed Response from a response OID and payload.
// A factory must be pure: it may be called concurrently and must not retain
// value after returning.
type Factory func(oid string, value []byte) (Response, error)

// GenericResponse exposes a response exactly as received. The Dispatcher
// returns it for OIDs without a registered factory; typed responses embed it.
type GenericResponse struct {
	Result ldap.Result
	OID    string
	Value  []byte
}

// NewGenericResponse creates a GenericResponse for oid and value.
func NewGenericResponse(oid string, value []byte) *GenericResponse {
	return &GenericResponse{OID: oid, Value: value}
}

// ResponseOID implements Response.
func (g *GenericResponse) ResponseOID() string {
	return g.OID
}

// ResponseValue implements Response.
func (g *GenericResponse) ResponseValue() []byte {
	return g.Value
}

// LDAPResult implements Response.
func (g *GenericResponse) LDAPResult() ldap.Result {
	return g.Result
}

// SetResult implements ResultSetter.
func (g *GenericResponse) SetResult(r ldap.Result) {
	g.Result = r
}

// Package extop implements the client side of LDAP extended operations
// (RFC 4511 Section 4.12): building request payloads, carrying them in a
// generic request envelope, and turning received responses into typed
// values through an OID-keyed registry.
//
// # Requests
//
// A request value is a flat concatenation of BER elements built from typed
// arguments:
//
//	value, err := extop.Build(
//	    extop.OctetString("cn=server1,o=acme"),
//	    extop.OctetString("o=acme"),
//	)
//	req, err := extop.NewRequest("2.16.840.1.113719.1.27.100.17", value)
//	msg, err := extop.Encode(req, 7)
//
// A nil argument is rejected with *ParameterError before any byte is
// written; a failing sink surfaces as *EncodingError.
//
// # Responses
//
// Extensions register a Factory per response OID, normally once through
// Registry.Install on first use. A Dispatcher looks up the factory for a
// received Envelope and falls back to *GenericResponse for unknown OIDs:
//
//	env, _, err := extop.ParseEnvelope(msg)
//	resp, err := extop.NewDispatcher(nil).DispatchReply(req, env)
//	switch r := resp.(type) {
//	case *extension.GetReplicaInfoResponse:
//	    // typed fields
//	case *extop.GenericResponse:
//	    // raw r.OID and r.Value
//	}
//
// Factories decode their payload with a Reader, which reports failures as
// *DecodingError.
//
// # Errors
//
// ParameterError, EncodingError and DecodingError match ErrParameter,
// ErrEncoding and ErrDecoding with errors.Is and map to the client-side
// result codes 89, 83 and 84. None of them is retryable.
package extop

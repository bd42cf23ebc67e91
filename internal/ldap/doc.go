// Package ldap implements the parts of the LDAP message envelope (RFC 4511)
// that carry extended operations between a client and a directory server.
//
// # Message Structure
//
// Every LDAP PDU is an LDAPMessage:
//
//	LDAPMessage ::= SEQUENCE {
//	    messageID       MessageID,
//	    protocolOp      CHOICE { ... },
//	    controls        [0] Controls OPTIONAL
//	}
//
// This package encodes and parses the two protocolOp alternatives used by
// extended operations:
//
//	ExtendedRequest ::= [APPLICATION 23] SEQUENCE {
//	    requestName      [0] LDAPOID,
//	    requestValue     [1] OCTET STRING OPTIONAL }
//
//	ExtendedResponse ::= [APPLICATION 24] SEQUENCE {
//	    COMPONENTS OF LDAPResult,
//	    responseName     [10] LDAPOID OPTIONAL,
//	    responseValue    [11] OCTET STRING OPTIONAL }
//
// Usage:
//
//	req := &ldap.ExtendedRequest{Name: oid, Value: payload, HasValue: true}
//	pdu, err := req.Encode(messageID)
//	// ... send pdu, read reply ...
//	resp, msgID, err := ldap.ParseExtendedResponse(reply)
//
// # Result Codes
//
// ResultCode covers the RFC 4511 codes plus the client-side codes (81-90)
// that LDAP client libraries report for failures that never reach the wire,
// such as ResultEncodingError and ResultParamError.
//
// # References
//
//   - RFC 4511: LDAP Protocol
//   - RFC 4532: Who am I? Operation
//   - RFC 3062: Password Modify Extended Operation
package ldap

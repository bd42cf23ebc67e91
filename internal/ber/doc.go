// Package ber implements the ASN.1 BER (Basic Encoding Rules) value codec
// used for LDAP extended-operation payloads, as specified in ITU-T X.690.
//
// Extended-operation values are built from a handful of primitive types
// (OCTET STRING, INTEGER, BOOLEAN, ENUMERATED, NULL) and the occasional
// constructed SEQUENCE or context-specific tag. This package covers exactly
// that surface.
//
// # Encoding
//
// An Encoder writes complete tag-length-value units to an io.Writer. Each
// value is assembled in a scratch buffer and handed to the writer in one
// Write call, so a failing stream never sees half a TLV:
//
//	var buf bytes.Buffer
//	enc := ber.NewEncoder(&buf)
//	if err := enc.WriteString("cn=server1,o=acme"); err != nil {
//	    // stream fault
//	}
//	if err := enc.WriteInteger(42); err != nil {
//	    // stream fault
//	}
//
// Constructed values are encoded from their already-encoded contents:
//
//	inner, _ := ber.AppendOctetString(nil, []byte("uid=alice"))
//	err := enc.WriteSequence(inner)
//
// # Decoding
//
// A Decoder walks a byte slice one TLV at a time:
//
//	dec := ber.NewDecoder(payload)
//	serverDN, err := dec.ReadString()
//	partitionDN, err := dec.ReadString()
//	if dec.Remaining() != 0 {
//	    // trailing bytes
//	}
//
// Decoding failures are reported as *DecodeError (with the byte offset) or
// *TagMismatchError; both match the package sentinels with errors.Is.
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
//   - RFC 4511 Section 5.1: LDAP's restrictions on BER
package ber

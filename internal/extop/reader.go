package extop

import (
	"fmt"
	"math"

	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// Reader decodes the fields of a response value in order. Every failure is
// a *DecodingError naming the response OID and the field being read.
type Reader struct {
	oid string
	dec *ber.Decoder
}

// NewReader creates a Reader over value for the response identified by oid.
func NewReader(oid string, value []byte) *Reader {
	return &Reader{oid: oid, dec: ber.NewDecoder(value)}
}

func (r *Reader) fail(field string, err error) error {
	return &DecodingError{OID: r.oid, Field: field, Err: err}
}

// ReadString reads an OCTET STRING field as a string.
func (r *Reader) ReadString(field string) (string, error) {
	v, err := r.dec.ReadString()
	if err != nil {
		return "", r.fail(field, err)
	}
	return v, nil
}

// ReadBytes reads an OCTET STRING field.
func (r *Reader) ReadBytes(field string) ([]byte, error) {
	v, err := r.dec.ReadOctetString()
	if err != nil {
		return nil, r.fail(field, err)
	}
	return v, nil
}

// ReadInteger reads an INTEGER field.
func (r *Reader) ReadInteger(field string) (int64, error) {
	v, err := r.dec.ReadInteger()
	if err != nil {
		return 0, r.fail(field, err)
	}
	return v, nil
}

// ReadInt reads an INTEGER field that must fit in 32 bits.
func (r *Reader) ReadInt(field string) (int, error) {
	v, err := r.ReadInteger(field)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, r.fail(field, fmt.Errorf("value %d out of range", v))
	}
	return int(v), nil
}

// ReadBoolean reads a BOOLEAN field.
func (r *Reader) ReadBoolean(field string) (bool, error) {
	v, err := r.dec.ReadBoolean()
	if err != nil {
		return false, r.fail(field, err)
	}
	return v, nil
}

// ReadEnumerated reads an ENUMERATED field.
func (r *Reader) ReadEnumerated(field string) (int64, error) {
	v, err := r.dec.ReadEnumerated()
	if err != nil {
		return 0, r.fail(field, err)
	}
	return v, nil
}

// ReadSequence reads a SEQUENCE field and returns a Reader over its contents.
func (r *Reader) ReadSequence(field string) (*Reader, error) {
	seq, err := r.dec.ReadSequence()
	if err != nil {
		return nil, r.fail(field, err)
	}
	return &Reader{oid: r.oid, dec: seq}, nil
}

// ReadOptionalTagged reads an implicitly tagged [number] field if it is the
// next element. ok is false when the field is absent.
func (r *Reader) ReadOptionalTagged(field string, number int) (value []byte, ok bool, err error) {
	if !r.dec.IsNext(ber.ClassContextSpecific, number) {
		return nil, false, nil
	}
	v, err := r.dec.ReadContext(number)
	if err != nil {
		return nil, false, r.fail(field, err)
	}
	return v, true, nil
}

// More reports whether unread bytes remain.
func (r *Reader) More() bool {
	return r.dec.Remaining() > 0
}

// Done fails with a *DecodingError wrapping ErrTrailingData when unread
// bytes remain.
func (r *Reader) Done() error {
	if n := r.dec.Remaining(); n > 0 {
		return r.fail("", fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, n, r.dec.Offset()))
	}
	return nil
}

package ber

import (
	"io"
)

// AppendTag appends an identifier octet sequence to dst.
// Tag numbers above 30 use the long form (0x1F followed by base-128 digits).
// Numbers outside 0..MaxTagNumber fail with ErrInvalidTagNumber.
func AppendTag(dst []byte, class, constructed, number int) ([]byte, error) {
	switch class {
	case ClassUniversal, ClassApplication, ClassContextSpecific, ClassPrivate:
	default:
		return dst, ErrInvalidTagClass
	}
	if number < 0 || number > MaxTagNumber {
		return dst, ErrInvalidTagNumber
	}

	if number <= 30 {
		return append(dst, byte(class)|byte(constructed)|byte(number)), nil
	}

	dst = append(dst, byte(class)|byte(constructed)|0x1F)
	var digits [5]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte(number & 0x7F)
		number >>= 7
		if number == 0 {
			break
		}
	}
	for j := i; j < len(digits)-1; j++ {
		digits[j] |= 0x80
	}
	return append(dst, digits[i:]...), nil
}

// AppendLength appends a definite length to dst, short form when it fits.
func AppendLength(dst []byte, length int) ([]byte, error) {
	if length < 0 {
		return dst, ErrNegativeLength
	}
	if length <= MaxShortFormLength {
		return append(dst, byte(length)), nil
	}

	n := 0
	for v := length; v > 0; v >>= 8 {
		n++
	}
	dst = append(dst, byte(LengthLongFormBit|n))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(length>>(8*i)))
	}
	return dst, nil
}

// AppendElement appends a full TLV with the given identifier and contents.
func AppendElement(dst []byte, class, constructed, number int, content []byte) ([]byte, error) {
	dst, err := AppendTag(dst, class, constructed, number)
	if err != nil {
		return dst, err
	}
	if dst, err = AppendLength(dst, len(content)); err != nil {
		return dst, err
	}
	return append(dst, content...), nil
}

// AppendOctetString appends a universal OCTET STRING.
func AppendOctetString(dst, v []byte) ([]byte, error) {
	return AppendElement(dst, ClassUniversal, TypePrimitive, TagOctetString, v)
}

// AppendInteger appends a universal INTEGER in minimal two's complement form.
func AppendInteger(dst []byte, v int64) ([]byte, error) {
	return AppendElement(dst, ClassUniversal, TypePrimitive, TagInteger, integerBytes(v))
}

// AppendEnumerated appends a universal ENUMERATED.
func AppendEnumerated(dst []byte, v int64) ([]byte, error) {
	return AppendElement(dst, ClassUniversal, TypePrimitive, TagEnumerated, integerBytes(v))
}

// integerBytes returns the shortest two's complement representation of v.
func integerBytes(v int64) []byte {
	n := 1
	for x := v; x > 127 || x < -128; x >>= 8 {
		n++
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// Encoder writes BER elements to a stream.
type Encoder struct {
	w       io.Writer
	scratch []byte
	written int
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:       w,
		scratch: make([]byte, 0, 64),
	}
}

// Written returns the number of bytes handed to the stream so far.
func (e *Encoder) Written() int {
	return e.written
}

// WriteElement writes a TLV with the given identifier and raw contents.
func (e *Encoder) WriteElement(class, constructed, number int, content []byte) error {
	buf, err := AppendElement(e.scratch[:0], class, constructed, number, content)
	if err != nil {
		return err
	}
	e.scratch = buf
	return e.flush()
}

func (e *Encoder) flush() error {
	n, err := e.w.Write(e.scratch)
	e.written += n
	if err != nil {
		return err
	}
	if n != len(e.scratch) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteOctetString writes a universal OCTET STRING.
func (e *Encoder) WriteOctetString(v []byte) error {
	return e.WriteElement(ClassUniversal, TypePrimitive, TagOctetString, v)
}

// WriteString writes s as an OCTET STRING (LDAPString, LDAPDN).
func (e *Encoder) WriteString(s string) error {
	return e.WriteOctetString([]byte(s))
}

// WriteInteger writes a universal INTEGER.
func (e *Encoder) WriteInteger(v int64) error {
	return e.WriteElement(ClassUniversal, TypePrimitive, TagInteger, integerBytes(v))
}

// WriteEnumerated writes a universal ENUMERATED.
func (e *Encoder) WriteEnumerated(v int64) error {
	return e.WriteElement(ClassUniversal, TypePrimitive, TagEnumerated, integerBytes(v))
}

// WriteBoolean writes a universal BOOLEAN; TRUE is encoded as 0xFF.
func (e *Encoder) WriteBoolean(v bool) error {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	return e.WriteElement(ClassUniversal, TypePrimitive, TagBoolean, []byte{b})
}

// WriteNull writes a universal NULL.
func (e *Encoder) WriteNull() error {
	return e.WriteElement(ClassUniversal, TypePrimitive, TagNull, nil)
}

// WriteSequence writes a universal SEQUENCE around already-encoded contents.
func (e *Encoder) WriteSequence(content []byte) error {
	return e.WriteElement(ClassUniversal, TypeConstructed, TagSequence, content)
}

// WriteContext writes a context-specific element around raw contents.
func (e *Encoder) WriteContext(number int, constructed bool, content []byte) error {
	flag := TypePrimitive
	if constructed {
		flag = TypeConstructed
	}
	return e.WriteElement(ClassContextSpecific, flag, number, content)
}

// WriteRaw writes pre-encoded bytes unchanged.
func (e *Encoder) WriteRaw(data []byte) error {
	e.scratch = append(e.scratch[:0], data...)
	return e.flush()
}

package ber

// Decoder reads BER elements from a byte slice.
type Decoder struct {
	data   []byte
	offset int
}

// NewDecoder creates a Decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the current read position.
func (d *Decoder) Offset() int {
	return d.offset
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

// ReadTag reads an identifier octet sequence.
func (d *Decoder) ReadTag() (class, constructed, number int, err error) {
	start := d.offset
	if d.offset >= len(d.data) {
		return 0, 0, 0, NewDecodeError(start, "cannot read tag", ErrUnexpectedEOF)
	}

	first := d.data[d.offset]
	d.offset++
	class = int(first & 0xC0)
	constructed = int(first & 0x20)
	number = int(first & 0x1F)
	if number != 0x1F {
		return class, constructed, number, nil
	}

	number = 0
	for {
		if d.offset >= len(d.data) {
			return 0, 0, 0, NewDecodeError(start, "cannot read long form tag number", ErrUnexpectedEOF)
		}
		if number > MaxTagNumber {
			return 0, 0, 0, NewDecodeError(start, "tag number overflow", nil)
		}
		b := d.data[d.offset]
		d.offset++
		number = number<<7 | int(b&0x7F)
		if b&0x80 == 0 {
			return class, constructed, number, nil
		}
	}
}

// ReadLength reads a definite length and checks that the contents fit.
func (d *Decoder) ReadLength() (int, error) {
	start := d.offset
	if d.offset >= len(d.data) {
		return 0, NewDecodeError(start, "cannot read length", ErrUnexpectedEOF)
	}

	first := d.data[d.offset]
	d.offset++
	length := int(first)

	if first&LengthLongFormBit != 0 {
		n := int(first &^ LengthLongFormBit)
		if n == 0 {
			return 0, NewDecodeError(start, "indefinite length encoding", ErrIndefiniteLength)
		}
		if n > maxLengthOctets {
			return 0, NewDecodeError(start, "length value overflow", ErrInvalidLength)
		}
		if d.offset+n > len(d.data) {
			return 0, NewDecodeError(start, "truncated length encoding", ErrUnexpectedEOF)
		}
		length = 0
		for _, b := range d.data[d.offset : d.offset+n] {
			length = length<<8 | int(b)
		}
		d.offset += n
	}

	if length > len(d.data)-d.offset {
		return 0, NewDecodeError(start, "truncated contents", ErrUnexpectedEOF)
	}
	return length, nil
}

// ReadHeader reads an identifier and length, leaving the decoder at the
// start of the contents.
func (d *Decoder) ReadHeader() (Header, error) {
	h := Header{Offset: d.offset}
	var err error
	if h.Class, h.Constructed, h.Number, err = d.ReadTag(); err != nil {
		d.offset = h.Offset
		return h, err
	}
	if h.Length, err = d.ReadLength(); err != nil {
		d.offset = h.Offset
		return h, err
	}
	return h, nil
}

// PeekHeader reads the next header without consuming it.
func (d *Decoder) PeekHeader() (Header, error) {
	saved := d.offset
	h, err := d.ReadHeader()
	d.offset = saved
	return h, err
}

// contents consumes and returns the contents of the element whose header was just read.
func (d *Decoder) contents(h Header) []byte {
	v := d.data[d.offset : d.offset+h.Length]
	d.offset += h.Length
	return v
}

// expect reads the next header and checks class, number and form.
// A form of -1 accepts either primitive or constructed.
func (d *Decoder) expect(class, form, number int) (Header, error) {
	h, err := d.ReadHeader()
	if err != nil {
		return h, err
	}
	if !h.Is(class, number) || (form >= 0 && h.Constructed != form) {
		d.offset = h.Offset
		return h, mismatch(h, class, number)
	}
	return h, nil
}

// ReadElement reads an element with the given identifier and returns a copy of its contents.
func (d *Decoder) ReadElement(class, constructed, number int) ([]byte, error) {
	h, err := d.expect(class, constructed, number)
	if err != nil {
		return nil, err
	}
	v := d.contents(h)
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// ReadOctetString reads a primitive universal OCTET STRING.
func (d *Decoder) ReadOctetString() ([]byte, error) {
	return d.ReadElement(ClassUniversal, TypePrimitive, TagOctetString)
}

// ReadString reads an OCTET STRING as a Go string.
func (d *Decoder) ReadString() (string, error) {
	v, err := d.ReadOctetString()
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// ReadInteger reads a universal INTEGER.
func (d *Decoder) ReadInteger() (int64, error) {
	return d.readInt(TagInteger)
}

// ReadEnumerated reads a universal ENUMERATED.
func (d *Decoder) ReadEnumerated() (int64, error) {
	return d.readInt(TagEnumerated)
}

func (d *Decoder) readInt(tag int) (int64, error) {
	h, err := d.expect(ClassUniversal, TypePrimitive, tag)
	if err != nil {
		return 0, err
	}
	switch {
	case h.Length == 0:
		d.offset = h.Offset
		return 0, NewDecodeError(h.Offset, "integer must have at least 1 byte", ErrInvalidInteger)
	case h.Length > 8:
		d.offset = h.Offset
		return 0, NewDecodeError(h.Offset, "integer too large for int64", ErrInvalidInteger)
	}

	v := d.contents(h)
	var n int64
	if v[0]&0x80 != 0 {
		n = -1
	}
	for _, b := range v {
		n = n<<8 | int64(b)
	}
	return n, nil
}

// ReadBoolean reads a universal BOOLEAN; any non-zero octet is TRUE.
func (d *Decoder) ReadBoolean() (bool, error) {
	h, err := d.expect(ClassUniversal, TypePrimitive, TagBoolean)
	if err != nil {
		return false, err
	}
	if h.Length != 1 {
		d.offset = h.Offset
		return false, NewDecodeError(h.Offset, "boolean must have length 1", ErrInvalidBoolean)
	}
	return d.contents(h)[0] != 0x00, nil
}

// ReadNull reads a universal NULL.
func (d *Decoder) ReadNull() error {
	h, err := d.expect(ClassUniversal, TypePrimitive, TagNull)
	if err != nil {
		return err
	}
	if h.Length != 0 {
		d.offset = h.Offset
		return NewDecodeError(h.Offset, "null must have length 0", ErrInvalidNull)
	}
	return nil
}

// ReadSequence reads a universal SEQUENCE and returns a Decoder over its contents.
func (d *Decoder) ReadSequence() (*Decoder, error) {
	h, err := d.expect(ClassUniversal, TypeConstructed, TagSequence)
	if err != nil {
		return nil, err
	}
	return NewDecoder(d.contents(h)), nil
}

// ReadApplication reads an APPLICATION-class element with the given number
// and returns a Decoder over its contents.
func (d *Decoder) ReadApplication(number int) (*Decoder, error) {
	h, err := d.expect(ClassApplication, -1, number)
	if err != nil {
		return nil, err
	}
	return NewDecoder(d.contents(h)), nil
}

// ReadContext reads a context-specific element with the given number and
// returns a copy of its contents.
func (d *Decoder) ReadContext(number int) ([]byte, error) {
	return d.ReadElement(ClassContextSpecific, -1, number)
}

// ReadAny reads the next element whatever its tag and returns its header
// together with a copy of its contents.
func (d *Decoder) ReadAny() (Header, []byte, error) {
	h, err := d.ReadHeader()
	if err != nil {
		return h, nil, err
	}
	v := d.contents(h)
	out := make([]byte, len(v))
	copy(out, v)
	return h, out, nil
}

// IsNext reports whether the next element has the given class and number.
func (d *Decoder) IsNext(class, number int) bool {
	h, err := d.PeekHeader()
	return err == nil && h.Is(class, number)
}

// Skip consumes the next element whatever its tag.
func (d *Decoder) Skip() error {
	h, err := d.ReadHeader()
	if err != nil {
		return err
	}
	d.offset += h.Length
	return nil
}

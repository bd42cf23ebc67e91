package ber

// Tag classes (bits 8-7 of the identifier octet)
const (
	ClassUniversal       = 0x00
	ClassApplication     = 0x40
	ClassContextSpecific = 0x80
	ClassPrivate         = 0xC0
)

// Primitive/constructed flag (bit 6 of the identifier octet)
const (
	TypePrimitive   = 0x00
	TypeConstructed = 0x20
)

// Universal tag numbers
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagOctetString = 0x04
	TagNull        = 0x05
	TagEnumerated  = 0x0A
	TagSequence    = 0x10
	TagSet         = 0x11
)

const (
	// LengthLongFormBit marks a long form length octet.
	LengthLongFormBit = 0x80
	// MaxShortFormLength is the largest length encodable in one octet.
	MaxShortFormLength = 127

	// MaxTagNumber bounds long form tag numbers written by the encoder and
	// accepted by the decoder.
	MaxTagNumber = 1 << 24
	// maxLengthOctets bounds long form lengths to what fits an int safely.
	maxLengthOctets = 4
)

// Header describes a decoded identifier and length.
type Header struct {
	Class       int
	Constructed int
	Number      int
	Length      int
	// Offset is where the identifier octet starts.
	Offset int
}

// Is reports whether the header carries the given class and tag number.
func (h Header) Is(class, number int) bool {
	return h.Class == class && h.Number == number
}

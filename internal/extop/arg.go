package extop

import (
	"fmt"

	"github.com/KilimcininKorOglu/obaext/internal/ber"
)

// Arg is one typed value of an operation argument set. Values are created
// with the constructors below; a nil Arg stands for a missing argument and
// is rejected before anything is encoded.
type Arg interface {
	element() (element, error)
}

// element is an Arg resolved to its identifier and contents.
type element struct {
	class   int
	form    int
	number  int
	content []byte
}

func (e element) appendTo(dst []byte) ([]byte, error) {
	return ber.AppendElement(dst, e.class, e.form, e.number, e.content)
}

type primitive struct {
	number  int
	content []byte
}

func (p primitive) element() (element, error) {
	return element{class: ber.ClassUniversal, form: ber.TypePrimitive, number: p.number, content: p.content}, nil
}

// OctetString returns an OCTET STRING argument (LDAPString, LDAPDN).
func OctetString(s string) Arg {
	return primitive{number: ber.TagOctetString, content: []byte(s)}
}

// Bytes returns an OCTET STRING argument holding raw bytes. A nil slice is
// encoded as an empty string.
func Bytes(b []byte) Arg {
	content := make([]byte, len(b))
	copy(content, b)
	return primitive{number: ber.TagOctetString, content: content}
}

// Integer returns an INTEGER argument.
func Integer(v int64) Arg {
	enc, _ := ber.AppendInteger(nil, v)
	return primitive{number: ber.TagInteger, content: enc[2:]}
}

// Enumerated returns an ENUMERATED argument.
func Enumerated(v int64) Arg {
	enc, _ := ber.AppendEnumerated(nil, v)
	return primitive{number: ber.TagEnumerated, content: enc[2:]}
}

// Boolean returns a BOOLEAN argument.
func Boolean(v bool) Arg {
	if v {
		return primitive{number: ber.TagBoolean, content: []byte{0xFF}}
	}
	return primitive{number: ber.TagBoolean, content: []byte{0x00}}
}

// Null returns a NULL argument.
func Null() Arg {
	return primitive{number: ber.TagNull}
}

type tagged struct {
	number int
	inner  Arg
}

func (t tagged) element() (element, error) {
	if t.inner == nil {
		return element{}, &ParameterError{Op: "tagged", Index: -1, Reason: "inner argument is nil"}
	}
	if t.number < 0 || t.number > ber.MaxTagNumber {
		return element{}, &ParameterError{Op: "tagged", Index: -1, Reason: fmt.Sprintf("tag number %d out of range", t.number)}
	}
	e, err := t.inner.element()
	if err != nil {
		return element{}, err
	}
	e.class = ber.ClassContextSpecific
	e.number = t.number
	return e, nil
}

// Tagged returns inner with its universal tag replaced by context-specific
// tag number (IMPLICIT tagging), as in `userIdentity [0] OCTET STRING`.
func Tagged(number int, inner Arg) Arg {
	return tagged{number: number, inner: inner}
}

type sequence struct {
	items []Arg
}

func (s sequence) element() (element, error) {
	var content []byte
	for i, item := range s.items {
		if item == nil {
			return element{}, &ParameterError{Op: "sequence", Index: i, Reason: "argument is nil"}
		}
		e, err := item.element()
		if err != nil {
			return element{}, err
		}
		if content, err = e.appendTo(content); err != nil {
			return element{}, err
		}
	}
	return element{class: ber.ClassUniversal, form: ber.TypeConstructed, number: ber.TagSequence, content: content}, nil
}

// Sequence returns a SEQUENCE argument whose items are encoded in order.
func Sequence(items ...Arg) Arg {
	return sequence{items: items}
}

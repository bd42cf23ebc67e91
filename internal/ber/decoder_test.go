package ber

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_ReadTag(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		class       int
		constructed int
		number      int
		wantErr     error
	}{
		{"octet string", []byte{0x04}, ClassUniversal, TypePrimitive, TagOctetString, nil},
		{"sequence", []byte{0x30}, ClassUniversal, TypeConstructed, TagSequence, nil},
		{"application 24", []byte{0x78}, ClassApplication, TypeConstructed, 24, nil},
		{"context 11", []byte{0x8B}, ClassContextSpecific, TypePrimitive, 11, nil},
		{"long form", []byte{0x5F, 0x81, 0x48}, ClassApplication, TypePrimitive, 200, nil},
		{"empty", nil, 0, 0, 0, ErrUnexpectedEOF},
		{"truncated long form", []byte{0x1F, 0x81}, 0, 0, 0, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, constructed, number, err := NewDecoder(tt.data).ReadTag()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.class, class)
			assert.Equal(t, tt.constructed, constructed)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestDecoder_ReadLength(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected int
		wantErr  error
	}{
		{"short", []byte{0x02, 0, 0}, 2, nil},
		{"long one octet", append([]byte{0x81, 0x80}, make([]byte, 128)...), 128, nil},
		{"indefinite", []byte{0x80}, 0, ErrIndefiniteLength},
		{"too many octets", []byte{0x85, 1, 1, 1, 1, 1}, 0, ErrInvalidLength},
		{"truncated octets", []byte{0x82, 0x01}, 0, ErrUnexpectedEOF},
		{"contents missing", []byte{0x05, 0x00}, 0, ErrUnexpectedEOF},
		{"empty", nil, 0, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, err := NewDecoder(tt.data).ReadLength()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, length)
		})
	}
}

func TestDecoder_ReadInteger(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, -128, -129, 65535, 1 << 40, -(1 << 40),
		9223372036854775807, -9223372036854775808}

	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf).WriteInteger(v))

		got, err := NewDecoder(buf.Bytes()).ReadInteger()
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestDecoder_ReadIntegerErrors(t *testing.T) {
	_, err := NewDecoder([]byte{0x02, 0x00}).ReadInteger()
	assert.ErrorIs(t, err, ErrInvalidInteger)

	_, err = NewDecoder([]byte{0x02, 0x09, 1, 2, 3, 4, 5, 6, 7, 8, 9}).ReadInteger()
	assert.ErrorIs(t, err, ErrInvalidInteger)

	dec := NewDecoder([]byte{0x04, 0x01, 'a'})
	_, err = dec.ReadInteger()
	assert.ErrorIs(t, err, ErrTagMismatch)
	assert.Equal(t, 0, dec.Offset(), "offset restored after mismatch")
}

func TestDecoder_ReadBooleanAndNull(t *testing.T) {
	dec := NewDecoder([]byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x00, 0x05, 0x00})

	v, err := dec.ReadBoolean()
	require.NoError(t, err)
	assert.True(t, v)

	v, err = dec.ReadBoolean()
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, dec.ReadNull())
	assert.Equal(t, 0, dec.Remaining())

	_, err = NewDecoder([]byte{0x01, 0x02, 0xFF, 0xFF}).ReadBoolean()
	assert.ErrorIs(t, err, ErrInvalidBoolean)

	err = NewDecoder([]byte{0x05, 0x01, 0x00}).ReadNull()
	assert.ErrorIs(t, err, ErrInvalidNull)
}

func TestDecoder_ReadString(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.WriteString("cn=server1,o=acme"))
	require.NoError(t, enc.WriteString(""))

	dec := NewDecoder(buf.Bytes())
	s, err := dec.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "cn=server1,o=acme", s)

	s, err = dec.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, dec.Remaining())
}

func TestDecoder_ReadOctetStringCopies(t *testing.T) {
	data := []byte{0x04, 0x02, 'h', 'i'}
	v, err := NewDecoder(data).ReadOctetString()
	require.NoError(t, err)

	data[2] = 'X'
	assert.Equal(t, []byte("hi"), v)
}

func TestDecoder_ConstructedOctetStringRejected(t *testing.T) {
	_, err := NewDecoder([]byte{0x24, 0x00}).ReadOctetString()
	assert.ErrorIs(t, err, ErrTagMismatch)
}

func TestDecoder_ReadSequence(t *testing.T) {
	inner, err := AppendOctetString(nil, []byte("a"))
	require.NoError(t, err)
	inner, err = AppendInteger(inner, 7)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).WriteSequence(inner))
	buf.WriteByte(0x05)
	buf.WriteByte(0x00)

	dec := NewDecoder(buf.Bytes())
	seq, err := dec.ReadSequence()
	require.NoError(t, err)

	s, err := seq.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	n, err := seq.ReadInteger()
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, 0, seq.Remaining())

	require.NoError(t, dec.ReadNull())
}

func TestDecoder_ContextAndApplication(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.WriteElement(ClassApplication, TypeConstructed, 24, []byte{0x0A, 0x01, 0x00}))
	require.NoError(t, enc.WriteContext(10, false, []byte("1.2.3")))

	dec := NewDecoder(buf.Bytes())
	assert.True(t, dec.IsNext(ClassApplication, 24))
	assert.False(t, dec.IsNext(ClassApplication, 23))

	app, err := dec.ReadApplication(24)
	require.NoError(t, err)
	code, err := app.ReadEnumerated()
	require.NoError(t, err)
	assert.Equal(t, int64(0), code)

	_, err = dec.ReadContext(11)
	assert.ErrorIs(t, err, ErrTagMismatch)

	v, err := dec.ReadContext(10)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(v))
}

func TestDecoder_Skip(t *testing.T) {
	dec := NewDecoder([]byte{0x04, 0x02, 'a', 'b', 0x05, 0x00})
	require.NoError(t, dec.Skip())
	require.NoError(t, dec.ReadNull())

	err := NewDecoder([]byte{0x04, 0x05, 'a'}).Skip()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecodeError(t *testing.T) {
	err := NewDecodeError(4, "bad thing", ErrUnexpectedEOF)
	assert.Equal(t, "ber: decode error at offset 4: bad thing: ber: unexpected end of data", err.Error())
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))

	bare := NewDecodeError(1, "no cause", nil)
	assert.Equal(t, "ber: decode error at offset 1: no cause", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestTagMismatchError(t *testing.T) {
	_, err := NewDecoder([]byte{0x02, 0x01, 0x01}).ReadOctetString()

	var tm *TagMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, TagOctetString, tm.ExpectedNumber)
	assert.Equal(t, TagInteger, tm.ActualNumber)
	assert.Contains(t, tm.Error(), "tag mismatch at offset 0")
}

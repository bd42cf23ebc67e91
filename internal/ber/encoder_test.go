package ber

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendTag(t *testing.T) {
	tests := []struct {
		name        string
		class       int
		constructed int
		number      int
		expected    []byte
		wantErr     error
	}{
		{"universal octet string", ClassUniversal, TypePrimitive, TagOctetString, []byte{0x04}, nil},
		{"universal sequence", ClassUniversal, TypeConstructed, TagSequence, []byte{0x30}, nil},
		{"application 23", ClassApplication, TypeConstructed, 23, []byte{0x77}, nil},
		{"context 10 primitive", ClassContextSpecific, TypePrimitive, 10, []byte{0x8A}, nil},
		{"private 30", ClassPrivate, TypePrimitive, 30, []byte{0xDE}, nil},
		{"long form 31", ClassContextSpecific, TypePrimitive, 31, []byte{0x9F, 0x1F}, nil},
		{"long form 200", ClassApplication, TypePrimitive, 200, []byte{0x5F, 0x81, 0x48}, nil},
		{"invalid class", 0x10, TypePrimitive, 1, nil, ErrInvalidTagClass},
		{"negative number", ClassUniversal, TypePrimitive, -1, nil, ErrInvalidTagNumber},
		{"largest number", ClassContextSpecific, TypePrimitive, MaxTagNumber, []byte{0x9F, 0x88, 0x80, 0x80, 0x00}, nil},
		{"number above limit", ClassContextSpecific, TypePrimitive, 1 << 40, nil, ErrInvalidTagNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendTag(nil, tt.class, tt.constructed, tt.number)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAppendLength(t *testing.T) {
	tests := []struct {
		length   int
		expected []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{255, []byte{0x81, 0xFF}},
		{256, []byte{0x82, 0x01, 0x00}},
		{65536, []byte{0x83, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		got, err := AppendLength(nil, tt.length)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "length %d", tt.length)
	}

	_, err := AppendLength(nil, -1)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestIntegerBytes(t *testing.T) {
	tests := []struct {
		value    int64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{256, []byte{0x01, 0x00}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
		{9223372036854775807, []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{-9223372036854775808, []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, integerBytes(tt.value), "value %d", tt.value)
	}
}

func TestEncoder_Primitives(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	require.NoError(t, enc.WriteString("o=acme"))
	require.NoError(t, enc.WriteInteger(5))
	require.NoError(t, enc.WriteBoolean(true))
	require.NoError(t, enc.WriteBoolean(false))
	require.NoError(t, enc.WriteEnumerated(2))
	require.NoError(t, enc.WriteNull())

	expected := []byte{
		0x04, 0x06, 'o', '=', 'a', 'c', 'm', 'e',
		0x02, 0x01, 0x05,
		0x01, 0x01, 0xFF,
		0x01, 0x01, 0x00,
		0x0A, 0x01, 0x02,
		0x05, 0x00,
	}
	assert.Equal(t, expected, buf.Bytes())
	assert.Equal(t, len(expected), enc.Written())
}

func TestEncoder_Constructed(t *testing.T) {
	inner, err := AppendOctetString(nil, []byte("uid=alice"))
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	require.NoError(t, enc.WriteSequence(inner))
	require.NoError(t, enc.WriteContext(0, false, []byte("x")))
	require.NoError(t, enc.WriteContext(1, true, inner))

	out := buf.Bytes()
	assert.Equal(t, byte(0x30), out[0])
	assert.Equal(t, byte(len(inner)), out[1])
	assert.Equal(t, []byte{0x80, 0x01, 'x'}, out[2+len(inner):5+len(inner)])
	assert.Equal(t, byte(0xA1), out[5+len(inner)])
}

func TestEncoder_LongValue(t *testing.T) {
	value := strings.Repeat("a", 300)

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).WriteString(value))

	out := buf.Bytes()
	assert.Equal(t, []byte{0x04, 0x82, 0x01, 0x2C}, out[:4])
	assert.Len(t, out, 304)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestEncoder_StreamFaults(t *testing.T) {
	boom := errors.New("disk on fire")

	err := NewEncoder(failingWriter{err: boom}).WriteString("cn=x")
	assert.ErrorIs(t, err, boom)

	err = NewEncoder(shortWriter{}).WriteInteger(1)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestEncoder_RawAndElementErrors(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	require.NoError(t, enc.WriteRaw([]byte{0x05, 0x00}))
	assert.ErrorIs(t, enc.WriteElement(0x01, TypePrimitive, 1, nil), ErrInvalidTagClass)
	assert.Equal(t, []byte{0x05, 0x00}, buf.Bytes())
}

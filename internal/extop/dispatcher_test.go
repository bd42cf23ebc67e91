package extop

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/obaext/internal/ldap"
	"github.com/KilimcininKorOglu/obaext/internal/logging"
)

type pairResponse struct {
	*GenericResponse
	First  string
	Second int64
}

func pairFactory(oid string, value []byte) (Response, error) {
	r := NewReader(oid, value)
	first, err := r.ReadString("first")
	if err != nil {
		return nil, err
	}
	second, err := r.ReadInteger("second")
	if err != nil {
		return nil, err
	}
	if err := r.Done(); err != nil {
		return nil, err
	}
	return &pairResponse{
		GenericResponse: NewGenericResponse(oid, value),
		First:           first,
		Second:          second,
	}, nil
}

func TestDispatcher_TypedResponse(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("1.2.3", pairFactory))

	value, err := Build(OctetString("x"), Integer(9))
	require.NoError(t, err)

	env := &Envelope{
		Result:   ldap.Result{ResultCode: ldap.ResultSuccess, DiagnosticMessage: "fine"},
		OID:      "1.2.3",
		Value:    value,
		HasValue: true,
	}
	resp, err := NewDispatcher(reg).Dispatch(env)
	require.NoError(t, err)

	pair, ok := resp.(*pairResponse)
	require.True(t, ok)
	assert.Equal(t, "x", pair.First)
	assert.Equal(t, int64(9), pair.Second)
	assert.Equal(t, "1.2.3", pair.ResponseOID())
	assert.Equal(t, value, pair.ResponseValue())
	assert.Equal(t, "fine", pair.LDAPResult().DiagnosticMessage)
}

func TestDispatcher_UnregisteredOIDFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		oid   string
		value []byte
	}{
		{"unknown oid", "9.9.9", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"empty oid", "", []byte("dn:cn=admin")},
		{"no value", "9.9.9", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &Envelope{
				Result: ldap.Result{ResultCode: ldap.ResultUnwillingToPerform},
				OID:    tt.oid,
				Value:  tt.value,
			}
			resp, err := NewDispatcher(NewRegistry()).Dispatch(env)
			require.NoError(t, err)

			generic, ok := resp.(*GenericResponse)
			require.True(t, ok)
			assert.Equal(t, tt.oid, generic.ResponseOID())
			assert.Equal(t, tt.value, generic.ResponseValue())
			assert.Equal(t, ldap.ResultUnwillingToPerform, generic.LDAPResult().ResultCode)
		})
	}
}

func TestDispatcher_MalformedPayload(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("1.2.3", pairFactory))
	d := NewDispatcher(reg)

	trailing, err := Build(OctetString("x"), Integer(9), Null())
	require.NoError(t, err)

	tests := []struct {
		name  string
		value []byte
		field string
	}{
		{"truncated", []byte{0x04, 0x05, 'x'}, "first"},
		{"wrong tag", []byte{0x02, 0x01, 0x01}, "first"},
		{"missing second", []byte{0x04, 0x01, 'x'}, "second"},
		{"trailing bytes", trailing, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := d.Dispatch(&Envelope{OID: "1.2.3", Value: tt.value, HasValue: true})
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecoding)
			assert.False(t, Retryable(err))

			var de *DecodingError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "1.2.3", de.OID)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestDispatcher_WrapsForeignFactoryErrors(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("bad payload")
	require.NoError(t, reg.Register("1.2.3", func(string, []byte) (Response, error) {
		return nil, boom
	}))
	require.NoError(t, reg.Register("1.2.4", func(string, []byte) (Response, error) {
		return nil, nil
	}))
	d := NewDispatcher(reg)

	_, err := d.Dispatch(&Envelope{OID: "1.2.3"})
	assert.ErrorIs(t, err, ErrDecoding)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ldap.ResultDecodingError, ResultCodeOf(err))

	_, err = d.Dispatch(&Envelope{OID: "1.2.4"})
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestDispatcher_NilEnvelope(t *testing.T) {
	d := NewDispatcher(NewRegistry())

	_, err := d.Dispatch(nil)
	assert.ErrorIs(t, err, ErrParameter)

	_, err = d.DispatchReply(nil, nil)
	assert.ErrorIs(t, err, ErrParameter)
}

func TestDispatcher_DispatchReplyUsesRequestOID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("1.2.3", pairFactory))
	d := NewDispatcher(reg)

	req, err := NewRequest("1.2.3", nil)
	require.NoError(t, err)
	value, err := Build(OctetString("y"), Integer(1))
	require.NoError(t, err)

	resp, err := d.DispatchReply(req, &Envelope{Value: value, HasValue: true})
	require.NoError(t, err)
	pair, ok := resp.(*pairResponse)
	require.True(t, ok)
	assert.Equal(t, "y", pair.First)

	resp, err = d.DispatchReply(req, &Envelope{OID: "9.9.9", Value: value})
	require.NoError(t, err)
	assert.IsType(t, &GenericResponse{}, resp)

	resp, err = d.DispatchReply(nil, &Envelope{Value: value})
	require.NoError(t, err)
	assert.IsType(t, &GenericResponse{}, resp)
}

func TestDispatcher_RecordsAndLogsOutcomes(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("1.2.3", pairFactory))

	var buf bytes.Buffer
	rec := newFakeRecorder()
	d := NewDispatcher(reg,
		WithRecorder(rec),
		WithLogger(logging.NewWithWriter(logging.Config{Level: "debug", Format: "json"}, &buf)),
	)

	value, err := Build(OctetString("x"), Integer(1))
	require.NoError(t, err)

	_, _ = d.Dispatch(&Envelope{OID: "1.2.3", Value: value})
	_, _ = d.Dispatch(&Envelope{OID: "1.2.3", Value: []byte{0xFF}})
	_, _ = d.Dispatch(&Envelope{OID: "9.9.9"})

	_, _ = d.Dispatch(&Envelope{OID: "1.2.3", Result: ldap.Result{ResultCode: ldap.ResultInsufficientAccessRights}})

	assert.Equal(t, []string{OutcomeTyped, OutcomeDecodeError, OutcomeResultError}, rec.dispatch["1.2.3"])
	assert.Equal(t, []string{OutcomeGeneric}, rec.dispatch[UnregisteredOID])
	assert.NotContains(t, rec.dispatch, "9.9.9")
	assert.Contains(t, buf.String(), "extended response dispatched")
	assert.Contains(t, buf.String(), "using generic response")
}

func TestNewDispatcher_DefaultsToDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry, NewDispatcher(nil).Registry())
}

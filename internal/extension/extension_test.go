package extension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
	"github.com/KilimcininKorOglu/obaext/internal/ldap"
)

func TestRegisterAll(t *testing.T) {
	reg := extop.NewRegistry()
	require.NoError(t, RegisterAll(reg))
	require.NoError(t, RegisterAll(reg))

	assert.Equal(t, []string{
		StartTLSOID,
		PasswordModifyOID,
		WhoAmIOID,
		GetReplicaInfoResponseOID,
	}, reg.OIDs())
	for _, ext := range All() {
		assert.True(t, reg.Installed(ext.Name()), ext.Name())
	}
}

func TestRegisterAll_RespectsExistingFactory(t *testing.T) {
	reg := extop.NewRegistry()
	custom := func(oid string, value []byte) (extop.Response, error) {
		return extop.NewGenericResponse("custom", value), nil
	}
	require.NoError(t, reg.Register(WhoAmIOID, custom))
	require.NoError(t, RegisterAll(reg))

	resp, err := extop.NewDispatcher(reg).Dispatch(&extop.Envelope{OID: WhoAmIOID})
	require.NoError(t, err)
	assert.Equal(t, "custom", resp.ResponseOID())
}

func TestWhoAmI(t *testing.T) {
	req, err := NewWhoAmIRequest()
	require.NoError(t, err)
	assert.Equal(t, WhoAmIOID, req.OID())
	assert.False(t, req.HasValue())

	tests := []struct {
		name      string
		value     string
		anonymous bool
		dn        string
		uid       string
	}{
		{"anonymous", "", true, "", ""},
		{"dn", "dn:cn=admin,o=acme", false, "cn=admin,o=acme", ""},
		{"user id", "u:alice", false, "", "alice"},
	}

	d := extop.NewDispatcher(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &extop.Envelope{Value: []byte(tt.value), HasValue: tt.value != ""}
			resp, err := d.DispatchReply(req, env)
			require.NoError(t, err)

			who, ok := resp.(*WhoAmIResponse)
			require.True(t, ok)
			assert.Equal(t, tt.value, who.AuthzID)
			assert.Equal(t, tt.anonymous, who.Anonymous())
			dn, _ := who.DN()
			assert.Equal(t, tt.dn, dn)
			uid, _ := who.UserID()
			assert.Equal(t, tt.uid, uid)
			assert.Equal(t, WhoAmIOID, who.ResponseOID())
		})
	}
}

func TestWhoAmI_InvalidAuthzID(t *testing.T) {
	_, err := ParseWhoAmIResponse(WhoAmIOID, []byte("cn=admin"))
	assert.ErrorIs(t, err, extop.ErrDecoding)
}

func TestPasswordModifyRequest(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		old      string
		new      string
		expected []byte
	}{
		{"empty", "", "", "", []byte{0x30, 0x00}},
		{"new only", "", "", "pw", []byte{0x30, 0x04, 0x82, 0x02, 'p', 'w'}},
		{
			"all fields", "u", "o", "n",
			[]byte{0x30, 0x09, 0x80, 0x01, 'u', 0x81, 0x01, 'o', 0x82, 0x01, 'n'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewPasswordModifyRequest(tt.user, tt.old, tt.new)
			require.NoError(t, err)
			assert.Equal(t, PasswordModifyOID, req.OID())
			assert.Equal(t, tt.expected, req.Value())
			assert.Equal(t, tt.user, req.UserIdentity)
		})
	}
}

func TestPasswordModifyResponse(t *testing.T) {
	generated, err := extop.Build(extop.Sequence(extop.Tagged(0, extop.OctetString("s3cr3t"))))
	require.NoError(t, err)
	bad, err := extop.Build(extop.Sequence(extop.Tagged(1, extop.OctetString("x"))))
	require.NoError(t, err)

	resp, err := ParsePasswordModifyResponse(PasswordModifyOID, nil)
	require.NoError(t, err)
	pm := resp.(*PasswordModifyResponse)
	assert.False(t, pm.HasGenPasswd)

	resp, err = ParsePasswordModifyResponse(PasswordModifyOID, []byte{0x30, 0x00})
	require.NoError(t, err)
	assert.False(t, resp.(*PasswordModifyResponse).HasGenPasswd)

	resp, err = ParsePasswordModifyResponse(PasswordModifyOID, generated)
	require.NoError(t, err)
	pm = resp.(*PasswordModifyResponse)
	assert.True(t, pm.HasGenPasswd)
	assert.Equal(t, "s3cr3t", pm.GenPasswd)

	_, err = ParsePasswordModifyResponse(PasswordModifyOID, bad)
	assert.ErrorIs(t, err, extop.ErrDecoding)

	_, err = ParsePasswordModifyResponse(PasswordModifyOID, []byte{0x04, 0x00})
	assert.ErrorIs(t, err, extop.ErrDecoding)
}

func TestStartTLS(t *testing.T) {
	req, err := NewStartTLSRequest()
	require.NoError(t, err)
	assert.Equal(t, StartTLSOID, req.OID())
	assert.False(t, req.HasValue())

	env := &extop.Envelope{
		Result: ldap.Result{ResultCode: ldap.ResultSuccess},
		OID:    StartTLSOID,
	}
	resp, err := extop.NewDispatcher(nil).Dispatch(env)
	require.NoError(t, err)
	tls, ok := resp.(*StartTLSResponse)
	require.True(t, ok)
	assert.True(t, tls.Ready())

	env.Result.ResultCode = ldap.ResultUnavailable
	resp, err = extop.NewDispatcher(nil).Dispatch(env)
	require.NoError(t, err)
	assert.False(t, resp.(*StartTLSResponse).Ready())

	_, err = ParseStartTLSResponse(StartTLSOID, []byte{0x01})
	assert.ErrorIs(t, err, extop.ErrDecoding)
}

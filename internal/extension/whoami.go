package extension

import (
	"strings"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// WhoAmIOID is the "Who am I?" operation (RFC 4532). The server usually
// omits responseName, so the factory is registered under the request OID.
const WhoAmIOID = "1.3.6.1.4.1.4203.1.11.3"

// WhoAmIRequest asks for the authorization identity of the connection.
// It carries no value.
type WhoAmIRequest struct {
	*extop.Request
}

// NewWhoAmIRequest creates a WhoAmIRequest.
func NewWhoAmIRequest() (*WhoAmIRequest, error) {
	if err := extop.DefaultRegistry.Install(WhoAmIExtension); err != nil {
		return nil, err
	}
	req, err := extop.NewRequest(WhoAmIOID, nil)
	if err != nil {
		return nil, err
	}
	return &WhoAmIRequest{Request: req}, nil
}

// WhoAmIResponse carries the authzId (RFC 4513 Section 5.2.1.8) as sent by
// the server. The value is a plain string, not BER.
type WhoAmIResponse struct {
	*extop.GenericResponse
	AuthzID string `json:"authzId" yaml:"authzId"`
}

// Anonymous reports whether the connection is unauthenticated.
func (r *WhoAmIResponse) Anonymous() bool {
	return r.AuthzID == ""
}

// DN returns the DN of a "dn:" authzId.
func (r *WhoAmIResponse) DN() (string, bool) {
	return strings.CutPrefix(r.AuthzID, "dn:")
}

// UserID returns the user id of a "u:" authzId.
func (r *WhoAmIResponse) UserID() (string, bool) {
	return strings.CutPrefix(r.AuthzID, "u:")
}

// ParseWhoAmIResponse is the extop.Factory for WhoAmIOID.
func ParseWhoAmIResponse(oid string, value []byte) (extop.Response, error) {
	authzID := string(value)
	if authzID != "" && !strings.HasPrefix(authzID, "dn:") && !strings.HasPrefix(authzID, "u:") {
		return nil, &extop.DecodingError{OID: oid, Field: "authzId", Err: errUnknownAuthzID}
	}
	return &WhoAmIResponse{
		GenericResponse: extop.NewGenericResponse(oid, value),
		AuthzID:         authzID,
	}, nil
}

type whoAmIExt struct{}

func (whoAmIExt) Name() string {
	return "whoami"
}

func (whoAmIExt) Register(r *extop.Registry) error {
	_, err := r.Ensure(WhoAmIOID, ParseWhoAmIResponse)
	return err
}

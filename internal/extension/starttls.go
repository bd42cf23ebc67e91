package extension

import (
	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// StartTLSOID is the StartTLS operation (RFC 4511 Section 4.14).
const StartTLSOID = "1.3.6.1.4.1.1466.20037"

// StartTLSRequest asks the server to start TLS on the connection.
type StartTLSRequest struct {
	*extop.Request
}

// NewStartTLSRequest creates a StartTLSRequest. It carries no value.
func NewStartTLSRequest() (*StartTLSRequest, error) {
	if err := extop.DefaultRegistry.Install(StartTLSExtension); err != nil {
		return nil, err
	}
	req, err := extop.NewRequest(StartTLSOID, nil)
	if err != nil {
		return nil, err
	}
	return &StartTLSRequest{Request: req}, nil
}

// StartTLSResponse is the reply to StartTLSRequest. Success means the
// client may begin the TLS handshake.
type StartTLSResponse struct {
	*extop.GenericResponse
}

// Ready reports whether the server accepted the request.
func (r *StartTLSResponse) Ready() bool {
	return r.LDAPResult().ResultCode.IsSuccess()
}

// ParseStartTLSResponse is the extop.Factory for StartTLSOID.
func ParseStartTLSResponse(oid string, value []byte) (extop.Response, error) {
	if len(value) != 0 {
		return nil, &extop.DecodingError{OID: oid, Field: "responseValue", Err: errUnexpectedValue}
	}
	return &StartTLSResponse{GenericResponse: extop.NewGenericResponse(oid, nil)}, nil
}

type startTLSExt struct{}

func (startTLSExt) Name() string {
	return "starttls"
}

func (startTLSExt) Register(r *extop.Registry) error {
	_, err := r.Ensure(StartTLSOID, ParseStartTLSResponse)
	return err
}

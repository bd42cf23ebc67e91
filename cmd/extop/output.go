package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/obaext/internal/extension"
	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

// requestView is the printable form of a built request.
type requestView struct {
	OID     string `json:"oid" yaml:"oid"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// responseView is the printable form of a dispatched response.
type responseView struct {
	Kind              string      `json:"kind" yaml:"kind"`
	OID               string      `json:"oid,omitempty" yaml:"oid,omitempty"`
	ResultCode        string      `json:"resultCode" yaml:"resultCode"`
	MatchedDN         string      `json:"matchedDn,omitempty" yaml:"matchedDn,omitempty"`
	DiagnosticMessage string      `json:"diagnosticMessage,omitempty" yaml:"diagnosticMessage,omitempty"`
	Value             string      `json:"value,omitempty" yaml:"value,omitempty"`
	Fields            interface{} `json:"fields,omitempty" yaml:"fields,omitempty"`
}

func viewResponse(resp extop.Response) responseView {
	result := resp.LDAPResult()
	v := responseView{
		OID:               resp.ResponseOID(),
		ResultCode:        fmt.Sprintf("%s (%d)", result.ResultCode, int(result.ResultCode)),
		MatchedDN:         result.MatchedDN,
		DiagnosticMessage: result.DiagnosticMessage,
		Value:             hex.EncodeToString(resp.ResponseValue()),
	}

	switch r := resp.(type) {
	case *extension.GetReplicaInfoResponse:
		v.Kind = "replica-info"
		v.Fields = r.ReplicaInfo
	case *extension.WhoAmIResponse:
		v.Kind = "whoami"
		v.Fields = map[string]string{"authzId": r.AuthzID}
	case *extension.PasswordModifyResponse:
		v.Kind = "passwd"
		if r.HasGenPasswd {
			v.Fields = map[string]string{"genPasswd": r.GenPasswd}
		}
	case *extension.StartTLSResponse:
		v.Kind = "starttls"
		v.Fields = map[string]bool{"ready": r.Ready()}
	default:
		v.Kind = "generic"
	}
	return v
}

// render writes v to w in the given format. Text output is compact YAML.
func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
}

package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	asn1 "github.com/go-asn1-ber/asn1-ber"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		oid        string
		value      string
		message    string
		requestOID string
		dump       bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode an extended response through the response registry",
		Long: `Decode an extended response through the response registry.

Either pass a full LDAPMessage with --message, or the response parts with
--oid and --value. Values are hex encoded. OIDs without a registered factory
are printed as generic responses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envelopeFromFlags(message, oid, value)
			if err != nil {
				return err
			}

			var req extop.ExtendedOperation
			if requestOID != "" {
				if req, err = extop.NewRequest(requestOID, nil); err != nil {
					return err
				}
			}

			resp, err := a.dispatcher.DispatchReply(req, env)
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), a.cfg.Output.Format, viewResponse(resp)); err != nil {
				return err
			}
			if dump && len(env.Value) > 0 {
				return dumpTLV(cmd.OutOrStdout(), env.Value)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&oid, "oid", "", "response OID (responseName)")
	f.StringVar(&value, "value", "", "hex encoded responseValue")
	f.StringVar(&message, "message", "", "hex encoded LDAPMessage carrying an ExtendedResponse")
	f.StringVar(&requestOID, "request-oid", "", "OID of the request, used when the response has no OID")
	f.BoolVar(&dump, "dump", false, "also print the BER element tree of the value")
	cmd.MarkFlagsMutuallyExclusive("message", "oid")
	cmd.MarkFlagsMutuallyExclusive("message", "value")

	return cmd
}

func envelopeFromFlags(message, oid, value string) (*extop.Envelope, error) {
	if message != "" {
		data, err := decodeHex(message)
		if err != nil {
			return nil, fmt.Errorf("--message: %w", err)
		}
		env, _, err := extop.ParseEnvelope(data)
		return env, err
	}

	if oid == "" && value == "" {
		return nil, errors.New("one of --message, --oid or --value is required")
	}
	env := &extop.Envelope{OID: oid}
	if value != "" {
		data, err := decodeHex(value)
		if err != nil {
			return nil, fmt.Errorf("--value: %w", err)
		}
		env.Value = data
		env.HasValue = true
	}
	return env, nil
}

// decodeHex accepts hex with optional whitespace and colons between octets.
func decodeHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}

// dumpTLV prints every top-level element of value as a BER tree.
func dumpTLV(w io.Writer, value []byte) error {
	fmt.Fprintln(w, "# ber")
	r := bytes.NewReader(value)
	for r.Len() > 0 {
		p, err := asn1.ReadPacket(r)
		if err != nil {
			return fmt.Errorf("ber dump: %w", err)
		}
		asn1.WritePacket(w, p)
	}
	return nil
}

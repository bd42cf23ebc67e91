package main

import (
	"encoding/hex"
	"errors"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obaext/internal/extension"
	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

func newBuildCmd(a *app) *cobra.Command {
	var messageID int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an extended request value and its LDAPMessage",
	}
	cmd.PersistentFlags().IntVar(&messageID, "message-id", 1, "LDAP message ID; 0 prints the value only")

	emit := func(cmd *cobra.Command, op extop.ExtendedOperation) error {
		view := requestView{OID: op.OID()}
		if op.HasValue() {
			view.Value = hex.EncodeToString(op.Value())
		}
		if messageID != 0 {
			msg, err := extop.Encode(op, messageID)
			if err != nil {
				return err
			}
			view.Message = hex.EncodeToString(msg)
		}
		a.logger.Debug("request built", "oid", op.OID(), "value_len", len(op.Value()))
		return render(cmd.OutOrStdout(), a.cfg.Output.Format, view)
	}

	var serverDN, partitionDN string
	replicaCmd := &cobra.Command{
		Use:   "replica-info",
		Short: "Build a GetReplicaInfo request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("server") || !cmd.Flags().Changed("partition") {
				return errors.New("--server and --partition are required")
			}
			req, err := extension.NewGetReplicaInfoRequest(serverDN, partitionDN)
			if err != nil {
				return err
			}
			return emit(cmd, req)
		},
	}
	replicaCmd.Flags().StringVar(&serverDN, "server", "", "DN of the server holding the replica")
	replicaCmd.Flags().StringVar(&partitionDN, "partition", "", "DN of the partition root")

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Build a Who am I? request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := extension.NewWhoAmIRequest()
			if err != nil {
				return err
			}
			return emit(cmd, req)
		},
	}

	startTLSCmd := &cobra.Command{
		Use:   "starttls",
		Short: "Build a StartTLS request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := extension.NewStartTLSRequest()
			if err != nil {
				return err
			}
			return emit(cmd, req)
		},
	}

	var user, oldPasswd, newPasswd string
	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Build a Password Modify request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := extension.NewPasswordModifyRequest(user, oldPasswd, newPasswd)
			if err != nil {
				return err
			}
			return emit(cmd, req)
		},
	}
	passwdCmd.Flags().StringVar(&user, "user", "", "userIdentity (default: the bound user)")
	passwdCmd.Flags().StringVar(&oldPasswd, "old", "", "current password")
	passwdCmd.Flags().StringVar(&newPasswd, "new", "", "new password (default: server generated)")

	var oid string
	var rawArgs []string
	rawCmd := &cobra.Command{
		Use:   "raw",
		Short: "Build a request from an OID and OCTET STRING arguments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := make([]extop.Arg, 0, len(rawArgs))
			for _, s := range rawArgs {
				values = append(values, extop.OctetString(s))
			}
			req, err := extop.NewRequestWithArgs(oid, values...)
			if err != nil {
				return err
			}
			return emit(cmd, req)
		},
	}
	rawCmd.Flags().StringVar(&oid, "oid", "", "request OID")
	rawCmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "OCTET STRING argument, repeatable, encoded in order")

	cmd.AddCommand(replicaCmd, whoamiCmd, startTLSCmd, passwdCmd, rawCmd)
	return cmd
}

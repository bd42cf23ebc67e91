// Package extension provides typed LDAP extended operations built on extop:
// eDirectory replica information, Who am I?, Password Modify and StartTLS.
//
// Each request constructor installs its response factory into
// extop.DefaultRegistry the first time it is called, so a dispatcher over the
// default registry returns typed responses for any operation the process has
// issued.
package extension

import (
	"errors"

	"github.com/KilimcininKorOglu/obaext/internal/extop"
)

var (
	errUnknownAuthzID  = errors.New("authzId must be empty or start with dn: or u:")
	errUnexpectedValue = errors.New("response carries an unexpected value")
)

// Extensions registered by this package.
var (
	ReplicaInfoExtension    extop.Extension = replicaInfoExt{}
	WhoAmIExtension         extop.Extension = whoAmIExt{}
	PasswordModifyExtension extop.Extension = passwordModifyExt{}
	StartTLSExtension       extop.Extension = startTLSExt{}
)

// All returns every extension in this package.
func All() []extop.Extension {
	return []extop.Extension{ReplicaInfoExtension, WhoAmIExtension, PasswordModifyExtension, StartTLSExtension}
}

// RegisterAll installs every extension into reg, stopping at the first error.
func RegisterAll(reg *extop.Registry) error {
	for _, ext := range All() {
		if err := reg.Install(ext); err != nil {
			return err
		}
	}
	return nil
}

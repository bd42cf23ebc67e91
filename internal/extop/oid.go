package extop

import (
	"fmt"
)

// ValidateOID checks that oid is a dotted-decimal object identifier with at
// least two arcs and no empty arcs. Leading zeros inside an arc are rejected
// because OID comparison in this package is exact string match.
func ValidateOID(oid string) error {
	if oid == "" {
		return fmt.Errorf("%w: empty", ErrInvalidOID)
	}

	arcs := 1
	arcStart := 0
	for i := 0; i <= len(oid); i++ {
		if i == len(oid) || oid[i] == '.' {
			arc := oid[arcStart:i]
			switch {
			case arc == "":
				return fmt.Errorf("%w: %q has an empty arc", ErrInvalidOID, oid)
			case len(arc) > 1 && arc[0] == '0':
				return fmt.Errorf("%w: %q has a leading zero", ErrInvalidOID, oid)
			}
			if i < len(oid) {
				arcs++
			}
			arcStart = i + 1
			continue
		}
		if oid[i] < '0' || oid[i] > '9' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidOID, oid, oid[i])
		}
	}

	if arcs < 2 {
		return fmt.Errorf("%w: %q needs at least two arcs", ErrInvalidOID, oid)
	}
	return nil
}

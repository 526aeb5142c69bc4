package topology

import (
	"errors"
	"fmt"
	"strings"
)

// Stable error codes for graph construction failures. Precondition and
// invariant violations are fatal and non-retryable; materialization errors
// from the provisioning engine are never wrapped into these codes.
const (
	CodeZoneNotFound               = "topology.zone_not_found"
	CodeMissingCertificateForAlias = "topology.missing_certificate_for_alias"
	CodeRecordNameMismatch         = "topology.record_name_mismatch"
)

// Error is a construction error with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCode reports whether err is a topology error carrying code.
func IsCode(err error, code string) bool {
	var topoErr *Error
	return errors.As(err, &topoErr) && topoErr.Code == code
}

// ZoneNotFoundError is the error ZoneResolver implementations return when no
// hosted zone is authoritative for domain. It is exported because resolvers
// live outside this package.
func ZoneNotFoundError(domain string) *Error {
	return &Error{
		Code:    CodeZoneNotFound,
		Message: fmt.Sprintf("no hosted zone is authoritative for %q; delegate the domain before deploying", domain),
	}
}

func errMissingCertificateForAlias(alias string) *Error {
	return &Error{
		Code:    CodeMissingCertificateForAlias,
		Message: fmt.Sprintf("alias %q requires an attached certificate covering it", alias),
	}
}

func errRecordNameMismatch(name string, aliases []string) *Error {
	return &Error{
		Code:    CodeRecordNameMismatch,
		Message: fmt.Sprintf("record name %q is not among the distribution aliases [%s]", name, strings.Join(aliases, ", ")),
	}
}

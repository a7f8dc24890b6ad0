// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Icon resolution errors
	CodeIconNamespaceUnknown Code = "ICON_NAMESPACE_UNKNOWN"
	CodeIconNameUnknown      Code = "ICON_NAME_UNKNOWN"
	CodeIconReferenceInvalid Code = "ICON_REFERENCE_INVALID"
	CodeIconAttributeInvalid Code = "ICON_ATTRIBUTE_INVALID"

	// Registry errors
	CodeIconRegistryMissing Code = "ICON_REGISTRY_MISSING"
	CodeIconRegistryInvalid Code = "ICON_REGISTRY_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed references
	case CodeIconReferenceInvalid,
		CodeIconAttributeInvalid:
		return codes.InvalidArgument

	// NotFound - nothing is registered under the reference
	case CodeIconNamespaceUnknown,
		CodeIconNameUnknown:
		return codes.NotFound

	// FailedPrecondition - the host did not configure a usable registry
	case CodeIconRegistryMissing,
		CodeIconRegistryInvalid:
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}

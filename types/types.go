// Package types contains the shared status taxonomy for mailprobe.
// This package does not import anything from other mailprobe packages
// to avoid circular imports.
package types

// Status classifies the outcome of a lookup, a probe, or a whole
// validation. Not every value is meaningful for every record: domain
// lookups use ok/invalid, SMTP probes use ok/unreachable/unknown, and
// verdict fields use valid/invalid/unknown.
type Status = string

const (
	// StatusOK marks a definite positive answer from a network stage.
	StatusOK Status = "ok"
	// StatusValid marks a positive verdict field.
	StatusValid Status = "valid"
	// StatusInvalid marks a definite negative: bad format, no mail
	// path, or a server that answered and refused.
	StatusInvalid Status = "invalid"
	// StatusUnreachable marks a network-level non-response: timeout,
	// disconnect, or connection refused.
	StatusUnreachable Status = "unreachable"
	// StatusUnknown marks an indeterminate outcome. It is a deliberate
	// "could not determine" signal, not an error.
	StatusUnknown Status = "unknown"
)

// Method identifies which resolution mechanism produced a domain
// lookup result.
type Method = string

const (
	// MethodMX is the primary mechanism: an MX record query.
	MethodMX Method = "mx"
	// MethodHost is the fallback mechanism: basic A/AAAA host
	// resolution.
	MethodHost Method = "host"
	// MethodNone means no resolution was attempted, which happens only
	// for an empty domain.
	MethodNone Method = "none"
)

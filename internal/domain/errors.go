package domain

import "fmt"

// Every error in this package reflects a caller-input or configuration
// defect, never a transient condition; nothing here is retriable.

// ConfigError reports an invalid layer rule table or project configuration.
type ConfigError struct {
	Detail string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Detail
}

// ParseErrorKind classifies entity schema parse failures.
type ParseErrorKind string

const (
	ParseMalformedProperty  ParseErrorKind = "malformed_property"
	ParseDuplicateProperty  ParseErrorKind = "duplicate_property"
	ParseInvalidIdentifier  ParseErrorKind = "invalid_identifier"
	ParseUnknownCardinality ParseErrorKind = "unknown_cardinality"
)

// ParseError reports a malformed entity description, citing the offending
// token so the caller can re-prompt for corrected input.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (%s): %q", e.Kind, e.Token)
}

// GenErrorKind classifies generation failures.
type GenErrorKind string

const (
	GenNoTemplateForLayer GenErrorKind = "no_template_for_layer"
	GenUnresolvedSlot     GenErrorKind = "unresolved_slot"
)

// GenError reports a registry/schema mismatch. Generation is all-or-nothing:
// no artifacts are returned alongside a GenError.
type GenError struct {
	Kind   GenErrorKind
	Detail string
}

func (e *GenError) Error() string {
	return fmt.Sprintf("generation error (%s): %s", e.Kind, e.Detail)
}

// AuditErrorKind classifies audit failures.
type AuditErrorKind string

const (
	AuditUnknownLayer AuditErrorKind = "unknown_layer"
)

// AuditError reports a malformed dependency fact. The whole audit fails
// rather than returning a silently incomplete report.
type AuditError struct {
	Kind   AuditErrorKind
	Detail string
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("audit error (%s): %s", e.Kind, e.Detail)
}

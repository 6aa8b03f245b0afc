package jsonschema

import (
	"github.com/phanitejak/jsonvalidator/docpath"
	"github.com/phanitejak/jsonvalidator/engine"
)

// Severity of a finding.
type Severity string

// SeverityWarning is the severity of every finding.
const SeverityWarning Severity = "warning"

const unknownErrorMessage = "Unknown error"

// ValidationError is one way a document does not conform to the schema.
type ValidationError struct {
	Path     docpath.Path `json:"path"`
	Message  string       `json:"message"`
	Severity Severity     `json:"severity"`
}

func normalizeError(document interface{}, raw engine.RawError) ValidationError {
	msg := raw.Message
	if msg == "" {
		msg = unknownErrorMessage
	}
	return ValidationError{
		Path:     docpath.Resolve(raw.InstanceLocation, document),
		Message:  msg,
		Severity: SeverityWarning,
	}
}

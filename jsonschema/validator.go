// Package jsonschema builds validation functions that check JSON documents
// against a JSON Schema and report every failure as a ValidationError.
package jsonschema

import (
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/phanitejak/jsonvalidator/engine"
	"github.com/phanitejak/jsonvalidator/gerror"
	"github.com/phanitejak/jsonvalidator/logging"
)

var (
	// ErrMissingSchema is returned when Config.Schema is nil.
	ErrMissingSchema = errors.New("missing schema")
	// ErrVerboseDisabled is returned when the engine is left without verbose
	// errors, which message improvement relies on.
	ErrVerboseDisabled = errors.New("verbose errors disabled")
)

const missingSchemaMessage = "a schema is required: " +
	"replace the legacy NewValidator(schema, definitions) call with " +
	"NewValidator(jsonschema.Config{Schema: ..., SchemaDefinitions: ...})"

var pkgLogger = logging.NewLogger()

// Config describes the validator to build.
type Config struct {
	// Schema is the root JSON Schema. Required.
	Schema interface{}
	// SchemaDefinitions are registered under their key so the schema can
	// refer to them with {"$ref": "<key>"}.
	SchemaDefinitions map[string]interface{}
	// EngineOptions override the defaults. See LoadEngineOptions.
	EngineOptions *EngineOptions
	// OnCreateEngine is called with the configured engine before the schema
	// is compiled. It may change the engine in place and return nil, or
	// return a different engine to use instead.
	OnCreateEngine func(*engine.Engine) *engine.Engine
	// Logger defaults to a logger configured from the environment.
	Logger logging.Logger
}

// ValidateFunc checks document against the compiled schema. The result is
// empty when the document conforms. The error is reserved for documents
// that cannot be processed at all.
type ValidateFunc func(document interface{}) ([]ValidationError, error)

// NewValidator configures an engine, compiles cfg.Schema once and returns a
// function validating documents against it.
func NewValidator(cfg Config) (ValidateFunc, error) {
	log := cfg.Logger
	if log == nil {
		log = pkgLogger
	}

	if isNilSchema(cfg.Schema) {
		return nil, gerror.Wrap(gerror.InvalidConfiguration, ErrMissingSchema, missingSchemaMessage)
	}

	e, err := configureEngine(cfg.SchemaDefinitions, cfg.EngineOptions)
	if err != nil {
		return nil, err
	}
	log.Debugf("Engine configured with %d schema definitions", len(cfg.SchemaDefinitions))

	if cfg.OnCreateEngine != nil {
		if replacement := cfg.OnCreateEngine(e); replacement != nil {
			log.Debug("OnCreateEngine replaced the engine")
			e = replacement
		}
	}
	if !e.Options().Verbose {
		return nil, gerror.Wrap(gerror.InvalidConfiguration, ErrVerboseDisabled,
			"the engine must keep verbose errors enabled")
	}

	compiled, err := e.Compile(cfg.Schema)
	if err != nil {
		compilations.GetCustomCounter(resultFailure).Inc()
		return nil, gerror.Wrap(gerror.InvalidSchema, err, "cannot compile schema")
	}
	compilations.GetCustomCounter(resultSuccess).Inc()
	log.WithFields(map[string]interface{}{
		"draft":       e.Options().Draft.String(),
		"definitions": e.Keys(),
	}).Debug("Schema compiled")

	return func(document interface{}) ([]ValidationError, error) {
		start := time.Now()
		defer validationDuration.ObserveDuration(start)
		documents.Inc()

		raw, err := compiled.Validate(document)
		if err != nil {
			return nil, gerror.Wrap(gerror.MarshallingError, err, "cannot validate document")
		}

		result := make([]ValidationError, 0, len(raw))
		for _, r := range raw {
			findings.GetCustomCounter(r.Keyword).Inc()
			result = append(result, normalizeError(document, improveError(r)))
		}
		return result, nil
	}, nil
}

// isNilSchema reports whether schema is absent: nil, a nil map, slice or
// pointer, or empty JSON text.
func isNilSchema(schema interface{}) bool {
	switch s := schema.(type) {
	case nil:
		return true
	case json.RawMessage:
		return len(s) == 0
	case []byte:
		return len(s) == 0
	case string:
		return s == ""
	}
	v := reflect.ValueOf(schema)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

package jsonschema

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/phanitejak/jsonvalidator/engine"
	"github.com/phanitejak/jsonvalidator/gerror"
)

// EngineOptions overrides the engine defaults. Nil fields and an empty
// Draft keep the default.
//
// DataRefs is accepted for compatibility and has no effect on validation:
// gojsonschema does not support $data references.
type EngineOptions struct {
	AllErrors      *bool        `envconfig:"JSONSCHEMA_ALL_ERRORS"`
	Verbose        *bool        `envconfig:"JSONSCHEMA_VERBOSE"`
	DataRefs       *bool        `envconfig:"JSONSCHEMA_DATA_REFS"`
	ValidateSchema *bool        `envconfig:"JSONSCHEMA_VALIDATE_SCHEMA"`
	Draft          engine.Draft `envconfig:"JSONSCHEMA_DRAFT"`
}

// Bool returns a pointer to b for use in EngineOptions.
func Bool(b bool) *bool {
	return &b
}

// DefaultEngineOptions are the options every engine starts from.
func DefaultEngineOptions() engine.Options {
	return engine.Options{
		AllErrors: true,
		Verbose:   true,
		DataRefs:  true,
	}
}

// LoadEngineOptions reads overrides from JSONSCHEMA_* environment
// variables. Variables that are not set leave the default in place.
func LoadEngineOptions() (*EngineOptions, error) {
	var o EngineOptions
	if err := envconfig.Process("", &o); err != nil {
		return nil, gerror.NewFromError(gerror.InvalidConfiguration, err)
	}
	return &o, nil
}

func mergeOptions(overrides *EngineOptions) engine.Options {
	opts := DefaultEngineOptions()
	if overrides == nil {
		return opts
	}
	if overrides.AllErrors != nil {
		opts.AllErrors = *overrides.AllErrors
	}
	if overrides.Verbose != nil {
		opts.Verbose = *overrides.Verbose
	}
	if overrides.DataRefs != nil {
		opts.DataRefs = *overrides.DataRefs
	}
	if overrides.ValidateSchema != nil {
		opts.ValidateSchema = *overrides.ValidateSchema
	}
	if overrides.Draft != engine.DraftAuto {
		opts.Draft = overrides.Draft
	}
	return opts
}

// Package engine adapts gojsonschema to the small surface the validator
// needs: create an instance with options, register named sub-schemas,
// compile a schema and run the compiled schema against documents.
package engine

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonreference"
	"github.com/xeipuuv/gojsonschema"
)

// Engine holds options and named sub-schemas. It is not safe for
// concurrent mutation; configure it from one goroutine before compiling.
type Engine struct {
	opts     Options
	registry *gojsonschema.SchemaLoader
	defs     []definition
	refs     map[string]string
}

type definition struct {
	key string
	ref string
	raw []byte
}

// New returns an Engine configured with opts.
func New(opts Options) *Engine {
	e := &Engine{refs: make(map[string]string)}
	e.SetOptions(opts)
	return e
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions replaces the options. Schemas registered earlier are checked
// again against the new options by the next Compile.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts
	e.registry = e.newLoader()
	for _, d := range e.defs {
		// Already accepted once; errors surface again from Compile.
		_ = e.registry.AddSchema(d.ref, gojsonschema.NewBytesLoader(d.raw))
	}
}

// Keys returns the keys of the registered sub-schemas in registration order.
func (e *Engine) Keys() []string {
	keys := make([]string, 0, len(e.defs))
	for _, d := range e.defs {
		keys = append(keys, d.key)
	}
	return keys
}

// AddSchema registers schema under key so that {"$ref": key} resolves to it.
// Keys may be plain names or absolute URIs. Relative keys are resolved the
// same way $ref values of a root schema without $id are resolved.
func (e *Engine) AddSchema(key string, schema interface{}) error {
	ref, err := resolveKey(key)
	if err != nil {
		return errors.WithMessagef(err, "schema key %q", key)
	}
	if existing, ok := e.refs[ref]; ok {
		return fmt.Errorf("schema key %q resolves to %q, already used by %q", key, ref, existing)
	}
	raw, err := marshalSchema(schema)
	if err != nil {
		return errors.WithMessagef(err, "schema %q", key)
	}
	if err := e.registry.AddSchema(ref, gojsonschema.NewBytesLoader(raw)); err != nil {
		return errors.WithMessagef(err, "add schema %q", key)
	}
	e.defs = append(e.defs, definition{key: key, ref: ref, raw: raw})
	e.refs[ref] = key
	return nil
}

// Compile compiles schema against the registered sub-schemas. Every call
// builds a fresh gojsonschema loader, so one Engine can compile any number
// of schemas.
func (e *Engine) Compile(schema interface{}) (*Compiled, error) {
	raw, err := marshalSchema(schema)
	if err != nil {
		return nil, err
	}
	loader := e.newLoader()
	for _, d := range e.defs {
		if err := loader.AddSchema(d.ref, gojsonschema.NewBytesLoader(d.raw)); err != nil {
			return nil, errors.WithMessagef(err, "add schema %q", d.key)
		}
	}
	compiled, err := loader.Compile(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, errors.WithMessage(err, "compile schema")
	}
	return &Compiled{schema: compiled, opts: e.opts}, nil
}

func (e *Engine) newLoader() *gojsonschema.SchemaLoader {
	sl := gojsonschema.NewSchemaLoader()
	sl.Validate = e.opts.ValidateSchema
	sl.Draft = e.opts.Draft.gojsonschema()
	sl.AutoDetect = e.opts.Draft == DraftAuto
	return sl
}

// resolveKey resolves key against the implicit base of a root schema
// loaded without $id, "#", which turns "address" into "/address".
func resolveKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	base, err := gojsonreference.NewJsonReference("#")
	if err != nil {
		return "", err
	}
	child, err := gojsonreference.NewJsonReference(key)
	if err != nil {
		return "", err
	}
	resolved, err := base.Inherits(child)
	if err != nil {
		return "", err
	}
	return resolved.String(), nil
}

// marshalSchema returns the JSON text of schema. Strings, byte slices and
// json.RawMessage are taken as JSON text, anything else is marshalled.
func marshalSchema(schema interface{}) ([]byte, error) {
	var raw []byte
	switch s := schema.(type) {
	case nil:
		return nil, errors.New("schema is nil")
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	case json.RawMessage:
		raw = s
	default:
		b, err := json.Marshal(schema)
		if err != nil {
			return nil, errors.Wrap(err, "marshal schema")
		}
		return b, nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("schema is not valid JSON")
	}
	return append([]byte(nil), raw...), nil
}

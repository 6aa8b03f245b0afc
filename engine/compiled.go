package engine

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// Compiled is a schema ready to validate documents. It is read-only and
// safe for concurrent use.
type Compiled struct {
	schema *gojsonschema.Schema
	opts   Options
}

// Validate checks document and returns the failed constraints in the order
// gojsonschema reports them, except that errors found while walking an
// object's members are sorted by member name so that repeated runs agree.
// A conforming document yields an empty slice.
// Documents given as json.RawMessage or []byte are parsed as JSON text;
// any other value is validated as its JSON encoding.
//
// The error return is reserved for documents that cannot be loaded.
func (c *Compiled) Validate(document interface{}) ([]RawError, error) {
	result, err := c.schema.Validate(documentLoader(document))
	if err != nil {
		return nil, errors.WithMessage(err, "load document")
	}

	resultErrors := stabilize(result.Errors())
	if !c.opts.AllErrors && len(resultErrors) > 1 {
		resultErrors = resultErrors[:1]
	}

	raw := make([]RawError, 0, len(resultErrors))
	for _, re := range resultErrors {
		raw = append(raw, newRawError(re, c.opts.Verbose))
	}
	return raw, nil
}

// Options returns the options the schema was compiled with.
func (c *Compiled) Options() Options {
	return c.opts
}

func documentLoader(document interface{}) gojsonschema.JSONLoader {
	switch d := document.(type) {
	case json.RawMessage:
		return gojsonschema.NewBytesLoader(d)
	case []byte:
		return gojsonschema.NewBytesLoader(d)
	default:
		return gojsonschema.NewGoLoader(document)
	}
}

package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phanitejak/jsonvalidator/engine"
)

const maxEnumValues = 5

// improveError rewrites the message of enum and additionalProperties
// errors. Other errors are returned unchanged.
func improveError(raw engine.RawError) engine.RawError {
	switch raw.Keyword {
	case engine.KeywordEnum:
		values, ok := raw.Schema.([]interface{})
		if !ok {
			return raw
		}
		raw.Message = "should be equal to one of: " + enumList(values)
	case engine.KeywordAdditionalProperties:
		raw.Message = fmt.Sprintf("should NOT have additional property: %v", raw.Params[engine.ParamAdditionalProperty])
	}
	return raw
}

func enumList(values []interface{}) string {
	shown := values
	if len(shown) > maxEnumValues {
		shown = shown[:maxEnumValues]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, v := range shown {
		parts = append(parts, literal(v))
	}
	if rest := len(values) - len(shown); rest > 0 {
		parts = append(parts, fmt.Sprintf("(%d more...)", rest))
	}
	return strings.Join(parts, ", ")
}

// literal renders v as JSON text without escaping HTML characters.
func literal(v interface{}) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

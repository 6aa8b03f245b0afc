package engine

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schema keywords reported in RawError.Keyword.
const (
	KeywordAdditionalItems      = "additionalItems"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordAllOf                = "allOf"
	KeywordAnyOf                = "anyOf"
	KeywordConst                = "const"
	KeywordContains             = "contains"
	KeywordDependencies         = "dependencies"
	KeywordElse                 = "else"
	KeywordEnum                 = "enum"
	KeywordExclusiveMaximum     = "exclusiveMaximum"
	KeywordExclusiveMinimum     = "exclusiveMinimum"
	KeywordFalseSchema          = "false schema"
	KeywordFormat               = "format"
	KeywordMaxItems             = "maxItems"
	KeywordMaxLength            = "maxLength"
	KeywordMaxProperties        = "maxProperties"
	KeywordMaximum              = "maximum"
	KeywordMinItems             = "minItems"
	KeywordMinLength            = "minLength"
	KeywordMinProperties        = "minProperties"
	KeywordMinimum              = "minimum"
	KeywordMultipleOf           = "multipleOf"
	KeywordNot                  = "not"
	KeywordOneOf                = "oneOf"
	KeywordPattern              = "pattern"
	KeywordPatternProperties    = "patternProperties"
	KeywordPropertyNames        = "propertyNames"
	KeywordRequired             = "required"
	KeywordThen                 = "then"
	KeywordType                 = "type"
	KeywordUniqueItems          = "uniqueItems"
)

// Parameter names set in RawError.Params in addition to gojsonschema's own
// error details.
const (
	ParamAdditionalProperty = "additionalProperty"
	ParamMissingProperty    = "missingProperty"
	ParamAllowedValues      = "allowedValues"
	ParamAllowedValue       = "allowedValue"
)

var keywords = map[string]string{
	"false":                           KeywordFalseSchema,
	"required":                        KeywordRequired,
	"invalid_type":                    KeywordType,
	"number_any_of":                   KeywordAnyOf,
	"number_one_of":                   KeywordOneOf,
	"number_all_of":                   KeywordAllOf,
	"number_not":                      KeywordNot,
	"missing_dependency":              KeywordDependencies,
	"const":                           KeywordConst,
	"enum":                            KeywordEnum,
	"array_no_additional_items":       KeywordAdditionalItems,
	"array_min_items":                 KeywordMinItems,
	"array_max_items":                 KeywordMaxItems,
	"unique":                          KeywordUniqueItems,
	"contains":                        KeywordContains,
	"array_min_properties":            KeywordMinProperties,
	"array_max_properties":            KeywordMaxProperties,
	"additional_property_not_allowed": KeywordAdditionalProperties,
	"invalid_property_pattern":        KeywordPatternProperties,
	"invalid_property_name":           KeywordPropertyNames,
	"string_gte":                      KeywordMinLength,
	"string_lte":                      KeywordMaxLength,
	"pattern":                         KeywordPattern,
	"format":                          KeywordFormat,
	"multiple_of":                     KeywordMultipleOf,
	"number_gte":                      KeywordMinimum,
	"number_gt":                       KeywordExclusiveMinimum,
	"number_lte":                      KeywordMaximum,
	"number_lt":                       KeywordExclusiveMaximum,
	"condition_then":                  KeywordThen,
	"condition_else":                  KeywordElse,
}

// RawError is one failed constraint as reported by the engine.
type RawError struct {
	// Keyword is the JSON Schema keyword that failed, e.g. "enum".
	Keyword string
	// InstanceLocation is a JSON pointer (RFC 6901) to the failing value,
	// "" for the document root.
	InstanceLocation string
	// Message is the engine's description of the failure.
	Message string
	// Params holds keyword specific parameters.
	Params map[string]interface{}
	// Schema is the value of the failed keyword in the schema, e.g. the
	// list of enum values. Only set in verbose mode.
	Schema interface{}
	// Data is the failing document value. Only set in verbose mode.
	Data interface{}
}

func newRawError(re gojsonschema.ResultError, verbose bool) RawError {
	keyword, ok := keywords[re.Type()]
	if !ok {
		keyword = re.Type()
	}

	params := make(map[string]interface{}, len(re.Details()))
	for k, v := range re.Details() {
		if k == "context" || k == "field" {
			continue
		}
		params[k] = v
	}

	var schema interface{}
	switch keyword {
	case KeywordAdditionalProperties:
		params[ParamAdditionalProperty] = params["property"]
		schema = false
	case KeywordRequired:
		params[ParamMissingProperty] = params["property"]
	case KeywordEnum:
		if values, ok := decodeAllowed(params["allowed"], true); ok {
			params[ParamAllowedValues] = values
			schema = values
		}
	case KeywordConst:
		if value, ok := decodeAllowed(params["allowed"], false); ok {
			params[ParamAllowedValue] = value
			schema = value
		}
	case KeywordType:
		schema = params["expected"]
	case KeywordMinLength, KeywordMinItems, KeywordMinProperties, KeywordMinimum, KeywordExclusiveMinimum:
		schema = params["min"]
	case KeywordMaxLength, KeywordMaxItems, KeywordMaxProperties, KeywordMaximum, KeywordExclusiveMaximum:
		schema = params["max"]
	case KeywordPattern, KeywordFormat:
		schema = params[keyword]
	case KeywordMultipleOf:
		schema = params["multiple"]
	}

	raw := RawError{
		Keyword:          keyword,
		InstanceLocation: pointer(re.Context()),
		Message:          re.Description(),
		Params:           params,
	}
	if verbose {
		raw.Schema = schema
		raw.Data = re.Value()
	}
	return raw
}

// decodeAllowed parses gojsonschema's "allowed" detail. For enums it is the
// JSON encoding of every permitted value joined with ", ", so wrapping it in
// brackets yields a JSON array.
func decodeAllowed(allowed interface{}, list bool) (interface{}, bool) {
	s, ok := allowed.(string)
	if !ok {
		return nil, false
	}
	if list {
		s = "[" + s + "]"
	}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// contextSeparator never occurs unescaped in JSON text.
const contextSeparator = "\x00"

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer converts a gojsonschema context such as (root).items.0 into the
// JSON pointer /items/0.
func pointer(ctx *gojsonschema.JsonContext) string {
	if ctx == nil {
		return ""
	}
	segments := strings.Split(ctx.String(contextSeparator), contextSeparator)
	var b bytes.Buffer
	for _, s := range segments[1:] {
		b.WriteByte('/')
		b.WriteString(pointerEscaper.Replace(s))
	}
	return b.String()
}

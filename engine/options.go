package engine

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Options configures an Engine.
type Options struct {
	// AllErrors reports every failed constraint instead of only the first.
	AllErrors bool
	// Verbose attaches the keyword's schema value and the offending
	// document value to every RawError.
	Verbose bool
	// DataRefs allows schemas that use $data references. gojsonschema has
	// no $data keyword, so the flag is carried for callers and hooks to
	// inspect and does not change evaluation.
	DataRefs bool
	// ValidateSchema checks schemas and definitions against their
	// meta-schema before use.
	ValidateSchema bool
	// Draft pins the JSON Schema draft. The zero value detects the draft
	// from $schema and falls back to a hybrid of all supported drafts.
	Draft Draft
}

// Draft names a JSON Schema draft.
type Draft string

// Supported drafts.
const (
	DraftAuto Draft = ""
	Draft4    Draft = "draft-04"
	Draft6    Draft = "draft-06"
	Draft7    Draft = "draft-07"
)

// Decode implements envconfig.Decoder.
func (d *Draft) Decode(value string) error {
	parsed, err := ParseDraft(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDraft accepts "draft-07", "draft7" or "7" style names and "" or
// "auto" for DraftAuto.
func ParseDraft(value string) (Draft, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return DraftAuto, nil
	case "draft-04", "draft4", "4":
		return Draft4, nil
	case "draft-06", "draft6", "6":
		return Draft6, nil
	case "draft-07", "draft7", "7":
		return Draft7, nil
	}
	return DraftAuto, fmt.Errorf("unsupported JSON schema draft %q, use one of %s, %s, %s", value, Draft4, Draft6, Draft7)
}

func (d Draft) gojsonschema() gojsonschema.Draft {
	switch d {
	case Draft4:
		return gojsonschema.Draft4
	case Draft6:
		return gojsonschema.Draft6
	case Draft7:
		return gojsonschema.Draft7
	default:
		return gojsonschema.Hybrid
	}
}

func (d Draft) String() string {
	if d == DraftAuto {
		return "auto"
	}
	return string(d)
}

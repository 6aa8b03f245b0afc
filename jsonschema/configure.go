package jsonschema

import (
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/phanitejak/jsonvalidator/engine"
	"github.com/phanitejak/jsonvalidator/gerror"
)

// configureEngine creates an engine with the merged options and registers
// every definition under its key. All registration failures are reported
// together.
func configureEngine(definitions map[string]interface{}, overrides *EngineOptions) (*engine.Engine, error) {
	e := engine.New(mergeOptions(overrides))

	keys := make([]string, 0, len(definitions))
	for k := range definitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var result *multierror.Error
	for _, k := range keys {
		if err := e.AddSchema(k, definitions[k]); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, gerror.Wrap(gerror.InvalidDefinition, err, "cannot register schema definitions")
	}
	return e, nil
}

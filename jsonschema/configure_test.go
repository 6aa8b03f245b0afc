package jsonschema

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanitejak/jsonvalidator/gerror"
)

func TestConfigureEngine(t *testing.T) {
	e, err := configureEngine(map[string]interface{}{
		"b": map[string]interface{}{"type": "string"},
		"a": `{"type": "integer"}`,
	}, &EngineOptions{AllErrors: Bool(false)})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, e.Keys())
	assert.False(t, e.Options().AllErrors)
	assert.True(t, e.Options().Verbose)
	assert.True(t, e.Options().DataRefs)
}

func TestConfigureEngineNoDefinitions(t *testing.T) {
	e, err := configureEngine(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, e.Keys())
	assert.Equal(t, DefaultEngineOptions(), e.Options())
}

func TestConfigureEngineCollectsErrors(t *testing.T) {
	_, err := configureEngine(map[string]interface{}{
		"ok":     map[string]interface{}{"type": "string"},
		"second": `{"type": `,
		"first":  func() {},
	}, nil)
	require.Error(t, err)
	assert.Equal(t, gerror.InvalidDefinition, gerror.GetErrorType(err))

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[0].Error(), `"first"`)
	assert.Contains(t, merr.Errors[1].Error(), `"second"`)
}

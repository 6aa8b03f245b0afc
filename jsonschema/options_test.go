package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanitejak/jsonvalidator/engine"
	"github.com/phanitejak/jsonvalidator/gerror"
	"github.com/phanitejak/jsonvalidator/testutils"
)

func TestMergeOptions(t *testing.T) {
	tests := []struct {
		name      string
		overrides *EngineOptions
		want      engine.Options
	}{
		{
			name: "nil keeps defaults",
			want: engine.Options{AllErrors: true, Verbose: true, DataRefs: true},
		},
		{
			name:      "empty keeps defaults",
			overrides: &EngineOptions{},
			want:      engine.Options{AllErrors: true, Verbose: true, DataRefs: true},
		},
		{
			name:      "caller disables a default",
			overrides: &EngineOptions{AllErrors: Bool(false), DataRefs: Bool(false)},
			want:      engine.Options{Verbose: true},
		},
		{
			name:      "caller adds options",
			overrides: &EngineOptions{ValidateSchema: Bool(true), Draft: engine.Draft7},
			want:      engine.Options{AllErrors: true, Verbose: true, DataRefs: true, ValidateSchema: true, Draft: engine.Draft7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeOptions(tt.overrides))
		})
	}
}

func TestLoadEngineOptions(t *testing.T) {
	testutils.SetEnv(t, map[string]string{
		"JSONSCHEMA_ALL_ERRORS":      "false",
		"JSONSCHEMA_VALIDATE_SCHEMA": "true",
		"JSONSCHEMA_DRAFT":           "draft-06",
	})

	o, err := LoadEngineOptions()
	require.NoError(t, err)
	assert.Equal(t, Bool(false), o.AllErrors)
	assert.Equal(t, Bool(true), o.ValidateSchema)
	assert.Nil(t, o.Verbose)
	assert.Nil(t, o.DataRefs)
	assert.Equal(t, engine.Draft6, o.Draft)

	assert.Equal(t, engine.Options{Verbose: true, DataRefs: true, ValidateSchema: true, Draft: engine.Draft6}, mergeOptions(o))
}

func TestLoadEngineOptionsInvalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bool":  {"JSONSCHEMA_VERBOSE": "maybe"},
		"draft": {"JSONSCHEMA_DRAFT": "draft-2019-09"},
	} {
		t.Run(name, func(t *testing.T) {
			testutils.SetEnv(t, env)
			_, err := LoadEngineOptions()
			require.Error(t, err)
			assert.Equal(t, gerror.InvalidConfiguration, gerror.GetErrorType(err))
		})
	}
}

package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verbose = Options{AllErrors: true, Verbose: true, DataRefs: true}

func TestResolveKey(t *testing.T) {
	tests := map[string]string{
		"address":                           "/address",
		"defs/address":                      "/defs/address",
		"/address":                          "/address",
		"http://example.com/schemas/a.json": "http://example.com/schemas/a.json",
	}
	for key, want := range tests {
		got, err := resolveKey(key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := resolveKey("")
	assert.Error(t, err)
}

func TestAddSchema(t *testing.T) {
	e := New(verbose)
	require.NoError(t, e.AddSchema("address", map[string]interface{}{"type": "string"}))
	require.NoError(t, e.AddSchema("zip", `{"type": "integer"}`))
	assert.Equal(t, []string{"address", "zip"}, e.Keys())

	err := e.AddSchema("/address", map[string]interface{}{"type": "string"})
	assert.EqualError(t, err, `schema key "/address" resolves to "/address", already used by "address"`)

	err = e.AddSchema("broken", `{"type": `)
	assert.EqualError(t, err, `schema "broken": schema is not valid JSON`)

	err = e.AddSchema("nothing", nil)
	assert.EqualError(t, err, `schema "nothing": schema is nil`)

	assert.Equal(t, []string{"address", "zip"}, e.Keys())
}

func TestCompileResolvesDefinitions(t *testing.T) {
	e := New(verbose)
	require.NoError(t, e.AddSchema("address", map[string]interface{}{
		"type":     "object",
		"required": []string{"street"},
	}))

	c, err := e.Compile(map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{"home": map[string]interface{}{"$ref": "address"}},
	})
	require.NoError(t, err)

	raw, err := c.Validate(map[string]interface{}{"home": map[string]interface{}{}})
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, KeywordRequired, raw[0].Keyword)
	assert.Equal(t, "/home", raw[0].InstanceLocation)
	assert.Equal(t, "street", raw[0].Params[ParamMissingProperty])

	raw, err = c.Validate(map[string]interface{}{"home": map[string]interface{}{"street": "Main"}})
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.NotNil(t, raw)
}

func TestCompileTwice(t *testing.T) {
	e := New(verbose)
	require.NoError(t, e.AddSchema("name", `{"type": "string"}`))

	for i := 0; i < 2; i++ {
		_, err := e.Compile(`{"$ref": "name"}`)
		require.NoError(t, err)
	}
}

func TestCompileErrors(t *testing.T) {
	e := New(verbose)

	_, err := e.Compile(`{"$ref": "missing"}`)
	assert.Error(t, err)

	_, err = e.Compile(`{"type": 12}`)
	assert.Error(t, err)

	_, err = e.Compile(nil)
	assert.EqualError(t, err, "schema is nil")
}

func TestCompileDoesNotMutateSchema(t *testing.T) {
	schema := map[string]interface{}{"$ref": "name"}
	e := New(verbose)
	require.NoError(t, e.AddSchema("name", `{"type": "string"}`))

	_, err := e.Compile(schema)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"$ref": "name"}, schema)
}

func TestSetOptionsKeepsDefinitions(t *testing.T) {
	e := New(Options{})
	require.NoError(t, e.AddSchema("name", `{"type": "string"}`))

	e.SetOptions(verbose)
	assert.Equal(t, verbose, e.Options())
	assert.Equal(t, []string{"name"}, e.Keys())

	c, err := e.Compile(`{"$ref": "name"}`)
	require.NoError(t, err)
	assert.Equal(t, verbose, c.Options())
}

func TestValidateSchemaOption(t *testing.T) {
	e := New(Options{ValidateSchema: true})
	_, err := e.Compile(`{"type": "unknown"}`)
	assert.Error(t, err)

	err = e.AddSchema("bad", `{"minimum": "zero"}`)
	assert.Error(t, err)
}

func TestValidateRawDocument(t *testing.T) {
	c, err := New(verbose).Compile(`{"type": "object", "properties": {"n": {"type": "integer"}}}`)
	require.NoError(t, err)

	raw, err := c.Validate(json.RawMessage(`{"n": "x"}`))
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, KeywordType, raw[0].Keyword)
	assert.Equal(t, "/n", raw[0].InstanceLocation)
	assert.Equal(t, "integer", raw[0].Schema)
	assert.Equal(t, "x", raw[0].Data)

	_, err = c.Validate([]byte(`{"n": `))
	assert.Error(t, err)

	_, err = c.Validate(func() {})
	assert.Error(t, err)
}

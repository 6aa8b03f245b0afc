package testutils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DecodeJSON decodes s into generic Go values, keeping numbers as
// json.Number so they render exactly as written.
func DecodeJSON(t testing.TB, s string) interface{} {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(s))
	dec.UseNumber()
	var v interface{}
	require.NoError(t, dec.Decode(&v), "decode fixture %s", s)
	return v
}

// DecodeJSONMap is DecodeJSON for JSON objects.
func DecodeJSONMap(t testing.TB, s string) map[string]interface{} {
	t.Helper()
	m, ok := DecodeJSON(t, s).(map[string]interface{})
	require.True(t, ok, "fixture is not an object: %s", s)
	return m
}

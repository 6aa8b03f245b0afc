// Package testutils provides convenience functions for tests.
package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetEnv sets the given environment variables for the duration of the test
// and restores the previous values, or unsets them, on cleanup.
//
// Usage:
//
//	testutils.SetEnv(t, map[string]string{
//		"LOGGING_LEVEL":     "debug",
//		"JSONSCHEMA_DRAFT":  "draft-07",
//	})
func SetEnv(t testing.TB, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		previous, existed := os.LookupEnv(k)
		k := k
		t.Cleanup(func() {
			if existed {
				require.NoError(t, os.Setenv(k, previous))
				return
			}
			require.NoError(t, os.Unsetenv(k))
		})
		require.NoError(t, os.Setenv(k, v))
	}
}

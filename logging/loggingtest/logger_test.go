package loggingtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanitejak/jsonvalidator/logging"
	"github.com/phanitejak/jsonvalidator/logging/loggingtest"
)

func TestNewTestLogger(t *testing.T) {
	log := loggingtest.NewTestLogger(t)
	log.Debug("testing")
	log.Debugf("%s", "testing")
	log.Info("testing")
	log.Infof("%s", "testing")
	log.Warn("testing")
	log.Warnf("%s", "testing")
	log.Error("testing")
	log.Errorf("%s", "testing")

	assert.Len(t, log.Entries(), 8)
	assert.Equal(t, []string{"testing", "testing"}, log.Messages("warning"))
}

func TestWithSharesRecorder(t *testing.T) {
	var log logging.Logger = loggingtest.NewTestLogger(t)
	root := log.(*loggingtest.TestLogger)

	log.With("schema", "address").WithFields(map[string]interface{}{"n": 1}).Info("compiled")

	entries := root.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "compiled", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"schema": "address", "n": 1}, entries[0].Fields)
}

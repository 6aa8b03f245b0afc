package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := RegisterCounter("test_counter_total", "test", "Counter used in tests.")
	defer c.Unregister()

	c.Inc()
	c.Add(4)
	assert.Equal(t, float64(5), testutil.ToFloat64(c.GetCollector()))
}

func TestCounterVec(t *testing.T) {
	cv := RegisterCounterVec("test_counter_vec_total", "test", "Counter vector used in tests.", "keyword")
	defer cv.Unregister()

	cv.GetCustomCounter("enum").Inc()
	cv.GetCustomCounter("enum").Inc()
	cv.GetCustomCounter("type").Add(3)

	collector := cv.GetCollector()
	assert.Equal(t, 2, testutil.CollectAndCount(collector))
	assert.Equal(t, float64(2), testutil.ToFloat64(cv.GetCustomCounter("enum").GetCollector()))
	assert.Equal(t, float64(3), testutil.ToFloat64(cv.GetCustomCounter("type").GetCollector()))
}

func TestSummary(t *testing.T) {
	s := RegisterSummary("test_duration_ms", "test", "Summary used in tests.")
	defer s.Unregister()

	s.Observe(1)
	s.ObserveDuration(time.Now().Add(-time.Millisecond))
	require.Equal(t, 1, testutil.CollectAndCount(s.GetCollector()))
}

func TestRegisterTwicePanics(t *testing.T) {
	c := RegisterCounter("test_duplicate_total", "test", "Counter used in tests.")
	defer c.Unregister()

	assert.Panics(t, func() {
		RegisterCounter("test_duplicate_total", "test", "Counter used in tests.")
	})
}

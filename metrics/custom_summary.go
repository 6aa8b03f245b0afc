package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Summary is an interface for summary metrics.
type Summary interface {
	CustomMetric
	Observe(f float64)
	ObserveDuration(startTime time.Time)
	Unregister() bool
}

// CustomSummary is a summary without custom labels.
type CustomSummary struct {
	summary prometheus.Summary
}

// GetCollector returns the underlying collector.
func (cs *CustomSummary) GetCollector() prometheus.Collector { return cs.summary }

// Observe observes the given value.
func (cs *CustomSummary) Observe(f float64) { cs.summary.Observe(f) }

// ObserveDuration observes the time elapsed since startTime in milliseconds.
func (cs *CustomSummary) ObserveDuration(startTime time.Time) {
	cs.summary.Observe(float64(time.Since(startTime)) / float64(time.Millisecond))
}

// Unregister removes the summary from the default registry.
func (cs *CustomSummary) Unregister() bool { return prometheus.Unregister(cs.summary) }

// RegisterSummary registers a summary under the jsonvalidator namespace and
// given subsystem with the default objectives.
func RegisterSummary(metricName string, subsystem string, desc string) Summary {
	return RegisterSummaryWithObjectives(metricName, subsystem, desc, nil)
}

// RegisterSummaryWithObjectives registers a summary with the given quantile
// objectives.
func RegisterSummaryWithObjectives(metricName string, subsystem string, desc string, objectives map[float64]float64) Summary {
	summary := prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace:  metricNamespace,
		Subsystem:  subsystem,
		Name:       metricName,
		Help:       desc,
		Objectives: objectives,
	})
	prometheus.MustRegister(summary)
	return &CustomSummary{summary}
}

// Package metrics registers the Prometheus collectors used by the validator
// and the logger. Every metric is prefixed with the jsonvalidator namespace
// and carries the plain metric name as an extra label so dashboards can
// group series without parsing names.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricNamespace    = "jsonvalidator"
	plainMetricNameKey = "_plain_metric_name"
)

// CustomMetric is a provider for collector.
type CustomMetric interface {
	GetCollector() prometheus.Collector
}

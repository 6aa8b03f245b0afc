package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is an interface for metrics counters.
type Counter interface {
	CustomMetric
	Add(i int64)
	Inc()
	Unregister() bool
}

// CounterVec is an interface for labelled metrics counters.
type CounterVec interface {
	CustomMetric
	GetCustomCounter(labelValues ...string) Counter
	Unregister() bool
}

// CustomCounter is a counter without custom labels.
type CustomCounter struct {
	counter prometheus.Counter
}

// GetCollector returns the underlying collector.
func (cc *CustomCounter) GetCollector() prometheus.Collector { return cc.counter }

// Add adds the given value to the counter value.
func (cc *CustomCounter) Add(i int64) { cc.counter.Add(float64(i)) }

// Inc increments counter value by 1.
func (cc *CustomCounter) Inc() { cc.counter.Inc() }

// Unregister removes the counter from the default registry.
func (cc *CustomCounter) Unregister() bool { return prometheus.Unregister(cc.counter) }

// CustomCounterVec is a counter with 1-n custom labels.
type CustomCounterVec struct {
	counterVec *prometheus.CounterVec
	metricName string
}

// GetCollector returns the underlying collector.
func (ccv *CustomCounterVec) GetCollector() prometheus.Collector { return ccv.counterVec }

// GetCustomCounter gets the counter for given label values. Values have to be
// given in registration order.
func (ccv *CustomCounterVec) GetCustomCounter(labelValues ...string) Counter {
	values := append(append([]string{}, labelValues...), ccv.metricName)
	return &CustomCounter{ccv.counterVec.WithLabelValues(values...)}
}

// Unregister removes the counter vector from the default registry.
func (ccv *CustomCounterVec) Unregister() bool { return prometheus.Unregister(ccv.counterVec) }

// RegisterCounter registers a counter under the jsonvalidator namespace and
// given subsystem.
func RegisterCounter(metricName string, subsystem string, desc string) Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Subsystem: subsystem,
		Name:      metricName,
		Help:      desc,
	})
	prometheus.MustRegister(counter)
	return &CustomCounter{counter}
}

// RegisterCounterVec registers a counter vector under the jsonvalidator
// namespace with given label keys.
func RegisterCounterVec(metricName string, subsystem string, desc string, keys ...string) CounterVec {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricNamespace,
		Subsystem: subsystem,
		Name:      metricName,
		Help:      desc,
	}, append(append([]string{}, keys...), plainMetricNameKey))
	prometheus.MustRegister(counterVec)
	return &CustomCounterVec{counterVec, metricName}
}

package jsonschema

import "github.com/phanitejak/jsonvalidator/metrics"

const metricsSubsystem = "validator"

var (
	compilations = metrics.RegisterCounterVec("compilations_total", metricsSubsystem,
		"Schema compilations by result.", "result")
	documents = metrics.RegisterCounter("documents_total", metricsSubsystem,
		"Documents validated.")
	findings = metrics.RegisterCounterVec("findings_total", metricsSubsystem,
		"Validation findings by failed keyword.", "keyword")
	validationDuration = metrics.RegisterSummary("validation_duration_ms", metricsSubsystem,
		"Time spent validating one document in milliseconds.")
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

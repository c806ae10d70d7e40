package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/evanx/component-validator/component"
	"github.com/evanx/component-validator/logger"
)

// Recorder adapts a meter onto the component.Metrics capability. Every
// observation a component records lands in a single histogram keyed by
// the observation name.
type Recorder struct {
	observation metric.Float64Histogram
}

// NewRecorder creates a metrics recorder on the given meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	observation, err := meter.Float64Histogram("component.observation",
		metric.WithDescription("Named numeric observations recorded by components"),
	)
	if err != nil {
		return nil, err
	}
	return &Recorder{observation: observation}, nil
}

// Record records a named numeric observation.
func (r *Recorder) Record(ctx context.Context, name string, value float64) {
	if r == nil {
		return
	}
	r.observation.Record(ctx, value, metric.WithAttributes(
		attribute.String("name", name),
	))
}

// LogReporter implements the component.Reporter capability by logging
// the report and counting it on the error.total instrument.
type LogReporter struct {
	log     *logger.Logger
	metrics *Metrics
}

// NewLogReporter creates an error reporter backed by the given logger
// and, optionally, the metrics bundle.
func NewLogReporter(log *logger.Logger, metrics *Metrics) *LogReporter {
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &LogReporter{log: log, metrics: metrics}
}

// Error reports an error attributed to a component.
func (r *LogReporter) Error(componentName string, err error) {
	r.log.Error("component reported error", map[string]interface{}{
		logger.FieldComponent: componentName,
		logger.FieldError:     err.Error(),
	})
	r.metrics.RecordError(context.Background(), "reported", componentName)
}

var (
	_ component.Metrics  = (*Recorder)(nil)
	_ component.Reporter = (*LogReporter)(nil)
)

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/hieple7985/venture-guard-ai/services/health-service"

// Recorder implements port.MetricsRecorder on an OpenTelemetry meter.
type Recorder struct {
	assessments metric.Int64Counter
	riskScore   metric.Float64Histogram
}

// NewRecorder registers the health-service instruments on provider.
func NewRecorder(provider metric.MeterProvider) (*Recorder, error) {
	meter := provider.Meter(meterName)

	assessments, err := meter.Int64Counter("health_assessments",
		metric.WithDescription("Business-health analyses completed, by risk level."),
	)
	if err != nil {
		return nil, fmt.Errorf("creating assessments counter: %w", err)
	}

	riskScore, err := meter.Float64Histogram("health_risk_score",
		metric.WithDescription("Overall risk score of completed analyses."),
		metric.WithExplicitBucketBoundaries(10, 25, 40, 50, 60, 75, 90, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("creating risk score histogram: %w", err)
	}

	return &Recorder{assessments: assessments, riskScore: riskScore}, nil
}

// RecordAssessment counts one analysis and observes its overall score.
func (r *Recorder) RecordAssessment(ctx context.Context, riskLevel string, riskScore float64) {
	attrs := metric.WithAttributes(attribute.String("risk_level", riskLevel))
	r.assessments.Add(ctx, 1, attrs)
	r.riskScore.Record(ctx, riskScore, attrs)
}

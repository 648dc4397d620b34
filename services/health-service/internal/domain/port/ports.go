package port

import (
	"context"

	"github.com/hieple7985/venture-guard-ai/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// MetricsRecorder defines the port for recording analysis telemetry.
type MetricsRecorder interface {
	// RecordAssessment counts one completed analysis and observes its overall score.
	RecordAssessment(ctx context.Context, riskLevel string, riskScore float64)
}

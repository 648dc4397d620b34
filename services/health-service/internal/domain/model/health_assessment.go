package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hieple7985/venture-guard-ai/pkg/events"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/event"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

// HealthAssessment is the aggregate root for one business-health analysis.
// Assessments are not persisted; the aggregate exists to carry identity and
// the domain events raised by scoring.
type HealthAssessment struct {
	events.EventCollector
	createdAt      time.Time
	prediction     valueobject.RiskPrediction
	industry       string
	monthsAnalyzed int
	assessed       bool
	organizationID uuid.UUID
	id             uuid.UUID
}

// NewHealthAssessment validates the metrics and opens an unscored assessment.
// The returned error wraps valueobject.ErrInvalidMetrics for bad input.
func NewHealthAssessment(organizationID uuid.UUID, metrics valueobject.BusinessMetrics) (*HealthAssessment, error) {
	if err := metrics.Validate(); err != nil {
		return nil, err
	}

	return &HealthAssessment{
		id:             uuid.New(),
		organizationID: organizationID,
		industry:       metrics.Industry,
		monthsAnalyzed: metrics.Months(),
		createdAt:      time.Now().UTC(),
	}, nil
}

// Assess attaches the engine's prediction and records the resulting events.
// An assessment can be scored once.
func (a *HealthAssessment) Assess(prediction valueobject.RiskPrediction) error {
	if a.assessed {
		return fmt.Errorf("assessment %s already scored", a.id)
	}
	if prediction.RiskLevel.IsZero() {
		return fmt.Errorf("prediction has no risk level")
	}

	a.prediction = prediction
	a.assessed = true

	a.Record(event.NewAssessmentCompleted(
		a.id, a.organizationID, a.industry, a.monthsAnalyzed,
		prediction.RiskScore, prediction.RiskLevel.String(),
		prediction.CashFlowRisk, prediction.MarketRisk, prediction.OperationalRisk,
		len(prediction.Recommendations), prediction.PredictedAt,
	))

	if prediction.RiskLevel.Equal(valueobject.RiskLevelCritical) {
		a.Record(event.NewCriticalRiskDetected(
			a.id, a.organizationID, a.industry, prediction.RiskScore,
			prediction.Predictions.CashCrisisWarning != "",
			prediction.Recommendations, prediction.PredictedAt,
		))
	}

	return nil
}

func (a *HealthAssessment) ID() uuid.UUID                          { return a.id }
func (a *HealthAssessment) OrganizationID() uuid.UUID              { return a.organizationID }
func (a *HealthAssessment) Industry() string                       { return a.industry }
func (a *HealthAssessment) MonthsAnalyzed() int                    { return a.monthsAnalyzed }
func (a *HealthAssessment) Prediction() valueobject.RiskPrediction { return a.prediction }
func (a *HealthAssessment) IsAssessed() bool                       { return a.assessed }
func (a *HealthAssessment) CreatedAt() time.Time                   { return a.createdAt }

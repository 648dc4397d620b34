package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/hieple7985/venture-guard-ai/pkg/events"
)

const (
	// EventTypeAssessmentCompleted is emitted when a business-health analysis finishes.
	EventTypeAssessmentCompleted = "health.assessment.completed"

	// EventTypeCriticalRiskDetected is emitted when an analysis lands in the critical band.
	EventTypeCriticalRiskDetected = "health.critical_risk.detected"

	aggregateType = "health_assessment"
)

// AssessmentCompleted is published after every successful analysis.
type AssessmentCompleted struct {
	events.BaseEvent
	OrganizationID  uuid.UUID `json:"organization_id"`
	Industry        string    `json:"industry,omitempty"`
	MonthsAnalyzed  int       `json:"months_analyzed"`
	RiskScore       float64   `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	CashFlowRisk    float64   `json:"cash_flow_risk"`
	MarketRisk      float64   `json:"market_risk"`
	OperationalRisk float64   `json:"operational_risk"`
	Recommendations int       `json:"recommendation_count"`
	PredictedAt     time.Time `json:"predicted_at"`
}

// NewAssessmentCompleted builds an AssessmentCompleted event for the given assessment.
func NewAssessmentCompleted(
	assessmentID, organizationID uuid.UUID,
	industry string,
	monthsAnalyzed int,
	riskScore float64,
	riskLevel string,
	cashFlowRisk, marketRisk, operationalRisk float64,
	recommendations int,
	predictedAt time.Time,
) AssessmentCompleted {
	return AssessmentCompleted{
		BaseEvent:       events.NewBaseEvent(EventTypeAssessmentCompleted, assessmentID, aggregateType),
		OrganizationID:  organizationID,
		Industry:        industry,
		MonthsAnalyzed:  monthsAnalyzed,
		RiskScore:       riskScore,
		RiskLevel:       riskLevel,
		CashFlowRisk:    cashFlowRisk,
		MarketRisk:      marketRisk,
		OperationalRisk: operationalRisk,
		Recommendations: recommendations,
		PredictedAt:     predictedAt,
	}
}

// CriticalRiskDetected is published when an analysis is classified critical,
// so downstream alerting can reach the business owner.
type CriticalRiskDetected struct {
	events.BaseEvent
	OrganizationID  uuid.UUID `json:"organization_id"`
	Industry        string    `json:"industry,omitempty"`
	RiskScore       float64   `json:"risk_score"`
	CashCrisis      bool      `json:"cash_crisis"`
	Recommendations []string  `json:"recommendations"`
	DetectedAt      time.Time `json:"detected_at"`
}

// NewCriticalRiskDetected builds a CriticalRiskDetected event for the given assessment.
func NewCriticalRiskDetected(
	assessmentID, organizationID uuid.UUID,
	industry string,
	riskScore float64,
	cashCrisis bool,
	recommendations []string,
	detectedAt time.Time,
) CriticalRiskDetected {
	return CriticalRiskDetected{
		BaseEvent:       events.NewBaseEvent(EventTypeCriticalRiskDetected, assessmentID, aggregateType),
		OrganizationID:  organizationID,
		Industry:        industry,
		RiskScore:       riskScore,
		CashCrisis:      cashCrisis,
		Recommendations: recommendations,
		DetectedAt:      detectedAt,
	}
}

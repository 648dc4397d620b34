package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/model"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

// AnalyzeRequest is the input DTO for the AnalyzeBusinessHealth use case.
type AnalyzeRequest struct {
	CustomerCount     *int      `json:"customer_count,omitempty"`
	CustomerChurnRate *float64  `json:"customer_churn_rate,omitempty"`
	BusinessAgeMonths *int      `json:"business_age_months,omitempty"`
	EmployeeCount     *int      `json:"employee_count,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	MonthlyRevenue    []float64 `json:"monthly_revenue"`
	MonthlyExpenses   []float64 `json:"monthly_expenses"`
	OrganizationID    uuid.UUID `json:"-"`
}

// ToMetrics maps the request onto the domain input.
func (r AnalyzeRequest) ToMetrics() valueobject.BusinessMetrics {
	return valueobject.BusinessMetrics{
		MonthlyRevenue:    r.MonthlyRevenue,
		MonthlyExpenses:   r.MonthlyExpenses,
		CustomerCount:     r.CustomerCount,
		CustomerChurnRate: r.CustomerChurnRate,
		Industry:          r.Industry,
		BusinessAgeMonths: r.BusinessAgeMonths,
		EmployeeCount:     r.EmployeeCount,
	}
}

// AnalysisResponse is the output DTO returned after an analysis.
type AnalysisResponse struct {
	PredictedAt     time.Time            `json:"predicted_at"`
	Predictions     valueobject.Forecast `json:"predictions"`
	Recommendations []string             `json:"recommendations"`
	RiskLevel       string               `json:"risk_level"`
	Industry        string               `json:"industry,omitempty"`
	RiskScore       float64              `json:"risk_score"`
	CashFlowRisk    float64              `json:"cash_flow_risk"`
	MarketRisk      float64              `json:"market_risk"`
	OperationalRisk float64              `json:"operational_risk"`
	MonthsAnalyzed  int                  `json:"months_analyzed"`
	AssessmentID    uuid.UUID            `json:"assessment_id"`
}

// FromModel maps a scored assessment to the response DTO.
func FromModel(a *model.HealthAssessment) AnalysisResponse {
	p := a.Prediction()
	return AnalysisResponse{
		AssessmentID:    a.ID(),
		Industry:        a.Industry(),
		MonthsAnalyzed:  a.MonthsAnalyzed(),
		RiskScore:       p.RiskScore,
		RiskLevel:       p.RiskLevel.String(),
		CashFlowRisk:    p.CashFlowRisk,
		MarketRisk:      p.MarketRisk,
		OperationalRisk: p.OperationalRisk,
		Predictions:     p.Predictions,
		Recommendations: p.Recommendations,
		PredictedAt:     p.PredictedAt,
	}
}

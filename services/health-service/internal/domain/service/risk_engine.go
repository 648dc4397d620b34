package service

import (
	"time"

	"github.com/hieple7985/venture-guard-ai/pkg/money"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

// Component weights of the overall score.
const (
	cashFlowWeight    = 0.5
	marketWeight      = 0.3
	operationalWeight = 0.2
)

// RiskEngine is a stateless domain service combining the component scorers,
// forecaster and recommender. It is safe for concurrent use.
type RiskEngine struct {
	now func() time.Time
}

// EngineOption configures a RiskEngine.
type EngineOption func(*RiskEngine)

// WithClock overrides the clock used to stamp predictions.
func WithClock(now func() time.Time) EngineOption {
	return func(e *RiskEngine) { e.now = now }
}

// NewRiskEngine creates a new RiskEngine instance.
func NewRiskEngine(opts ...EngineOption) *RiskEngine {
	e := &RiskEngine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Predict scores validated metrics. Callers must run BusinessMetrics.Validate first.
func (e *RiskEngine) Predict(m valueobject.BusinessMetrics) valueobject.RiskPrediction {
	cashFlow := m.CashFlow()

	scores := Scores{
		CashFlow:    CashFlowRisk(cashFlow, m.MonthlyExpenses),
		Market:      MarketRisk(m),
		Operational: OperationalRisk(m),
	}
	scores.Overall = scores.CashFlow*cashFlowWeight +
		scores.Market*marketWeight +
		scores.Operational*operationalWeight

	forecast := BuildForecast(m)

	return valueobject.RiskPrediction{
		RiskScore:       money.Round(scores.Overall, 2),
		RiskLevel:       valueobject.RiskLevelFromScore(scores.Overall),
		CashFlowRisk:    money.Round(scores.CashFlow, 2),
		MarketRisk:      money.Round(scores.Market, 2),
		OperationalRisk: money.Round(scores.Operational, 2),
		Predictions:     forecast,
		Recommendations: Recommend(scores, forecast),
		PredictedAt:     e.now().UTC(),
	}
}

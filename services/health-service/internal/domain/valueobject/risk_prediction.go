package valueobject

import "time"

// RiskPrediction is the result of scoring one BusinessMetrics input.
// Scores are in [0,100], rounded to two decimals.
type RiskPrediction struct {
	RiskScore       float64   `json:"risk_score"`
	RiskLevel       RiskLevel `json:"risk_level"`
	CashFlowRisk    float64   `json:"cash_flow_risk"`
	MarketRisk      float64   `json:"market_risk"`
	OperationalRisk float64   `json:"operational_risk"`
	Predictions     Forecast  `json:"predictions"`
	Recommendations []string  `json:"recommendations"`
	PredictedAt     time.Time `json:"predicted_at"`
}

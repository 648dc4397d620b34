package valueobject

// Trend labels used in forecasts.
const (
	TrendDeclining = "declining"
	TrendImproving = "improving"
	TrendGrowing   = "growing"
)

// CashCrisisWarning is set on a forecast when recent cash flow is not positive.
const CashCrisisWarning = "Immediate action required"

// Forecast holds the named short-horizon predictions of an analysis. Every
// entry is optional; absent entries are omitted from the JSON map.
type Forecast struct {
	NextMonthCashFlow       *float64 `json:"next_month_cash_flow,omitempty"`
	CashFlowTrend           string   `json:"cash_flow_trend,omitempty"`
	RevenueTrend            string   `json:"revenue_trend,omitempty"`
	ProjectedRevenueChange  string   `json:"projected_revenue_change,omitempty"`
	RunwayMonths            *float64 `json:"runway_months,omitempty"`
	CashCrisisWarning       string   `json:"cash_crisis_warning,omitempty"`
	ExpectedCustomerLoss30d *int     `json:"expected_customer_loss_30d,omitempty"`
}

// Runway returns the forecast runway, or fallback when none was computed.
func (f Forecast) Runway(fallback float64) float64 {
	if f.RunwayMonths == nil {
		return fallback
	}
	return *f.RunwayMonths
}

package service

import "github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"

// Recommendation texts, emitted in rule order.
const (
	RecCashFlowCrisis     = "🚨 URGENT: Cash flow crisis detected. Reduce expenses immediately and accelerate receivables collection."
	RecEmergencyFunding   = "Consider emergency funding options: bridge loans, invoice factoring, or emergency investor funding."
	RecCashFlowConcerns   = "⚠️ Cash flow concerns detected. Review and optimize expense structure within 30 days."
	RecPaymentTerms       = "Implement stricter payment terms and improve collection processes."
	RecMarketDiversify    = "📉 Market risk is high. Diversify revenue streams and explore new customer segments."
	RecCompetitiveReview  = "Conduct competitive analysis and adjust pricing/positioning strategy."
	RecCriticalRunway     = "⏰ Critical: Less than 3 months runway. Secure funding or drastically cut costs immediately."
	RecLowRunway          = "⚠️ Low runway (< 6 months). Start fundraising process or implement cost reduction plan."
	RecDecliningCashFlow  = "📊 Declining cash flow trend. Analyze and address root causes: pricing, costs, or market conditions."
	RecOperationalHiring  = "🔧 Operational risk elevated. Consider hiring key personnel or improving processes."
	RecHealthyGrowth      = "✅ Business health is good. Focus on growth and scaling operations."
	RecGrowthInvestment   = "Consider investing in marketing, product development, or team expansion."
	RecContinueMonitoring = "📈 Continue monitoring key metrics and maintain current trajectory."
)

// Scores carries the unrounded component scores the recommender evaluates.
type Scores struct {
	CashFlow    float64
	Market      float64
	Operational float64
	Overall     float64
}

// runway assumed when the forecast has none.
const defaultRunwayMonths = 12.0

// Recommend maps scores and forecast to an ordered list of actions. The list
// is never empty.
func Recommend(s Scores, f valueobject.Forecast) []string {
	recs := make([]string, 0, 4)

	switch {
	case s.CashFlow > 70:
		recs = append(recs, RecCashFlowCrisis, RecEmergencyFunding)
	case s.CashFlow > 50:
		recs = append(recs, RecCashFlowConcerns, RecPaymentTerms)
	}

	if s.Market > 60 {
		recs = append(recs, RecMarketDiversify, RecCompetitiveReview)
	}

	switch runway := f.Runway(defaultRunwayMonths); {
	case runway < 3:
		recs = append(recs, RecCriticalRunway)
	case runway < 6:
		recs = append(recs, RecLowRunway)
	}

	if f.CashFlowTrend == valueobject.TrendDeclining {
		recs = append(recs, RecDecliningCashFlow)
	}

	if s.Operational > 60 {
		recs = append(recs, RecOperationalHiring)
	}

	if s.Overall < 30 {
		recs = append(recs, RecHealthyGrowth, RecGrowthInvestment)
	}

	if len(recs) == 0 {
		recs = append(recs, RecContinueMonitoring)
	}
	return recs
}

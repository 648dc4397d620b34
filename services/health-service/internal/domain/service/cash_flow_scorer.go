package service

import "math"

// Cash-flow component weights.
const (
	insufficientHistoryRisk = 50.0
	negativeMonthsWeight    = 40.0
	cashFlowTrendCap        = 30.0
	recentNegativePenalty   = 20.0
	shortRunwayPenalty      = 10.0
	shortRunwayMonths       = 3.0
	recentWindow            = 3
)

// CashFlowRisk scores liquidity risk from the monthly cash-flow series and the
// expense series it was derived from. Fewer than three months of history is
// scored as moderate uncertainty.
func CashFlowRisk(cashFlow, expenses []float64) float64 {
	if len(cashFlow) < recentWindow {
		return insufficientHistoryRisk
	}

	risk := 0.0

	negative := 0
	for _, cf := range cashFlow {
		if cf < 0 {
			negative++
		}
	}
	if negative > 0 {
		risk += float64(negative) / float64(len(cashFlow)) * negativeMonthsWeight
	}

	if slope := trendSlope(cashFlow); slope < 0 {
		if denom := meanAbs(cashFlow); denom > 0 {
			risk += math.Min(math.Abs(slope)/denom*cashFlowTrendCap, cashFlowTrendCap)
		}
	}

	recentCashFlow := recentMean(cashFlow, recentWindow)
	if recentCashFlow < 0 {
		risk += recentNegativePenalty
	}

	burn := recentMean(expenses, recentWindow)
	if recentCashFlow > 0 && burn > 0 {
		// Annualised recent cash flow measured in months of burn.
		if runway := recentCashFlow / burn * 12; runway < shortRunwayMonths {
			risk += shortRunwayPenalty
		}
	}

	return clamp(risk)
}

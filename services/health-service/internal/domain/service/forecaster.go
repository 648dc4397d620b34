package service

import (
	"github.com/hieple7985/venture-guard-ai/pkg/money"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

// BuildForecast produces the short-horizon predictions for a validated input.
// Entries whose preconditions are not met are left unset.
func BuildForecast(m valueobject.BusinessMetrics) valueobject.Forecast {
	var f valueobject.Forecast
	cashFlow := m.CashFlow()

	if len(cashFlow) >= minTrendHistoryMonths {
		slope := trendSlope(cashFlow)
		next := money.Round(cashFlow[len(cashFlow)-1]+slope, 2)
		f.NextMonthCashFlow = &next
		f.CashFlowTrend = valueobject.TrendImproving
		if slope < 0 {
			f.CashFlowTrend = valueobject.TrendDeclining
		}
	}

	if len(m.MonthlyRevenue) >= minTrendHistoryMonths {
		slope := trendSlope(m.MonthlyRevenue)
		f.RevenueTrend = valueobject.TrendGrowing
		if slope < 0 {
			f.RevenueTrend = valueobject.TrendDeclining
		}
		if avg := mean(m.MonthlyRevenue); avg != 0 {
			f.ProjectedRevenueChange = money.FormatPercent(slope/avg*100, 1)
		}
	}

	avgCashFlow := recentMean(cashFlow, recentWindow)
	avgExpenses := recentMean(m.MonthlyExpenses, recentWindow)
	if avgCashFlow > 0 {
		if avgExpenses > 0 {
			runway := money.Round(avgCashFlow*float64(len(cashFlow))/avgExpenses, 1)
			f.RunwayMonths = &runway
		}
	} else {
		zero := 0.0
		f.RunwayMonths = &zero
		f.CashCrisisWarning = valueobject.CashCrisisWarning
	}

	if m.CustomerCount != nil && m.CustomerChurnRate != nil {
		loss := int(float64(*m.CustomerCount) * *m.CustomerChurnRate)
		f.ExpectedCustomerLoss30d = &loss
	}

	return f
}

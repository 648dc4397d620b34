package service

import (
	"math"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

const (
	revenueTrendCap       = 40.0
	revenueDropThreshold  = -0.10
	revenueDropPenalty    = 20.0
	churnThreshold        = 0.05
	churnMultiplier       = 200.0
	churnCap              = 30.0
	youngBusinessMonths   = 12
	youngBusinessPenalty  = 10.0
	minTrendHistoryMonths = 3
)

// MarketRisk scores demand-side risk from the revenue series, churn and
// business age. Missing metadata contributes nothing.
func MarketRisk(m valueobject.BusinessMetrics) float64 {
	revenue := m.MonthlyRevenue
	risk := 0.0

	if len(revenue) >= minTrendHistoryMonths {
		if slope, avg := trendSlope(revenue), mean(revenue); slope < 0 && avg > 0 {
			risk += math.Min(math.Abs(slope)/avg*revenueTrendCap, revenueTrendCap)
		}
	}

	if n := len(revenue); n >= 2 {
		if prev := revenue[n-2]; prev != 0 {
			if (revenue[n-1]-prev)/prev < revenueDropThreshold {
				risk += revenueDropPenalty
			}
		}
	}

	if m.CustomerChurnRate != nil && *m.CustomerChurnRate > churnThreshold {
		risk += math.Min(*m.CustomerChurnRate*churnMultiplier, churnCap)
	}

	if m.BusinessAgeMonths != nil && *m.BusinessAgeMonths < youngBusinessMonths {
		risk += youngBusinessPenalty
	}

	return clamp(risk)
}

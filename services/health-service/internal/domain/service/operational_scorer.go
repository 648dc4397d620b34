package service

import "github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"

const operationalBaseRisk = 30.0

// OperationalRisk scores team-size and maturity risk starting from a base of 30.
func OperationalRisk(m valueobject.BusinessMetrics) float64 {
	risk := operationalBaseRisk

	if m.EmployeeCount != nil {
		switch n := *m.EmployeeCount; {
		case n < 3:
			risk += 20
		case n > 50:
			risk -= 10
		}
	}

	if m.BusinessAgeMonths != nil {
		switch age := *m.BusinessAgeMonths; {
		case age < 6:
			risk += 20
		case age > 24:
			risk -= 10
		}
	}

	return clamp(risk)
}

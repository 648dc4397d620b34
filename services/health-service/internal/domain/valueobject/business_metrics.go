package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetrics is wrapped by every BusinessMetrics validation failure.
var ErrInvalidMetrics = errors.New("invalid business metrics")

// BusinessMetrics is the input to a business-health analysis: a chronological
// monthly series (index 0 is the oldest month) plus optional metadata.
// Nil metadata pointers mean "not provided".
type BusinessMetrics struct {
	MonthlyRevenue    []float64
	MonthlyExpenses   []float64
	CustomerCount     *int
	CustomerChurnRate *float64
	Industry          string
	BusinessAgeMonths *int
	EmployeeCount     *int
}

// Validate enforces the preconditions of the scoring engine. Invalid input is
// rejected, never coerced.
func (m BusinessMetrics) Validate() error {
	if len(m.MonthlyRevenue) == 0 {
		return fmt.Errorf("%w: monthly_revenue must not be empty", ErrInvalidMetrics)
	}
	if len(m.MonthlyExpenses) == 0 {
		return fmt.Errorf("%w: monthly_expenses must not be empty", ErrInvalidMetrics)
	}
	if len(m.MonthlyRevenue) != len(m.MonthlyExpenses) {
		return fmt.Errorf("%w: monthly_revenue has %d months but monthly_expenses has %d",
			ErrInvalidMetrics, len(m.MonthlyRevenue), len(m.MonthlyExpenses))
	}
	if err := validateSeries("monthly_revenue", m.MonthlyRevenue); err != nil {
		return err
	}
	if err := validateSeries("monthly_expenses", m.MonthlyExpenses); err != nil {
		return err
	}

	if m.CustomerCount != nil && *m.CustomerCount < 0 {
		return fmt.Errorf("%w: customer_count must be non-negative", ErrInvalidMetrics)
	}
	if m.CustomerChurnRate != nil {
		c := *m.CustomerChurnRate
		if math.IsNaN(c) || c < 0 || c > 1 {
			return fmt.Errorf("%w: customer_churn_rate must be within [0,1]", ErrInvalidMetrics)
		}
	}
	if m.BusinessAgeMonths != nil && *m.BusinessAgeMonths < 0 {
		return fmt.Errorf("%w: business_age_months must be non-negative", ErrInvalidMetrics)
	}
	if m.EmployeeCount != nil && *m.EmployeeCount < 0 {
		return fmt.Errorf("%w: employee_count must be non-negative", ErrInvalidMetrics)
	}
	return nil
}

func validateSeries(name string, series []float64) error {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is not a finite number", ErrInvalidMetrics, name, i)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s[%d] is negative", ErrInvalidMetrics, name, i)
		}
	}
	return nil
}

// Months returns the number of months in the series.
func (m BusinessMetrics) Months() int {
	return len(m.MonthlyRevenue)
}

// CashFlow derives revenue minus expenses for every month.
func (m BusinessMetrics) CashFlow() []float64 {
	cf := make([]float64, len(m.MonthlyRevenue))
	for i := range m.MonthlyRevenue {
		cf[i] = m.MonthlyRevenue[i] - m.MonthlyExpenses[i]
	}
	return cf
}

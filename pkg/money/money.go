// Package money parses and rounds the monetary figures flowing through
// business-health analyses.
package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary amount as it appears in uploaded spreadsheets:
// surrounding whitespace, a leading "$" and thousands separators are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid amount %q: empty", raw)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseFloat is ParseAmount converted to float64 for statistical use.
func ParseFloat(raw string) (float64, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// Round rounds v half away from zero to the given number of decimal places.
// Non-finite values round to zero.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatPercent renders v with a fixed number of decimals and a trailing "%".
func FormatPercent(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return decimal.NewFromFloat(v).StringFixed(places) + "%"
}

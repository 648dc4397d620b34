package money

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidCSV is wrapped by every ReadMonthlyCSV failure caused by the upload itself.
var ErrInvalidCSV = errors.New("invalid csv")

// MonthlySeries is a chronological revenue/expense series read from a spreadsheet.
type MonthlySeries struct {
	Revenue  []float64
	Expenses []float64
}

// ReadMonthlyCSV reads a CSV with a header row containing "revenue" and
// "expenses" columns (case-insensitive, any order, other columns ignored).
// Rows must be oldest first.
func ReadMonthlyCSV(r io.Reader) (MonthlySeries, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return MonthlySeries{}, fmt.Errorf("%w: file is empty", ErrInvalidCSV)
	}
	if err != nil {
		return MonthlySeries{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	revenueCol, expensesCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "revenue":
			revenueCol = i
		case "expenses":
			expensesCol = i
		}
	}
	if revenueCol < 0 || expensesCol < 0 {
		return MonthlySeries{}, fmt.Errorf("%w: CSV must contain 'revenue' and 'expenses' columns", ErrInvalidCSV)
	}

	var series MonthlySeries
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return MonthlySeries{}, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		if isBlank(record) {
			continue
		}
		if revenueCol >= len(record) || expensesCol >= len(record) {
			return MonthlySeries{}, fmt.Errorf("%w: line %d has %d fields", ErrInvalidCSV, line, len(record))
		}

		revenue, err := ParseFloat(record[revenueCol])
		if err != nil {
			return MonthlySeries{}, fmt.Errorf("%w: line %d revenue: %v", ErrInvalidCSV, line, err)
		}
		expenses, err := ParseFloat(record[expensesCol])
		if err != nil {
			return MonthlySeries{}, fmt.Errorf("%w: line %d expenses: %v", ErrInvalidCSV, line, err)
		}

		series.Revenue = append(series.Revenue, revenue)
		series.Expenses = append(series.Expenses, expenses)
	}

	if len(series.Revenue) == 0 {
		return MonthlySeries{}, fmt.Errorf("%w: no data rows", ErrInvalidCSV)
	}
	return series, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

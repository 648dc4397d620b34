package money

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMonthlyCSV(t *testing.T) {
	in := "date,revenue,expenses\n" +
		"2024-01,50000,45000\n" +
		"2024-02,\"$52,000\",46000\n" +
		",,\n" +
		"2024-03,48000.5, 47000\n"

	series, err := ReadMonthlyCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{50000, 52000, 48000.5}, series.Revenue)
	assert.Equal(t, []float64{45000, 46000, 47000}, series.Expenses)
}

func TestReadMonthlyCSV_HeaderVariants(t *testing.T) {
	in := "\ufeffExpenses , REVENUE,notes\n10,20,first\n30,40,\n"

	series, err := ReadMonthlyCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{20, 40}, series.Revenue)
	assert.Equal(t, []float64{10, 30}, series.Expenses)
}

func TestReadMonthlyCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"empty file", "", "file is empty"},
		{"missing expenses column", "date,revenue\n2024-01,100\n", "'revenue' and 'expenses'"},
		{"header only", "revenue,expenses\n", "no data rows"},
		{"bad number", "revenue,expenses\n100,abc\n", "line 2 expenses"},
		{"short row", "date,revenue,expenses\n2024-01,100\n", "line 2 has 2 fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMonthlyCSV(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCSV))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

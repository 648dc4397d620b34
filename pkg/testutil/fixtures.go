// Package testutil holds fixtures and helpers shared by VentureGuard tests.
package testutil

import "github.com/google/uuid"

// Fixed identifiers for deterministic testing.
var (
	TestUserID         = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestOrganizationID = uuid.MustParse("00000000-0000-0000-0000-000000000010")
)

// Six months of a SaaS business whose revenue slides while costs creep up.
var (
	DecliningRevenue  = []float64{50000, 52000, 48000, 45000, 43000, 40000}
	DecliningExpenses = []float64{45000, 46000, 47000, 48000, 49000, 50000}
)

// Six months of a steadily profitable business.
var (
	HealthyRevenue  = []float64{100000, 102000, 104000, 106000, 108000, 110000}
	HealthyExpenses = []float64{60000, 60000, 61000, 61000, 62000, 62000}
)

// DecliningCSV is DecliningRevenue/DecliningExpenses as an upload would carry them.
const DecliningCSV = `date,revenue,expenses
2024-01,50000,45000
2024-02,52000,46000
2024-03,48000,47000
2024-04,45000,48000
2024-05,43000,49000
2024-06,40000,50000
`

// Ptr returns a pointer to v, for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}

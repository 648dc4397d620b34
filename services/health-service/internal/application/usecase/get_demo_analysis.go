package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
)

// DemoRequest is a fixed six-month sample: a SaaS business whose revenue is
// sliding while costs creep up.
func DemoRequest() dto.AnalyzeRequest {
	customers, churn, age, employees := 150, 0.05, 18, 8
	return dto.AnalyzeRequest{
		MonthlyRevenue:    []float64{50000, 52000, 48000, 45000, 43000, 40000},
		MonthlyExpenses:   []float64{45000, 46000, 47000, 48000, 49000, 50000},
		CustomerCount:     &customers,
		CustomerChurnRate: &churn,
		Industry:          "SaaS",
		BusinessAgeMonths: &age,
		EmployeeCount:     &employees,
	}
}

// GetDemoAnalysis analyzes DemoRequest so clients can preview the output shape.
type GetDemoAnalysis struct {
	analyze *AnalyzeBusinessHealth
}

// NewGetDemoAnalysis creates a new GetDemoAnalysis use case.
func NewGetDemoAnalysis(analyze *AnalyzeBusinessHealth) *GetDemoAnalysis {
	return &GetDemoAnalysis{analyze: analyze}
}

// Execute runs the demo analysis on behalf of the given organization.
func (uc *GetDemoAnalysis) Execute(ctx context.Context, organizationID uuid.UUID) (dto.AnalysisResponse, error) {
	req := DemoRequest()
	req.OrganizationID = organizationID
	return uc.analyze.Execute(ctx, req)
}

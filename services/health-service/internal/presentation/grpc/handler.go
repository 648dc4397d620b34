package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hieple7985/venture-guard-ai/pkg/auth"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/usecase"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

// Compile-time assertion that BusinessHealthHandler implements BusinessHealthServiceServer.
var _ BusinessHealthServiceServer = (*BusinessHealthHandler)(nil)

// BusinessHealthHandler implements the gRPC BusinessHealthServiceServer interface.
type BusinessHealthHandler struct {
	UnimplementedBusinessHealthServiceServer
	analyze     *usecase.AnalyzeBusinessHealth
	demo        *usecase.GetDemoAnalysis
	logger      *slog.Logger
	enforceAuth bool
}

// NewBusinessHealthHandler creates a new gRPC handler. With enforceAuth set,
// calls without JWT claims are rejected.
func NewBusinessHealthHandler(
	analyze *usecase.AnalyzeBusinessHealth,
	demo *usecase.GetDemoAnalysis,
	logger *slog.Logger,
	enforceAuth bool,
) *BusinessHealthHandler {
	return &BusinessHealthHandler{
		analyze:     analyze,
		demo:        demo,
		logger:      logger,
		enforceAuth: enforceAuth,
	}
}

// Proto-aligned request/response message types.

// AnalyzeBusinessHealthRequest represents the proto AnalyzeBusinessHealthRequest message.
type AnalyzeBusinessHealthRequest struct {
	MonthlyRevenue    []float64 `json:"monthly_revenue"`
	MonthlyExpenses   []float64 `json:"monthly_expenses"`
	CustomerCount     *int      `json:"customer_count,omitempty"`
	CustomerChurnRate *float64  `json:"customer_churn_rate,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	BusinessAgeMonths *int      `json:"business_age_months,omitempty"`
	EmployeeCount     *int      `json:"employee_count,omitempty"`
}

// GetDemoAnalysisRequest represents the proto GetDemoAnalysisRequest message.
type GetDemoAnalysisRequest struct{}

// ForecastMsg represents the proto Forecast message.
type ForecastMsg struct {
	NextMonthCashFlow       *float64 `json:"next_month_cash_flow,omitempty"`
	CashFlowTrend           string   `json:"cash_flow_trend,omitempty"`
	RevenueTrend            string   `json:"revenue_trend,omitempty"`
	ProjectedRevenueChange  string   `json:"projected_revenue_change,omitempty"`
	RunwayMonths            *float64 `json:"runway_months,omitempty"`
	CashCrisisWarning       string   `json:"cash_crisis_warning,omitempty"`
	ExpectedCustomerLoss30d *int     `json:"expected_customer_loss_30d,omitempty"`
}

// RiskPredictionMsg represents the proto RiskPrediction message.
type RiskPredictionMsg struct {
	AssessmentID    string       `json:"assessment_id"`
	RiskScore       float64      `json:"risk_score"`
	RiskLevel       string       `json:"risk_level"`
	CashFlowRisk    float64      `json:"cash_flow_risk"`
	MarketRisk      float64      `json:"market_risk"`
	OperationalRisk float64      `json:"operational_risk"`
	Predictions     *ForecastMsg `json:"predictions"`
	Recommendations []string     `json:"recommendations"`
	PredictedAt     string       `json:"predicted_at"`
}

// AnalyzeBusinessHealthResponse represents the proto AnalyzeBusinessHealthResponse message.
type AnalyzeBusinessHealthResponse struct {
	Prediction *RiskPredictionMsg `json:"prediction"`
}

// AnalyzeBusinessHealth scores the supplied monthly financials.
func (h *BusinessHealthHandler) AnalyzeBusinessHealth(ctx context.Context, req *AnalyzeBusinessHealthRequest) (*AnalyzeBusinessHealthResponse, error) {
	if err := auth.RequireRole(ctx, h.enforceAuth, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	resp, err := h.analyze.Execute(ctx, dto.AnalyzeRequest{
		OrganizationID:    organizationFromContext(ctx),
		MonthlyRevenue:    req.MonthlyRevenue,
		MonthlyExpenses:   req.MonthlyExpenses,
		CustomerCount:     req.CustomerCount,
		CustomerChurnRate: req.CustomerChurnRate,
		Industry:          req.Industry,
		BusinessAgeMonths: req.BusinessAgeMonths,
		EmployeeCount:     req.EmployeeCount,
	})
	if err != nil {
		return nil, h.toStatus(ctx, "analyze business health", err)
	}

	return &AnalyzeBusinessHealthResponse{Prediction: toPredictionMsg(resp)}, nil
}

// GetDemoAnalysis scores the built-in sample business.
func (h *BusinessHealthHandler) GetDemoAnalysis(ctx context.Context, _ *GetDemoAnalysisRequest) (*AnalyzeBusinessHealthResponse, error) {
	resp, err := h.demo.Execute(ctx, organizationFromContext(ctx))
	if err != nil {
		return nil, h.toStatus(ctx, "demo analysis", err)
	}

	return &AnalyzeBusinessHealthResponse{Prediction: toPredictionMsg(resp)}, nil
}

func (h *BusinessHealthHandler) toStatus(ctx context.Context, op string, err error) error {
	if errors.Is(err, valueobject.ErrInvalidMetrics) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	h.logger.ErrorContext(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// organizationFromContext returns the caller's organization, or uuid.Nil for
// unauthenticated calls.
func organizationFromContext(ctx context.Context) uuid.UUID {
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		return claims.OrganizationID
	}
	return uuid.Nil
}

func toPredictionMsg(r dto.AnalysisResponse) *RiskPredictionMsg {
	f := r.Predictions
	return &RiskPredictionMsg{
		AssessmentID:    r.AssessmentID.String(),
		RiskScore:       r.RiskScore,
		RiskLevel:       r.RiskLevel,
		CashFlowRisk:    r.CashFlowRisk,
		MarketRisk:      r.MarketRisk,
		OperationalRisk: r.OperationalRisk,
		Predictions: &ForecastMsg{
			NextMonthCashFlow:       f.NextMonthCashFlow,
			CashFlowTrend:           f.CashFlowTrend,
			RevenueTrend:            f.RevenueTrend,
			ProjectedRevenueChange:  f.ProjectedRevenueChange,
			RunwayMonths:            f.RunwayMonths,
			CashCrisisWarning:       f.CashCrisisWarning,
			ExpectedCustomerLoss30d: f.ExpectedCustomerLoss30d,
		},
		Recommendations: r.Recommendations,
		PredictedAt:     r.PredictedAt.UTC().Format(time.RFC3339Nano),
	}
}

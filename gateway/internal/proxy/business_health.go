package proxy

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hieple7985/venture-guard-ai/pkg/money"
)

// Backend identifiers of the business-health gRPC service.
const (
	BusinessHealthService     = "ventureguard.health.v1.BusinessHealthService"
	analyzeBusinessHealthRPC  = "/" + BusinessHealthService + "/AnalyzeBusinessHealth"
	getDemoAnalysisRPC        = "/" + BusinessHealthService + "/GetDemoAnalysis"
	maxUploadBytes            = 10 << 20
	uploadFormField           = "file"
	msgAnalysisCompleted      = "Business health analysis completed successfully"
	msgCSVAnalysisCompleted   = "Business health analysis from CSV completed"
	msgDemoAnalysisCompleted  = "Demo business health analysis"
	msgSeriesRequired         = "monthly_revenue and monthly_expenses are required"
	msgUploadFileRequired     = "a CSV file is required in form field 'file'"
	msgUploadMalformedRequest = "invalid multipart upload"
)

// BusinessHealthProxy proxies HTTP requests to the business-health gRPC service.
type BusinessHealthProxy struct {
	conn   *ServiceConn
	logger *slog.Logger
}

// NewBusinessHealthProxy creates a new business-health service proxy.
func NewBusinessHealthProxy(conn *ServiceConn, logger *slog.Logger) *BusinessHealthProxy {
	return &BusinessHealthProxy{conn: conn, logger: logger}
}

type analyzeReq struct {
	MonthlyRevenue    []float64 `json:"monthly_revenue"`
	MonthlyExpenses   []float64 `json:"monthly_expenses"`
	CustomerCount     *int      `json:"customer_count,omitempty"`
	CustomerChurnRate *float64  `json:"customer_churn_rate,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	BusinessAgeMonths *int      `json:"business_age_months,omitempty"`
	EmployeeCount     *int      `json:"employee_count,omitempty"`
}

type demoReq struct{}

// riskPrediction mirrors the backend RiskPrediction message. The forecast map
// passes through untouched.
type riskPrediction struct {
	AssessmentID    string          `json:"assessment_id"`
	RiskScore       float64         `json:"risk_score"`
	RiskLevel       string          `json:"risk_level"`
	CashFlowRisk    float64         `json:"cash_flow_risk"`
	MarketRisk      float64         `json:"market_risk"`
	OperationalRisk float64         `json:"operational_risk"`
	Predictions     json.RawMessage `json:"predictions"`
	Recommendations []string        `json:"recommendations"`
	PredictedAt     string          `json:"predicted_at"`
}

type analyzeResp struct {
	Prediction *riskPrediction `json:"prediction"`
}

// Analyze handles POST /api/v1/business-health/analyze.
func (p *BusinessHealthProxy) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeReq
	if err := readJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.MonthlyRevenue) == 0 || len(req.MonthlyExpenses) == 0 {
		WriteError(w, http.StatusBadRequest, msgSeriesRequired)
		return
	}

	p.analyze(w, r, &req, msgAnalysisCompleted)
}

// AnalyzeCSV handles POST /api/v1/business-health/analyze-csv. The upload is a
// multipart form whose "file" field holds a CSV with revenue and expenses columns.
func (p *BusinessHealthProxy) AnalyzeCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "upload exceeds 10 MB")
			return
		}
		WriteError(w, http.StatusBadRequest, msgUploadMalformedRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		WriteError(w, http.StatusBadRequest, msgUploadFileRequired)
		return
	}
	defer file.Close()

	series, err := money.ReadMonthlyCSV(file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p.logger.DebugContext(r.Context(), "parsed CSV upload",
		"filename", header.Filename,
		"months", len(series.Revenue),
	)

	p.analyze(w, r, &analyzeReq{
		MonthlyRevenue:  series.Revenue,
		MonthlyExpenses: series.Expenses,
	}, msgCSVAnalysisCompleted)
}

// Demo handles GET /api/v1/business-health/demo.
func (p *BusinessHealthProxy) Demo(w http.ResponseWriter, r *http.Request) {
	var resp analyzeResp
	if err := p.conn.Invoke(outgoingContext(r), getDemoAnalysisRPC, &demoReq{}, &resp); err != nil {
		handleGRPCError(w, r, err, p.logger)
		return
	}
	writeSuccess(w, resp.Prediction, msgDemoAnalysisCompleted)
}

// Ready reports whether the backend answers its gRPC health check.
func (p *BusinessHealthProxy) Ready(r *http.Request) error {
	return p.conn.CheckHealth(r.Context())
}

func (p *BusinessHealthProxy) analyze(w http.ResponseWriter, r *http.Request, req *analyzeReq, message string) {
	var resp analyzeResp
	if err := p.conn.Invoke(outgoingContext(r), analyzeBusinessHealthRPC, req, &resp); err != nil {
		handleGRPCError(w, r, err, p.logger)
		return
	}
	writeSuccess(w, resp.Prediction, message)
}

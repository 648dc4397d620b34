package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeBackend records requests and answers with a canned prediction.
type fakeBackend struct {
	mu        sync.Mutex
	requests  []analyzeReq
	authz     []string
	failWith  error
	demoCalls int
}

func (f *fakeBackend) prediction(level string) *analyzeResp {
	return &analyzeResp{Prediction: &riskPrediction{
		AssessmentID:    "a1b2",
		RiskScore:       36.13,
		RiskLevel:       level,
		CashFlowRisk:    59.08,
		MarketRisk:      1.97,
		OperationalRisk: 30,
		Predictions:     json.RawMessage(`{"cash_flow_trend":"declining","expected_customer_loss_30d":7}`),
		Recommendations: []string{"Focus on improving cash flow"},
		PredictedAt:     "2026-01-01T00:00:00Z",
	}}
}

func (f *fakeBackend) serviceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: BusinessHealthService,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "AnalyzeBusinessHealth",
				Handler: func(_ interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					var req analyzeReq
					if err := dec(&req); err != nil {
						return nil, err
					}
					f.mu.Lock()
					defer f.mu.Unlock()
					f.requests = append(f.requests, req)
					if md, ok := metadata.FromIncomingContext(ctx); ok {
						f.authz = append(f.authz, md.Get("authorization")...)
					}
					if f.failWith != nil {
						return nil, f.failWith
					}
					return f.prediction("medium"), nil
				},
			},
			{
				MethodName: "GetDemoAnalysis",
				Handler: func(_ interface{}, _ context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					if err := dec(&demoReq{}); err != nil {
						return nil, err
					}
					f.mu.Lock()
					defer f.mu.Unlock()
					f.demoCalls++
					return f.prediction("medium"), nil
				},
			},
		},
	}
}

func newTestProxy(t *testing.T) (*BusinessHealthProxy, *fakeBackend, *health.Server) {
	t.Helper()

	backend := &fakeBackend{}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	srv.RegisterService(backend.serviceDesc(), struct{}{})
	hs := health.NewServer()
	hs.SetServingStatus(BusinessHealthService, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sc := &ServiceConn{
		Name:    "health-service",
		Addr:    "bufnet",
		Service: BusinessHealthService,
		Conn:    conn,
		Health:  healthpb.NewHealthClient(conn),
		Logger:  logger,
	}
	return NewBusinessHealthProxy(sc, logger), backend, hs
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (Envelope, map[string]interface{}) {
	t.Helper()
	var raw struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
		Message string                 `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return Envelope{Success: raw.Success, Message: raw.Message}, raw.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAnalyze_ForwardsRequest(t *testing.T) {
	p, backend, _ := newTestProxy(t)

	body := `{"monthly_revenue":[45000,42000,38000],"monthly_expenses":[50000,52000,54000],"customer_count":150,"industry":"SaaS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	p.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env, data := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, msgAnalysisCompleted, env.Message)
	assert.Equal(t, "medium", data["risk_level"])
	assert.InDelta(t, 36.13, data["risk_score"], 1e-9)
	assert.Equal(t, "declining", data["predictions"].(map[string]interface{})["cash_flow_trend"])

	require.Len(t, backend.requests, 1)
	got := backend.requests[0]
	assert.Equal(t, []float64{45000, 42000, 38000}, got.MonthlyRevenue)
	require.NotNil(t, got.CustomerCount)
	assert.Equal(t, 150, *got.CustomerCount)
	assert.Nil(t, got.CustomerChurnRate)
	assert.Equal(t, "SaaS", got.Industry)
	assert.Equal(t, []string{"Bearer tok"}, backend.authz)
}

func TestAnalyze_RejectsBadInput(t *testing.T) {
	p, backend, _ := newTestProxy(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed JSON", "{not json"},
		{"missing revenue", `{"monthly_expenses":[1,2]}`},
		{"empty expenses", `{"monthly_revenue":[1,2],"monthly_expenses":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			p.Analyze(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeError(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, http.StatusBadRequest, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
	assert.Empty(t, backend.requests)
}

func TestAnalyze_MapsBackendErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid metrics", status.Error(codes.InvalidArgument, "monthly_revenue[0] is negative"), http.StatusBadRequest},
		{"unauthenticated", status.Error(codes.Unauthenticated, "missing token"), http.StatusUnauthorized},
		{"internal", status.Error(codes.Internal, "analysis failed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, backend, _ := newTestProxy(t)
			backend.failWith = tt.err

			body := `{"monthly_revenue":[-1],"monthly_expenses":[1]}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze", strings.NewReader(body))
			rec := httptest.NewRecorder()
			p.Analyze(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			env := decodeError(t, rec)
			assert.Equal(t, status.Convert(tt.err).Message(), env.Error.Message)
		})
	}
}

func multipartUpload(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze-csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAnalyzeCSV(t *testing.T) {
	p, backend, _ := newTestProxy(t)

	csvData := "month,revenue,expenses\n2025-01,45000,50000\n2025-02,42000,52000\n"
	rec := httptest.NewRecorder()
	p.AnalyzeCSV(rec, multipartUpload(t, "file", "metrics.csv", csvData))

	require.Equal(t, http.StatusOK, rec.Code)
	env, _ := decodeEnvelope(t, rec)
	assert.Equal(t, msgCSVAnalysisCompleted, env.Message)

	require.Len(t, backend.requests, 1)
	assert.Equal(t, []float64{45000, 42000}, backend.requests[0].MonthlyRevenue)
	assert.Equal(t, []float64{50000, 52000}, backend.requests[0].MonthlyExpenses)
}

func TestAnalyzeCSV_Errors(t *testing.T) {
	p, backend, _ := newTestProxy(t)

	t.Run("missing columns", func(t *testing.T) {
		rec := httptest.NewRecorder()
		p.AnalyzeCSV(rec, multipartUpload(t, "file", "m.csv", "month,sales\n1,2\n"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error.Message, "revenue")
	})

	t.Run("wrong form field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		p.AnalyzeCSV(rec, multipartUpload(t, "upload", "m.csv", "revenue,expenses\n1,2\n"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, msgUploadFileRequired, decodeError(t, rec).Error.Message)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze-csv", strings.NewReader("revenue,expenses"))
		req.Header.Set("Content-Type", "text/csv")
		rec := httptest.NewRecorder()
		p.AnalyzeCSV(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Empty(t, backend.requests)
}

func TestDemo(t *testing.T) {
	p, backend, _ := newTestProxy(t)

	rec := httptest.NewRecorder()
	p.Demo(rec, httptest.NewRequest(http.MethodGet, "/api/v1/business-health/demo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env, data := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, msgDemoAnalysisCompleted, env.Message)
	assert.Equal(t, "a1b2", data["assessment_id"])
	assert.Equal(t, 1, backend.demoCalls)
}

func TestReady(t *testing.T) {
	p, _, hs := newTestProxy(t)
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	assert.NoError(t, p.Ready(req))

	hs.SetServingStatus(BusinessHealthService, healthpb.HealthCheckResponse_NOT_SERVING)
	assert.Error(t, p.Ready(req))
}

func TestServiceConn_NotConnected(t *testing.T) {
	var sc *ServiceConn
	err := sc.Invoke(context.Background(), analyzeBusinessHealthRPC, &analyzeReq{}, &analyzeResp{})
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Error(t, sc.CheckHealth(context.Background()))
	assert.NoError(t, sc.Close())
}

func TestGRPCToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, grpcToHTTPStatus(codes.NotFound))
	assert.Equal(t, http.StatusTooManyRequests, grpcToHTTPStatus(codes.ResourceExhausted))
	assert.Equal(t, http.StatusGatewayTimeout, grpcToHTTPStatus(codes.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, grpcToHTTPStatus(codes.DataLoss))
}

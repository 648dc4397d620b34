//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieple7985/venture-guard-ai/pkg/auth"
)

var (
	gatewayURL string
	token      string
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type prediction struct {
	AssessmentID    string                 `json:"assessment_id"`
	RiskScore       float64                `json:"risk_score"`
	RiskLevel       string                 `json:"risk_level"`
	CashFlowRisk    float64                `json:"cash_flow_risk"`
	MarketRisk      float64                `json:"market_risk"`
	OperationalRisk float64                `json:"operational_risk"`
	Predictions     map[string]interface{} `json:"predictions"`
	Recommendations []string               `json:"recommendations"`
}

func TestMain(m *testing.M) {
	gatewayURL = os.Getenv("GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "http://localhost:8000"
	}

	// With a secret the suite mints its own token, matching a gateway that
	// enforces auth.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		svc, err := auth.NewJWTService(auth.JWTConfig{Secret: secret, Issuer: "ventureguard-gateway"})
		if err == nil {
			token, _ = svc.GenerateToken(uuid.New(), uuid.New(), []string{auth.RoleAnalyst})
		}
	}

	// Wait for gateway and backend to be ready.
	for i := 0; i < 30; i++ {
		resp, err := http.Get(gatewayURL + "/readyz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}

	os.Exit(m.Run())
}

func do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodePrediction(t *testing.T, env envelope) prediction {
	t.Helper()
	var p prediction
	require.NoError(t, json.Unmarshal(env.Data, &p))
	return p
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(gatewayURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestDemoAnalysis(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, gatewayURL+"/api/v1/business-health/demo", nil)
	require.NoError(t, err)

	resp, env := do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Demo business health analysis", env.Message)

	p := decodePrediction(t, env)
	assert.InDelta(t, 36.13, p.RiskScore, 0.001)
	assert.Equal(t, "medium", p.RiskLevel)
	assert.Equal(t, "declining", p.Predictions["cash_flow_trend"])
	assert.Len(t, p.Recommendations, 4)
}

func TestAnalyzeFlow(t *testing.T) {
	body := map[string]interface{}{
		"monthly_revenue":     []float64{50000, 40000, 30000, 20000},
		"monthly_expenses":    []float64{30000, 30000, 30000, 30000},
		"customer_count":      100,
		"customer_churn_rate": 0.3,
		"business_age_months": 3,
		"employee_count":      1,
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, gatewayURL+"/api/v1/business-health/analyze", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, env := do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decodePrediction(t, env)
	assert.Equal(t, "high", p.RiskLevel)
	assert.InDelta(t, 55.43, p.RiskScore, 0.001)
	assert.NotEmpty(t, p.AssessmentID)
}

func TestAnalyzeRejectsMismatchedSeries(t *testing.T) {
	payload := []byte(`{"monthly_revenue":[1000,2000],"monthly_expenses":[500]}`)
	req, err := http.NewRequest(http.MethodPost, gatewayURL+"/api/v1/business-health/analyze", bytes.NewReader(payload))
	require.NoError(t, err)

	resp, env := do(t, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "monthly_expenses")
}

func TestAnalyzeCSVFlow(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "metrics.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("month,revenue,expenses\n1,1000,500\n2,2000,500\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, gatewayURL+"/api/v1/business-health/analyze-csv", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, env := do(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Business health analysis from CSV completed", env.Message)
	p := decodePrediction(t, env)
	assert.Equal(t, "medium", p.RiskLevel)
	assert.InDelta(t, 50, p.CashFlowRisk, 0.001)
}

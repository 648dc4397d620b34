package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieple7985/venture-guard-ai/pkg/testutil"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
)

func execute(t *testing.T, args ...string) (dto.AnalysisResponse, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return dto.AnalysisResponse{}, err
	}

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp), stdout.String())
	return resp, nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "financials.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDemoCommand(t *testing.T) {
	resp, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Equal(t, 36.13, resp.RiskScore)
	assert.Equal(t, "medium", resp.RiskLevel)
	assert.Equal(t, "SaaS", resp.Industry)
	assert.Len(t, resp.Recommendations, 4)
}

func TestAnalyzeCommand(t *testing.T) {
	path := writeCSV(t, testutil.DecliningCSV)

	resp, err := execute(t, "analyze", path,
		"--customers", "150",
		"--churn", "0.05",
		"--age", "18",
		"--employees", "8",
		"--industry", "SaaS",
	)
	require.NoError(t, err)

	assert.Equal(t, 36.13, resp.RiskScore)
	assert.Equal(t, 59.08, resp.CashFlowRisk)
	require.NotNil(t, resp.Predictions.ExpectedCustomerLoss30d)
	assert.Equal(t, 7, *resp.Predictions.ExpectedCustomerLoss30d)
}

func TestAnalyzeCommand_WithoutMetadata(t *testing.T) {
	path := writeCSV(t, testutil.DecliningCSV)

	resp, err := execute(t, "analyze", path)
	require.NoError(t, err)

	assert.Nil(t, resp.Predictions.ExpectedCustomerLoss30d)
	assert.Equal(t, 30.0, resp.OperationalRisk)
}

func TestAnalyzeCommand_ZeroFlagCountsAsProvided(t *testing.T) {
	path := writeCSV(t, testutil.DecliningCSV)

	resp, err := execute(t, "analyze", path, "--employees", "0")
	require.NoError(t, err)

	assert.Equal(t, 50.0, resp.OperationalRisk)
}

func TestAnalyzeCommand_Errors(t *testing.T) {
	_, err := execute(t, "analyze")
	assert.Error(t, err)

	_, err = execute(t, "analyze", filepath.Join(t.TempDir(), "missing.csv"))
	testutil.AssertErrorContains(t, err, "failed to open")

	_, err = execute(t, "analyze", writeCSV(t, "date,revenue\n2024-01,100\n"))
	testutil.AssertErrorContains(t, err, "'revenue' and 'expenses'")

	_, err = execute(t, "analyze", writeCSV(t, "revenue,expenses\n100,50\n"), "--churn", "2")
	testutil.AssertErrorContains(t, err, "customer_churn_rate")
}

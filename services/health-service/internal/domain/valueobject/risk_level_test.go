package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/valueobject"
)

func TestRiskLevelFromScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected valueobject.RiskLevel
	}{
		{0, valueobject.RiskLevelLow},
		{24.99, valueobject.RiskLevelLow},
		{25, valueobject.RiskLevelMedium},
		{49.999, valueobject.RiskLevelMedium},
		{50, valueobject.RiskLevelHigh},
		{74.999, valueobject.RiskLevelHigh},
		{75, valueobject.RiskLevelCritical},
		{100, valueobject.RiskLevelCritical},
	}

	for _, tt := range tests {
		got := valueobject.RiskLevelFromScore(tt.score)
		assert.True(t, got.Equal(tt.expected), "score %v: expected %s, got %s", tt.score, tt.expected, got)
	}
}

func TestRiskLevelFromString(t *testing.T) {
	level, err := valueobject.RiskLevelFromString("critical")
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskLevelCritical, level)

	_, err = valueobject.RiskLevelFromString("CRITICAL")
	assert.Error(t, err)
}

func TestRiskLevel_JSON(t *testing.T) {
	data, err := json.Marshal(valueobject.RiskLevelHigh)
	require.NoError(t, err)
	assert.JSONEq(t, `"high"`, string(data))

	var level valueobject.RiskLevel
	require.NoError(t, json.Unmarshal([]byte(`"medium"`), &level))
	assert.Equal(t, valueobject.RiskLevelMedium, level)

	assert.Error(t, json.Unmarshal([]byte(`"severe"`), &level))
}

func TestRiskLevel_IsZero(t *testing.T) {
	assert.True(t, valueobject.RiskLevel{}.IsZero())
	assert.False(t, valueobject.RiskLevelLow.IsZero())
}

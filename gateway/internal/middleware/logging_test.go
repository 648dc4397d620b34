package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/business-health/analyze", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := serve(handler, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "/api/v1/business-health/analyze", entry["path"])
	assert.EqualValues(t, http.StatusBadGateway, entry["status"])
}

func TestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := serve(LoggingMiddleware(logger)(okHandler()), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}

package middleware

import (
	"net/http"

	"github.com/hieple7985/venture-guard-ai/gateway/internal/proxy"
)

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	proxy.WriteError(w, statusCode, msg)
}

package handler

import (
	"net/http"

	"github.com/hieple7985/venture-guard-ai/gateway/internal/proxy"
)

// Proxies holds the backend proxies the routes dispatch to.
type Proxies struct {
	BusinessHealth *proxy.BusinessHealthProxy
}

// Info describes the running gateway for the banner and health routes.
type Info struct {
	Version     string
	Environment string
	APIPrefix   string // e.g. "/api/v1"
}

// PublicPaths lists the routes served without authentication.
func PublicPaths(apiPrefix string) []string {
	return []string{"/", "/healthz", "/readyz", "/health", apiPrefix + "/business-health/demo"}
}

// RegisterRoutes registers all REST API routes on the given ServeMux.
func RegisterRoutes(mux *http.ServeMux, proxies *Proxies, info Info) {
	// Health
	mux.HandleFunc("GET /{$}", root(info))
	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("GET /health", health(info))
	mux.HandleFunc("GET /readyz", readyz(proxies))

	// Business health
	bh := info.APIPrefix + "/business-health"
	mux.HandleFunc("POST "+bh+"/analyze", proxies.BusinessHealth.Analyze)
	mux.HandleFunc("POST "+bh+"/analyze-csv", proxies.BusinessHealth.AnalyzeCSV)
	mux.HandleFunc("GET "+bh+"/demo", proxies.BusinessHealth.Demo)

	mux.HandleFunc("/", notFound)
}

func root(info Info) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proxy.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "VentureGuard AI API",
			"version": info.Version,
			"status":  "running",
			"docs":    "/docs",
		})
	}
}

func healthz(w http.ResponseWriter, r *http.Request) {
	proxy.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func health(info Info) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proxy.WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "healthy",
			"environment": info.Environment,
		})
	}
}

func readyz(proxies *Proxies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := proxies.BusinessHealth.Ready(r); err != nil {
			proxy.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"error":  err.Error(),
			})
			return
		}
		proxy.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	proxy.WriteError(w, http.StatusNotFound, "route not found")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hieple7985/venture-guard-ai/gateway/internal/config"
	"github.com/hieple7985/venture-guard-ai/gateway/internal/handler"
	"github.com/hieple7985/venture-guard-ai/gateway/internal/middleware"
	"github.com/hieple7985/venture-guard-ai/gateway/internal/proxy"
	"github.com/hieple7985/venture-guard-ai/pkg/auth"
	"github.com/hieple7985/venture-guard-ai/pkg/observability"
	"github.com/hieple7985/venture-guard-ai/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "gateway",
	})
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting gateway",
		"port", cfg.HTTPPort,
		"health_addr", cfg.HealthAddr,
		"environment", cfg.Environment,
	)

	// JWT validation. Without a secret the gateway runs open, which is only
	// acceptable for local development.
	var jwtService *auth.JWTService
	if cfg.AuthEnabled() {
		var err error
		jwtService, err = auth.NewJWTService(auth.JWTConfig{
			Secret: cfg.JWTSecret,
			Issuer: cfg.JWTIssuer,
		})
		if err != nil {
			logger.Error("failed to initialize JWT service", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("JWT_SECRET not set, authentication disabled")
	}

	// Connect to the business-health backend. Connections are lazy; an
	// unreachable backend shows up on /readyz and as 503s.
	creds, err := tlsutil.ClientCredentials(cfg.HealthCAFile)
	if err != nil {
		logger.Error("failed to load backend TLS credentials", "error", err)
		os.Exit(1)
	}
	healthConn, err := proxy.Dial("health-service", cfg.HealthAddr, proxy.BusinessHealthService, creds, logger)
	if err != nil {
		logger.Error("failed to connect to health-service", "error", err)
		os.Exit(1)
	}
	defer healthConn.Close()

	proxies := &handler.Proxies{
		BusinessHealth: proxy.NewBusinessHealthProxy(healthConn, logger),
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, proxies, handler.Info{
		Version:     cfg.Version,
		Environment: cfg.Environment,
		APIPrefix:   cfg.APIPrefix(),
	})

	// Build middleware chain (applied in reverse order).
	var h http.Handler = mux
	h = middleware.PerClientRateLimitMiddleware(middleware.NewPerClientRateLimiter(cfg.RateLimit))(h)
	h = middleware.AuthMiddleware(jwtService, handler.PublicPaths(cfg.APIPrefix()))(h)
	h = middleware.CORSMiddleware(cfg.CORSOrigins)(h)
	h = middleware.LoggingMiddleware(logger)(h)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("gateway stopped")
}

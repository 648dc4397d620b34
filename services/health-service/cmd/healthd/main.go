package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hieple7985/venture-guard-ai/pkg/auth"
	pkgkafka "github.com/hieple7985/venture-guard-ai/pkg/kafka"
	"github.com/hieple7985/venture-guard-ai/pkg/observability"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/usecase"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/port"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/service"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/infrastructure/config"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/infrastructure/kafka"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/infrastructure/messaging"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/infrastructure/metrics"
	grpcpresentation "github.com/hieple7985/venture-guard-ai/services/health-service/internal/presentation/grpc"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "health-service",
	})

	logger.Info("starting health-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: "health-service",
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    cfg.OTLPInsecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "health-service",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(context.Background())

	recorder, err := metrics.NewRecorder(meterProvider)
	if err != nil {
		logger.Error("failed to register instruments", "error", err)
		os.Exit(1)
	}

	// Wire infrastructure adapters.
	readiness := map[string]rest.ReadinessCheck{}
	var eventPublisher port.EventPublisher
	if kafkaCfg := cfg.Kafka(); kafkaCfg.Enabled() {
		producer, err := pkgkafka.NewProducer(kafkaCfg)
		if err != nil {
			logger.Error("failed to create kafka producer", "error", err)
			os.Exit(1)
		}
		defer producer.Close()

		eventPublisher = kafka.NewPublisher(producer, cfg.KafkaTopic, logger)
		readiness["kafka"] = producer.Ping
		logger.Info("publishing domain events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		eventPublisher = messaging.NewLogPublisher(logger)
		logger.Info("KAFKA_BROKERS not set, logging domain events instead")
	}

	var jwtService *auth.JWTService
	if cfg.AuthEnabled() {
		jwtService, err = auth.NewJWTService(auth.JWTConfig{
			Secret: cfg.JWTSecret,
			Issuer: cfg.JWTIssuer,
		})
		if err != nil {
			logger.Error("failed to initialize JWT service", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("JWT_SECRET not set, gRPC authentication disabled")
	}

	// Wire domain services.
	engine := service.NewRiskEngine()

	// Wire use cases.
	analyzeUC := usecase.NewAnalyzeBusinessHealth(eventPublisher, recorder, engine, logger)
	demoUC := usecase.NewGetDemoAnalysis(analyzeUC)

	// gRPC server.
	grpcHandler := grpcpresentation.NewBusinessHealthHandler(analyzeUC, demoUC, logger, cfg.AuthEnabled())
	grpcServer := grpcpresentation.NewServer(grpcHandler, grpcpresentation.ServerConfig{
		Address:     cfg.GRPCAddress(),
		TLSCertFile: cfg.TLSCertFile,
		TLSKeyFile:  cfg.TLSKeyFile,
		Reflection:  cfg.GRPCReflection,
		JWTService:  jwtService,
	}, logger)

	// HTTP server (health checks and metrics).
	healthHandler := rest.NewHealthHandler(logger, metricsHandler, readiness)
	httpMux := http.NewServeMux()
	healthHandler.RegisterRoutes(httpMux)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("health-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down health-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("health-service stopped")
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/application/dto"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/model"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/port"
	"github.com/hieple7985/venture-guard-ai/services/health-service/internal/domain/service"
)

// AnalyzeBusinessHealth is the use case for scoring a business's monthly financials.
type AnalyzeBusinessHealth struct {
	publisher port.EventPublisher
	metrics   port.MetricsRecorder
	engine    *service.RiskEngine
	logger    *slog.Logger
}

// NewAnalyzeBusinessHealth creates a new AnalyzeBusinessHealth use case.
func NewAnalyzeBusinessHealth(
	publisher port.EventPublisher,
	metrics port.MetricsRecorder,
	engine *service.RiskEngine,
	logger *slog.Logger,
) *AnalyzeBusinessHealth {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeBusinessHealth{
		publisher: publisher,
		metrics:   metrics,
		engine:    engine,
		logger:    logger,
	}
}

// Execute validates the input, scores it, and publishes the resulting events.
// Validation failures wrap valueobject.ErrInvalidMetrics. Event delivery is
// best effort and never fails the analysis.
func (uc *AnalyzeBusinessHealth) Execute(ctx context.Context, req dto.AnalyzeRequest) (dto.AnalysisResponse, error) {
	// 1. Create the assessment aggregate; this validates the metrics.
	metrics := req.ToMetrics()
	assessment, err := model.NewHealthAssessment(req.OrganizationID, metrics)
	if err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	// 2. Score via the domain service.
	prediction := uc.engine.Predict(metrics)

	// 3. Apply the prediction to the assessment.
	if err := assessment.Assess(prediction); err != nil {
		return dto.AnalysisResponse{}, fmt.Errorf("failed to assess business health: %w", err)
	}

	// 4. Publish domain events.
	if evts := assessment.ClearEvents(); len(evts) > 0 && uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.WarnContext(ctx, "failed to publish assessment events",
				"assessment_id", assessment.ID(),
				"error", err,
			)
		}
	}

	if uc.metrics != nil {
		uc.metrics.RecordAssessment(ctx, prediction.RiskLevel.String(), prediction.RiskScore)
	}

	uc.logger.InfoContext(ctx, "business health analyzed",
		"assessment_id", assessment.ID(),
		"months", assessment.MonthsAnalyzed(),
		"risk_score", prediction.RiskScore,
		"risk_level", prediction.RiskLevel.String(),
	)

	return dto.FromModel(assessment), nil
}

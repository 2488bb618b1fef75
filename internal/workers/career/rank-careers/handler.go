// internal/workers/career/rank-careers/handler.go
package rankcareers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
	"skillpath-workers/internal/scoring"
)

const (
	TaskType = "rank-careers"
)

var (
	ErrProfileMissing  = errors.New("PROFILE_MISSING")
	ErrInvalidMaxItems = errors.New("INVALID_MAX_ITEMS")
)

type Handler struct {
	config *Config
	engine *scoring.Engine
	logger logger.Logger
}

func NewHandler(config *Config, engine *scoring.Engine, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	done := metrics.JobStarted(ctx, TaskType)
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, span := observability.StartSpan(ctx, TaskType, attribute.Int64("jobKey", job.Key))
	defer span.End()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		done(camunda.FailJob(ctx, client, job, apperrors.NewParseError(err), h.logger))
		return
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		done(camunda.FailJob(ctx, client, job, err, h.logger))
		return
	}

	span.SetAttributes(attribute.String("targetCareer", output.TargetCareer))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute ranks the profile. maxItems above scoring.DefaultTopN is clamped.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	limit := h.config.DefaultMaxItems
	if input.MaxItems != nil {
		if *input.MaxItems < 1 {
			return nil, apperrors.NewInvalidInputError("maxItems", fmt.Errorf("%w: got %d", ErrInvalidMaxItems, *input.MaxItems))
		}
		limit = *input.MaxItems
	}

	ranked := h.engine.RankN(*input.Profile, limit)

	output := &Output{RankedCareers: ranked}
	if len(ranked) > 0 {
		output.TargetCareer = ranked[0].Name
		metrics.TopCareer.WithLabelValues(output.TargetCareer).Inc()
	}

	h.logger.Info("careers ranked", map[string]interface{}{
		"count":        len(ranked),
		"targetCareer": output.TargetCareer,
	})
	return output, nil
}

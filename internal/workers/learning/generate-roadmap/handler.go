// internal/workers/learning/generate-roadmap/handler.go
package generateroadmap

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
	"skillpath-workers/internal/roadmap"
)

const (
	TaskType = "generate-roadmap"
)

var (
	ErrProfileMissing = errors.New("PROFILE_MISSING")
)

type Handler struct {
	config    *Config
	generator *roadmap.Generator
	logger    logger.Logger
}

func NewHandler(config *Config, generator *roadmap.Generator, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		generator: generator,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	span.SetAttributes(attribute.String("templateUsed", output.TemplateUsed))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute builds the six-month plan. An unknown or empty target career falls
// back to the default template.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	plan := h.generator.Plan(*input.Profile, input.TargetCareer)
	metrics.RoadmapTemplate.WithLabelValues(plan.Template).Inc()

	if plan.Template == roadmap.DefaultTemplate && input.TargetCareer != "" {
		h.logger.Warn("no roadmap template for career, using default", map[string]interface{}{
			"targetCareer": input.TargetCareer,
		})
	}

	return &Output{
		Roadmap:      plan.Months,
		TemplateUsed: plan.Template,
	}, nil
}

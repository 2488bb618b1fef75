// internal/workers/report/build-report/handler.go
package buildreport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/advisor"
	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
	"skillpath-workers/internal/report"
)

const (
	TaskType = "build-report"
)

var (
	ErrProfileMissing = errors.New("PROFILE_MISSING")
)

type Handler struct {
	config   *Config
	advisor  *advisor.Advisor
	renderer *report.Renderer
	logger   logger.Logger
}

func NewHandler(config *Config, adv *advisor.Advisor, renderer *report.Renderer, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		advisor:  adv,
		renderer: renderer,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	span.SetAttributes(attribute.String("assessmentId", output.AssessmentID))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute runs the whole assessment for the profile and renders its report.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	assessment := h.advisor.Assess(*input.Profile)

	text, err := h.renderer.Render(assessment.ReportInput())
	if err != nil {
		return nil, err
	}

	h.logger.Info("report built", map[string]interface{}{
		"assessmentId": assessment.ID.String(),
		"targetCareer": assessment.TargetCareer,
		"bytes":        len(text),
	})

	return &Output{
		AssessmentID: assessment.ID.String(),
		Report:       text,
		SkillGap:     assessment.SkillGap,
		TargetCareer: assessment.TargetCareer,
	}, nil
}

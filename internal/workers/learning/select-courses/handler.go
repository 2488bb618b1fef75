// internal/workers/learning/select-courses/handler.go
package selectcourses

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
	"skillpath-workers/internal/courses"
)

const (
	TaskType = "select-courses"
)

var (
	ErrProfileMissing = errors.New("PROFILE_MISSING")
)

type Handler struct {
	config   *Config
	selector *courses.Selector
	logger   logger.Logger
}

func NewHandler(config *Config, selector *courses.Selector, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		selector: selector,
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

	span.SetAttributes(attribute.String("educationStage", output.EducationStage))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	sel := h.selector.Select(*input.Profile)
	metrics.CoursesSelected.WithLabelValues(sel.Stage.String()).Add(float64(len(sel.Courses)))

	if !sel.AffordabilityApplied && len(sel.Courses) > 0 {
		h.logger.Info("no course fits the budget, returning all candidates", map[string]interface{}{
			"budget": input.Profile.MonthlyBudget(),
			"stage":  sel.Stage.String(),
		})
	}

	return &Output{
		Courses:              sel.Courses,
		EducationStage:       sel.Stage.String(),
		AffordabilityApplied: sel.AffordabilityApplied,
	}, nil
}

// internal/workers/report/save-assessment/handler.go
package saveassessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
	"skillpath-workers/internal/store"
)

const (
	TaskType = "save-assessment"
)

var (
	ErrInvalidAssessmentID = errors.New("INVALID_ASSESSMENT_ID")
	ErrProfileMissing      = errors.New("PROFILE_MISSING")
)

// Repository persists assessments. *store.AssessmentStore implements it.
type Repository interface {
	Save(ctx context.Context, rec store.Record) (bool, error)
}

type Handler struct {
	config *Config
	repo   Repository
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(config *Config, repo Repository, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		repo:   repo,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:    time.Now,
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

	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	id, err := uuid.Parse(input.AssessmentID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("assessmentId", fmt.Errorf("%w: %q", ErrInvalidAssessmentID, input.AssessmentID))
	}
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	createdAt := h.now().UTC()
	saved, err := h.repo.Save(ctx, store.Record{
		ID:            id,
		Profile:       *input.Profile,
		RankedCareers: input.RankedCareers,
		TargetCareer:  input.TargetCareer,
		Report:        input.Report,
		CreatedAt:     createdAt,
	})
	if err != nil {
		return nil, err
	}

	if !saved {
		h.logger.Info("assessment already stored", map[string]interface{}{
			"assessmentId": id.String(),
		})
	}

	return &Output{Saved: saved, CreatedAt: createdAt}, nil
}

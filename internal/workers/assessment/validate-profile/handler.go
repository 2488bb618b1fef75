// internal/workers/assessment/validate-profile/handler.go
package validateprofile

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
	"skillpath-workers/internal/common/validation"
	"skillpath-workers/internal/models"
)

const (
	TaskType = "validate-profile"
)

var (
	ErrProfileMissing = errors.New("PROFILE_MISSING")
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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

	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute validates the raw answers. A profile that breaks the schema is not
// a job failure: the process branches on profileValid.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}

	result := validation.ValidateProfile(input.Profile)
	if !result.Valid {
		h.logger.Info("profile rejected", map[string]interface{}{
			"errors": len(result.Errors),
			"fields": fieldsOf(result.Errors),
		})
		return &Output{
			ProfileValid:     false,
			ValidationErrors: result.Errors,
		}, nil
	}

	profile, err := decodeProfile(input.Profile)
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}
	normalized := profile.Normalized()

	return &Output{
		ProfileValid:     true,
		ValidationErrors: []validation.ValidationError{},
		Profile:          &normalized,
	}, nil
}

func decodeProfile(raw map[string]interface{}) (models.Profile, error) {
	var p models.Profile
	data, err := json.Marshal(raw)
	if err != nil {
		return p, err
	}
	err = json.Unmarshal(data, &p)
	return p, err
}

func fieldsOf(errs []validation.ValidationError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

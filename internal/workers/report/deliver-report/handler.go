// internal/workers/report/deliver-report/handler.go
package deliverreport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
	"skillpath-workers/internal/common/validation"
)

const (
	TaskType = "deliver-report"

	subjectPrefix = "Your SkillPath career report"
)

var (
	ErrInvalidEmail = errors.New("INVALID_EMAIL")
	ErrInvalidPhone = errors.New("INVALID_PHONE")
	ErrEmptyReport  = errors.New("EMPTY_REPORT")
)

// EmailSender is implemented by *aws.SESClient.
type EmailSender interface {
	SendText(ctx context.Context, to, subject, body string) (string, error)
}

// SMSSender is implemented by *aws.SNSClient.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

type Handler struct {
	config *Config
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

// NewHandler builds the worker. A nil sender disables that channel.
func NewHandler(config *Config, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		email:  email,
		sms:    sms,
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

	span.SetAttributes(attribute.String("status", output.Status))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute emails the report and texts a short summary. An email failure fails
// the job so it is retried; an SMS failure after a sent email only downgrades
// the status to partial.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := h.validate(input); err != nil {
		return nil, err
	}

	output := &Output{Status: StatusSkipped}

	if h.email != nil {
		id, err := h.email.SendText(ctx, input.Email, subject(input.TargetCareer), input.Report)
		if err != nil {
			return nil, err
		}
		output.EmailMessageID = id
		output.Status = StatusSent
	}

	if h.sms != nil && input.Phone != "" {
		id, err := h.sms.SendSMS(ctx, input.Phone, smsSummary(input.TargetCareer, h.email != nil))
		switch {
		case err != nil && output.EmailMessageID == "":
			return nil, err
		case err != nil:
			h.logger.Warn("sms delivery failed after email was sent", map[string]interface{}{
				"error": err,
			})
			output.Status = StatusPartial
		default:
			output.SMSMessageID = id
			output.Status = StatusSent
		}
	}

	h.logger.Info("report delivery finished", map[string]interface{}{
		"status":    output.Status,
		"emailSent": output.EmailMessageID != "",
		"smsSent":   output.SMSMessageID != "",
	})
	return output, nil
}

func (h *Handler) validate(input *Input) error {
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)

	if !validation.ValidateEmail(input.Email) {
		return apperrors.NewInvalidInputError("email", fmt.Errorf("%w: %q", ErrInvalidEmail, input.Email))
	}
	if input.Phone != "" && !validation.ValidatePhone(input.Phone) {
		return apperrors.NewInvalidInputError("phone", fmt.Errorf("%w: %q", ErrInvalidPhone, input.Phone))
	}
	if strings.TrimSpace(input.Report) == "" {
		return apperrors.NewInvalidInputError("report", ErrEmptyReport)
	}
	return nil
}

func subject(targetCareer string) string {
	if targetCareer == "" {
		return subjectPrefix
	}
	return subjectPrefix + ": " + targetCareer
}

func smsSummary(targetCareer string, emailed bool) string {
	var b strings.Builder
	b.WriteString("SkillPath: ")
	if targetCareer != "" {
		b.WriteString("your top career match is " + targetCareer + ".")
	} else {
		b.WriteString("your career assessment is ready.")
	}
	if emailed {
		b.WriteString(" The full report is in your inbox.")
	}
	return b.String()
}

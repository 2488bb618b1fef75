// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"skillpath-workers/internal/common/config"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
)

const workerName = "skillpath-workers"

// JobHandler is implemented by every worker's Handler.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// OpenWorker starts polling for taskType jobs.
func OpenWorker(client zbc.Client, taskType string, cfg config.WorkerConfig, handler JobHandler) worker.JobWorker {
	return client.NewJobWorker().
		JobType(taskType).
		Handler(handler.Handle).
		Name(workerName).
		MaxJobsActive(cfg.MaxJobsActive).
		Timeout(time.Duration(cfg.Timeout) * time.Millisecond).
		Open()
}

// CompleteJob sends the output variables for job.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}, log logger.Logger) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		log.Error("failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	if _, err := cmd.Send(ctx); err != nil {
		log.Error("failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	log.Info("job completed successfully", map[string]interface{}{
		"jobKey": job.Key,
	})
}

// FailJob records err on the active span, fails or throws the job through the
// shared error handler and returns the error code for metrics.
func FailJob(ctx context.Context, client worker.JobClient, job entities.Job, err error, log logger.Logger) string {
	stdErr := apperrors.Normalize(err)

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, string(stdErr.Code))

	apperrors.NewErrorHandler(log).HandleJobError(ctx, client, job, stdErr)
	return string(stdErr.Code)
}

// internal/workers/career/search-careers/handler.go
package searchcareers

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
	"skillpath-workers/internal/search"
)

const (
	TaskType = "search-careers"
)

var (
	ErrInvalidSize = errors.New("INVALID_SIZE")
)

// Searcher runs a free-text career query. *search.CareerIndex implements it.
type Searcher interface {
	Search(ctx context.Context, text string, size int) ([]search.Hit, error)
}

type Handler struct {
	config   *Config
	searcher Searcher
	logger   logger.Logger
}

func NewHandler(config *Config, searcher Searcher, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		searcher: searcher,
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

	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute searches the career index. An empty query matches every career.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	size := h.config.DefaultSize
	if input.Size != nil {
		if *input.Size < 1 {
			return nil, apperrors.NewInvalidInputError("size", fmt.Errorf("%w: got %d", ErrInvalidSize, *input.Size))
		}
		size = *input.Size
	}
	if size > h.config.MaxSize {
		size = h.config.MaxSize
	}

	query := strings.TrimSpace(input.Query)
	hits, err := h.searcher.Search(ctx, query, size)
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []search.Hit{}
	}

	h.logger.Info("career search completed", map[string]interface{}{
		"query": query,
		"size":  size,
		"hits":  len(hits),
	})
	return &Output{Careers: hits}, nil
}

// internal/workers/career/score-careers/handler.go
package scorecareers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"skillpath-workers/internal/common/camunda"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/common/metrics"
	"skillpath-workers/internal/common/observability"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/scoring"
)

const (
	TaskType = "score-careers"

	cacheKeyPrefix = "skillpath:scores:"
)

var (
	ErrProfileMissing = errors.New("PROFILE_MISSING")
)

// ScoreCache stores score outputs by catalog version and profile fingerprint. *database.RedisClient
// implements it.
type ScoreCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Handler struct {
	config *Config
	engine *scoring.Engine
	cache  ScoreCache
	logger logger.Logger

	// catalogVersion scopes cache keys to the loaded catalog.
	catalogVersion string
}

// NewHandler builds the worker. cache may be nil, which disables caching.
func NewHandler(config *Config, engine *scoring.Engine, cache ScoreCache, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),

		catalogVersion: engine.Catalog().Version(),
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

	span.SetAttributes(attribute.Bool("cacheHit", output.CacheHit))
	done("")
	camunda.CompleteJob(ctx, client, job, output, h.logger)
}

// Execute scores every catalog career. Cache failures are logged and never
// fail the job.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, apperrors.NewInvalidInputError("profile", fmt.Errorf("%w: profile variable is required", ErrProfileMissing))
	}
	key := h.cacheKey(*input.Profile)

	if cached, ok := h.lookup(ctx, key); ok {
		return cached, nil
	}

	output := &Output{
		CareerScores:   h.engine.ScoreAll(*input.Profile),
		ScoreBreakdown: h.engine.Breakdown(*input.Profile),
	}
	metrics.CareersScored.Add(float64(len(output.CareerScores)))

	if h.cache != nil {
		if err := h.cache.SetJSON(ctx, key, output, h.config.CacheTTL); err != nil {
			h.logger.Warn("failed to cache career scores", map[string]interface{}{
				"key":   key,
				"error": err,
			})
		}
	}

	h.logger.Info("careers scored", map[string]interface{}{
		"careers": len(output.CareerScores),
	})
	return output, nil
}

func (h *Handler) cacheKey(p models.Profile) string {
	return cacheKeyPrefix + h.catalogVersion + ":" + p.Fingerprint()
}

func (h *Handler) lookup(ctx context.Context, key string) (*Output, bool) {
	if h.cache == nil {
		return nil, false
	}

	var cached Output
	found, err := h.cache.GetJSON(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.ScoreCache.WithLabelValues(metrics.CacheError).Inc()
		h.logger.Warn("score cache unavailable", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	case !found:
		metrics.ScoreCache.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}

	metrics.ScoreCache.WithLabelValues(metrics.CacheHit).Inc()
	cached.CacheHit = true
	return &cached, true
}

// internal/common/metrics/metrics.go
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"skillpath-workers/internal/common/observability"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	CareersScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillpath_careers_scored_total",
			Help: "Career scores computed across all profiles",
		},
	)

	TopCareer = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_top_career_total",
			Help: "How often each career ranked first",
		},
		[]string{"career"},
	)

	CoursesSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_courses_selected_total",
			Help: "Courses suggested per education stage",
		},
		[]string{"stage"},
	)

	RoadmapTemplate = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_roadmap_template_total",
			Help: "Roadmaps generated per template",
		},
		[]string{"template"},
	)

	ScoreCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillpath_score_cache_total",
			Help: "Score cache lookups by result",
		},
		[]string{"result"},
	)
)

// Score cache results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// JobStarted marks a job active and returns the function that records its
// outcome. An empty errorCode means the job completed.
func JobStarted(ctx context.Context, taskType string) func(errorCode string) {
	started := time.Now()
	WorkerJobsActive.WithLabelValues(taskType).Inc()

	return func(errorCode string) {
		WorkerJobsActive.WithLabelValues(taskType).Dec()
		elapsed := time.Since(started)
		WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())

		status := "completed"
		if errorCode == "" {
			WorkerJobsCompleted.WithLabelValues(taskType).Inc()
		} else {
			status = "failed"
			WorkerJobsFailed.WithLabelValues(taskType, errorCode).Inc()
		}
		observability.RecordJob(ctx, taskType, elapsed, status)
	}
}

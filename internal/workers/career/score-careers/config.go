// internal/workers/career/score-careers/config.go
package scorecareers

import (
	"time"

	"skillpath-workers/internal/common/config"
)

type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

// LoadConfig reads the worker timeout and the assessment cache TTL (seconds).
func LoadConfig(wc config.WorkerConfig, ac config.AssessmentConfig) *Config {
	timeout := config.GetDuration(wc.Timeout)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ttl := time.Duration(ac.CacheTTL) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Config{CacheTTL: ttl, Timeout: timeout}
}

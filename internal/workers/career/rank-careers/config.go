// internal/workers/career/rank-careers/config.go
package rankcareers

import (
	"time"

	"skillpath-workers/internal/common/config"
)

type Config struct {
	// DefaultMaxItems applies when the job carries no maxItems variable.
	DefaultMaxItems int
	Timeout         time.Duration
}

func LoadConfig(wc config.WorkerConfig, ac config.AssessmentConfig) *Config {
	timeout := config.GetDuration(wc.Timeout)
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxItems := ac.TopN
	if maxItems <= 0 {
		maxItems = 10
	}
	return &Config{DefaultMaxItems: maxItems, Timeout: timeout}
}

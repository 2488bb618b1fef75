// internal/workers/career/search-careers/config.go
package searchcareers

import (
	"time"

	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/search"
)

type Config struct {
	DefaultSize int
	MaxSize     int
	Timeout     time.Duration
}

func LoadConfig(wc config.WorkerConfig) *Config {
	timeout := config.GetDuration(wc.Timeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		DefaultSize: search.DefaultSize,
		MaxSize:     search.MaxSize,
		Timeout:     timeout,
	}
}

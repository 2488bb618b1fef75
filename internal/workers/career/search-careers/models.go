// internal/workers/career/search-careers/models.go
package searchcareers

import "skillpath-workers/internal/search"

type Input struct {
	Query string `json:"query"`
	Size  *int   `json:"size,omitempty"`
}

type Output struct {
	Careers []search.Hit `json:"careers"`
}

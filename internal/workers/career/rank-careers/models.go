// internal/workers/career/rank-careers/models.go
package rankcareers

import "skillpath-workers/internal/models"

type Input struct {
	Profile  *models.Profile `json:"profile"`
	MaxItems *int            `json:"maxItems,omitempty"`
}

type Output struct {
	RankedCareers []models.RankedCareer `json:"rankedCareers"`
	TargetCareer  string                `json:"targetCareer"`
}

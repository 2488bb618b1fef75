// internal/workers/career/score-careers/models.go
package scorecareers

import "skillpath-workers/internal/models"

type Input struct {
	Profile *models.Profile `json:"profile"`
}

type Output struct {
	CareerScores   map[string]int          `json:"careerScores"`
	ScoreBreakdown []models.ScoreBreakdown `json:"scoreBreakdown"`
	CacheHit       bool                    `json:"cacheHit"`
}

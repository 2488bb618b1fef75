// internal/workers/report/save-assessment/models.go
package saveassessment

import (
	"time"

	"skillpath-workers/internal/models"
)

type Input struct {
	AssessmentID  string                `json:"assessmentId"`
	Profile       *models.Profile       `json:"profile"`
	RankedCareers []models.RankedCareer `json:"rankedCareers"`
	TargetCareer  string                `json:"targetCareer"`
	Report        string                `json:"report"`
}

type Output struct {
	// Saved is false when the assessment was already stored by an earlier attempt.
	Saved     bool      `json:"saved"`
	CreatedAt time.Time `json:"createdAt"`
}

// internal/workers/learning/select-courses/models.go
package selectcourses

import "skillpath-workers/internal/models"

type Input struct {
	Profile *models.Profile `json:"profile"`
}

type Output struct {
	Courses              []models.Course `json:"courses"`
	EducationStage       string          `json:"educationStage"`
	AffordabilityApplied bool            `json:"affordabilityApplied"`
}

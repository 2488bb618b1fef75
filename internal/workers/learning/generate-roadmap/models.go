// internal/workers/learning/generate-roadmap/models.go
package generateroadmap

import "skillpath-workers/internal/models"

type Input struct {
	Profile      *models.Profile `json:"profile"`
	TargetCareer string          `json:"targetCareer"`
}

type Output struct {
	Roadmap      []models.MonthPlan `json:"roadmap"`
	TemplateUsed string             `json:"templateUsed"`
}

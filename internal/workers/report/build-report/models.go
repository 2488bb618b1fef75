// internal/workers/report/build-report/models.go
package buildreport

import (
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/report"
)

type Input struct {
	Profile *models.Profile `json:"profile"`
}

type Output struct {
	AssessmentID string          `json:"assessmentId"`
	Report       string          `json:"report"`
	SkillGap     report.SkillGap `json:"skillGap"`
	TargetCareer string          `json:"targetCareer"`
}

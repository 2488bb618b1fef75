// internal/workers/assessment/validate-profile/models.go
package validateprofile

import (
	"skillpath-workers/internal/common/validation"
	"skillpath-workers/internal/models"
)

type Input struct {
	Profile map[string]interface{} `json:"profile"`
}

type Output struct {
	ProfileValid     bool                         `json:"profileValid"`
	ValidationErrors []validation.ValidationError `json:"validationErrors"`
	Profile          *models.Profile              `json:"profile,omitempty"`
}

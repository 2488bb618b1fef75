// internal/common/validation/profile.go
package validation

import (
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"skillpath-workers/internal/models"
)

func bound(v float64) *float64 { return &v }

func enumArray(vocabulary []string, description string) Property {
	return Property{
		Type:        "array",
		Description: description,
		UniqueItems: true,
		Items:       &Property{Type: "string", Enum: vocabulary},
	}
}

// ProfileSchema describes the assessment answers. Every answer is optional;
// unknown keys are allowed and ignored by scoring.
func ProfileSchema() JSONSchema {
	return JSONSchema{
		Type:                 "object",
		AdditionalProperties: true,
		Properties: map[string]Property{
			"education_level": {Type: "string", Enum: models.EducationLevels},
			"stream_details":  {Type: "string"},
			"academic_performance": {
				Type:    "integer",
				Minimum: bound(models.MinAcademicPerformance),
				Maximum: bound(models.MaxAcademicPerformance),
			},
			"interests":        enumArray(models.Interests, "areas of interest"),
			"technical_skills": enumArray(models.TechnicalSkills, "technical skills held"),
			"soft_skills":      enumArray(models.SoftSkills, "soft skills held"),
			"personality":      {Type: "string", Enum: models.Personalities},
			"learning_style":   {Type: "string", Enum: models.LearningStyles},
			"work_environment": {Type: "string", Enum: models.WorkEnvironments},
			"career_priority":  {Type: "string", Enum: models.CareerPriorities},
			"timeframe":        {Type: "string", Enum: models.Timeframes},
			"budget": {
				Type:    "integer",
				Minimum: bound(models.MinBudget),
				Maximum: bound(models.MaxBudget),
			},
			"time_available": {
				Type:    "integer",
				Minimum: bound(models.MinTimeAvailable),
				Maximum: bound(models.MaxTimeAvailable),
			},
			"location_preference": enumArray(models.LocationPreferences, "preferred study or work locations"),
			"industry_interests":  enumArray(models.Industries, "industries of interest"),
			"concerns":            {Type: "string", MaxLength: intPtr(2000)},
		},
	}
}

func intPtr(v int) *int { return &v }

var compiledProfileSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return Compile(ProfileSchema())
})

// ValidateProfile checks raw answers against ProfileSchema.
func ValidateProfile(raw map[string]interface{}) *ValidationResult {
	schema, err := compiledProfileSchema()
	if err != nil {
		return invalid(ValidationError{Field: "(schema)", Message: err.Error(), Code: CodeInvalidSchema})
	}
	return validateCompiled(schema, raw)
}

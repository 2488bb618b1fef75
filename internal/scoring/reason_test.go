// internal/scoring/reason_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

func TestReason(t *testing.T) {
	softwareEngineer, ok := catalog.Default().Career("Software Engineer")
	require.True(t, ok)
	psychologist, ok := catalog.Default().Career("Psychologist")
	require.True(t, ok)

	impactCareer := models.CareerRecord{
		Name:             "NGO Program Lead",
		RelatedInterests: []string{models.InterestSocialWork},
		Benefits:         "Direct Social Impact",
	}
	highPay := models.CareerRecord{Name: "Quant", SalaryRange: "Very High"}

	tests := []struct {
		name     string
		profile  models.Profile
		career   models.CareerRecord
		expected string
	}{
		{
			name:     "nothing matches",
			profile:  models.Profile{},
			career:   softwareEngineer,
			expected: FallbackReason,
		},
		{
			name: "interests in career order and skill count",
			profile: models.Profile{
				Interests:       []string{models.InterestScience, models.InterestTechnology},
				TechnicalSkills: []string{models.SkillProgramming},
				SoftSkills:      []string{models.SkillTeamwork},
			},
			career:   softwareEngineer,
			expected: "Your interests in Technology & Programming, Science & Research align perfectly. you already have 2 relevant skills",
		},
		{
			name: "at most two interests are named",
			profile: models.Profile{
				Interests: []string{models.InterestSocialWork, models.InterestScience, models.InterestHealthcare},
			},
			career:   psychologist,
			expected: "Your interests in Healthcare & Medicine, Social Work align perfectly",
		},
		{
			name:     "work-life balance is always appended",
			profile:  models.Profile{CareerPriority: "Work-Life Balance"},
			career:   softwareEngineer,
			expected: "provides good work-life balance",
		},
		{
			name:     "high salary needs High in the salary range",
			profile:  models.Profile{CareerPriority: "High Salary & Financial Growth"},
			career:   softwareEngineer,
			expected: FallbackReason,
		},
		{
			name:     "high salary clause",
			profile:  models.Profile{CareerPriority: "High Salary & Financial Growth"},
			career:   highPay,
			expected: "offers excellent financial growth",
		},
		{
			name:     "social impact needs benefits text",
			profile:  models.Profile{CareerPriority: "Making Social Impact"},
			career:   psychologist,
			expected: FallbackReason,
		},
		{
			name: "social impact clause with benefits",
			profile: models.Profile{
				CareerPriority: "Making Social Impact",
				Interests:      []string{models.InterestSocialWork},
			},
			career:   impactCareer,
			expected: "Your interests in Social Work align perfectly. creates meaningful social impact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reason(tt.profile, tt.career))
		})
	}
}

// internal/workers/learning/select-courses/handler_test.go
package selectcourses

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/common/config"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/courses"
	"skillpath-workers/internal/models"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(config.WorkerConfig{}), courses.NewSelector(nil), logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name           string
		profile        *models.Profile
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:    "postgraduate fixed list",
			profile: &models.Profile{EducationLevel: "Postgraduate", Budget: models.IntPtr(50000)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "postgraduate", out.EducationStage)
				assert.True(t, out.AffordabilityApplied)
				require.Len(t, out.Courses, 2)
				assert.Equal(t, "M.Tech in Specialization", out.Courses[0].Name)
			},
		},
		{
			name: "nothing affordable returns candidates",
			profile: &models.Profile{
				EducationLevel: "12th Grade - Science",
				Interests:      []string{models.InterestHealthcare},
				Budget:         models.IntPtr(100),
			},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "after-12th-science", out.EducationStage)
				assert.False(t, out.AffordabilityApplied)
				assert.Len(t, out.Courses, 3)
			},
		},
		{
			name:    "unknown education",
			profile: &models.Profile{},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "unknown", out.EducationStage)
				assert.NotNil(t, out.Courses)
				assert.Empty(t, out.Courses)
			},
		},
	}

	h := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{Profile: tt.profile})
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestExecute_MissingProfile(t *testing.T) {
	_, err := createTestHandler(t).Execute(context.Background(), &Input{})

	assert.ErrorIs(t, err, ErrProfileMissing)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
}

// internal/workers/learning/generate-roadmap/handler_test.go
package generateroadmap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/common/config"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/roadmap"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(config.WorkerConfig{}), roadmap.NewGenerator(nil), logger.NewTestLogger(t))
}

func TestExecute(t *testing.T) {
	lowBudget := &models.Profile{Budget: models.IntPtr(1000), TimeAvailable: models.IntPtr(8)}

	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "known career",
			input: &Input{Profile: lowBudget, TargetCareer: "Software Engineer"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, "Software Engineer", out.TemplateUsed)
				require.Len(t, out.Roadmap, 6)
				assert.Equal(t, "Month 1: Foundation", out.Roadmap[0].Month)
				assert.Equal(t, "8 hours/week", out.Roadmap[0].Time)
				assert.Contains(t, out.Roadmap[0].Resources, "Coursera Python for Everybody (Audit for free)")
			},
		},
		{
			name:  "unknown career",
			input: &Input{Profile: lowBudget, TargetCareer: "Astronaut"},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, roadmap.DefaultTemplate, out.TemplateUsed)
				assert.Len(t, out.Roadmap, 6)
			},
		},
		{
			name:  "empty target",
			input: &Input{Profile: &models.Profile{}},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Equal(t, roadmap.DefaultTemplate, out.TemplateUsed)
				assert.Equal(t, "15 hours/week", out.Roadmap[5].Time)
			},
		},
	}

	h := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestExecute_MissingProfile(t *testing.T) {
	_, err := createTestHandler(t).Execute(context.Background(), &Input{TargetCareer: "Software Engineer"})

	assert.ErrorIs(t, err, ErrProfileMissing)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
}

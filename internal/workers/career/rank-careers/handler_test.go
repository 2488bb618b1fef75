// internal/workers/career/rank-careers/handler_test.go
package rankcareers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/config"
	apperrors "skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/scoring"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T, c *catalog.Catalog) *Handler {
	cfg := LoadConfig(config.WorkerConfig{}, config.AssessmentConfig{TopN: 10})
	return NewHandler(cfg, scoring.NewEngine(c, cfg.DefaultMaxItems), logger.NewTestLogger(t))
}

func scienceStudent() *models.Profile {
	return &models.Profile{
		EducationLevel:  "12th Grade - Science",
		Interests:       []string{models.InterestTechnology},
		TechnicalSkills: []string{models.SkillProgramming},
		SoftSkills:      []string{models.SkillProblemSolving},
		Personality:     models.Personalities[0],
	}
}

func intPtr(v int) *int { return &v }

// ==========================
// Configuration Tests
// ==========================

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig(config.WorkerConfig{}, config.AssessmentConfig{})
	assert.Equal(t, 10, cfg.DefaultMaxItems)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestExecute(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		validateOutput func(t *testing.T, out *Output)
	}{
		{
			name:  "default limit",
			input: &Input{Profile: scienceStudent()},
			validateOutput: func(t *testing.T, out *Output) {
				require.Len(t, out.RankedCareers, 10)
				assert.Equal(t, out.RankedCareers[0].Name, out.TargetCareer)
				for i := 1; i < len(out.RankedCareers); i++ {
					assert.GreaterOrEqual(t, out.RankedCareers[i-1].Score, out.RankedCareers[i].Score)
				}
			},
		},
		{
			name:  "explicit limit",
			input: &Input{Profile: scienceStudent(), MaxItems: intPtr(3)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Len(t, out.RankedCareers, 3)
			},
		},
		{
			name:  "limit above ten is clamped",
			input: &Input{Profile: scienceStudent(), MaxItems: intPtr(50)},
			validateOutput: func(t *testing.T, out *Output) {
				assert.Len(t, out.RankedCareers, scoring.DefaultTopN)
			},
		},
		{
			name:  "empty profile keeps catalog order",
			input: &Input{Profile: &models.Profile{}},
			validateOutput: func(t *testing.T, out *Output) {
				names := catalog.Default().CareerNames()
				for i, rc := range out.RankedCareers {
					assert.Equal(t, names[i], rc.Name)
					assert.Equal(t, 0, rc.Score)
				}
			},
		},
	}

	h := createTestHandler(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, out)
		})
	}
}

func TestExecute_EmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil, nil, nil, nil)
	require.NoError(t, err)

	out, err := createTestHandler(t, c).Execute(context.Background(), &Input{Profile: scienceStudent()})

	require.NoError(t, err)
	assert.Empty(t, out.RankedCareers)
	assert.Empty(t, out.TargetCareer)
}

// ==========================
// Error Handling Tests
// ==========================

func TestExecute_InvalidInput(t *testing.T) {
	h := createTestHandler(t, nil)

	_, err := h.Execute(context.Background(), &Input{})
	assert.ErrorIs(t, err, ErrProfileMissing)

	_, err = h.Execute(context.Background(), &Input{Profile: scienceStudent(), MaxItems: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidMaxItems)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
}

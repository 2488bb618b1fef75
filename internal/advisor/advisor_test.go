// internal/advisor/advisor_test.go
package advisor

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/roadmap"
)

func TestAssess_FullPipeline(t *testing.T) {
	a := New(nil, Config{TopN: 5})
	fixed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }

	p := models.Profile{
		EducationLevel:  "12th Grade - Science",
		Interests:       []string{models.InterestTechnology},
		TechnicalSkills: []string{models.SkillProgramming},
		SoftSkills:      []string{models.SkillProblemSolving},
		Personality:     models.Personalities[0],
	}

	got := a.Assess(p)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Len(t, got.Scores, 15)
	assert.Equal(t, 70, got.Scores["Software Engineer"])
	require.Len(t, got.Careers, 5)
	assert.Equal(t, got.Careers[0].Name, got.TargetCareer)
	assert.Equal(t, got.TargetCareer, got.RoadmapTemplate)
	assert.Len(t, got.Roadmap, catalog.RoadmapMonths)
	assert.Equal(t, "after-12th-science", got.EducationStage)
	assert.NotEmpty(t, got.Courses)
	assert.NotContains(t, got.SkillGap.ToDevelop, models.SkillProgramming)
	assert.Equal(t, []string{models.SkillProgramming, models.SkillProblemSolving}, got.SkillGap.Current)

	in := got.ReportInput()
	assert.Equal(t, got.TargetCareer, in.TargetCareer)
	assert.Equal(t, got.Roadmap, in.Roadmap)
}

func TestAssess_EmptyCatalog(t *testing.T) {
	c, err := catalog.New(nil, nil, nil, nil)
	require.NoError(t, err)

	got := New(c, Config{}).Assess(models.Profile{})

	assert.Empty(t, got.Careers)
	assert.Empty(t, got.TargetCareer)
	assert.Equal(t, roadmap.DefaultTemplate, got.RoadmapTemplate)
	assert.Len(t, got.Roadmap, catalog.RoadmapMonths)
	assert.Empty(t, got.SkillGap.ToDevelop)
}

func TestAssess_UniqueIDs(t *testing.T) {
	a := New(nil, Config{})
	assert.NotEqual(t, a.Assess(models.Profile{}).ID, a.Assess(models.Profile{}).ID)
}

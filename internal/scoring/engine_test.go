// internal/scoring/engine_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func scienceStudent() models.Profile {
	return models.Profile{
		EducationLevel:  "12th Grade - Science",
		Interests:       []string{models.InterestTechnology},
		TechnicalSkills: []string{models.SkillProgramming},
		SoftSkills:      []string{models.SkillProblemSolving},
		Personality:     models.Personalities[0],
	}
}

func customCatalog(t *testing.T, careers ...models.CareerRecord) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(careers, nil, nil, nil)
	require.NoError(t, err)
	return c
}

// ==========================
// Core Functionality Tests
// ==========================

func TestScore_SoftwareEngineerExample(t *testing.T) {
	career, ok := catalog.Default().Career("Software Engineer")
	require.True(t, ok)

	b := Score(scienceStudent(), career)

	assert.InDelta(t, 20.0, b.Interest, 1e-9)
	assert.InDelta(t, 10.0, b.Skill, 1e-9)
	assert.InDelta(t, 20.0, b.Personality, 1e-9)
	assert.InDelta(t, 20.0, b.Academic, 1e-9)
	assert.Equal(t, 70, b.Total)
	assert.Equal(t, 70, NewEngine(nil, 0).ScoreAll(scienceStudent())["Software Engineer"])
}

func TestScore_Components(t *testing.T) {
	career := models.CareerRecord{
		Name:                  "Test Career",
		RelatedInterests:      []string{models.InterestArtDesign, models.InterestMedia, models.InterestLaw},
		RequiredSkills:        []string{models.SkillCreativity, models.SkillVideoEditing, models.SkillEmpathy},
		PersonalityFit:        []string{models.PersonalityCreative},
		EducationRequirements: []string{"Undergraduate"},
	}

	tests := []struct {
		name           string
		profile        models.Profile
		validateOutput func(t *testing.T, b models.ScoreBreakdown)
	}{
		{
			name:    "empty profile scores zero",
			profile: models.Profile{},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.Equal(t, 0, b.Total)
			},
		},
		{
			name:    "one of three interests truncates",
			profile: models.Profile{Interests: []string{models.InterestLaw}},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.InDelta(t, 40.0/3, b.Interest, 1e-9)
				assert.Equal(t, 13, b.Total)
			},
		},
		{
			name: "skills from both lists count once",
			profile: models.Profile{
				TechnicalSkills: []string{models.SkillVideoEditing, models.SkillVideoEditing},
				SoftSkills:      []string{models.SkillCreativity},
			},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.InDelta(t, 40.0/3, b.Skill, 1e-9)
			},
		},
		{
			name:    "non matching personality gets partial credit",
			profile: models.Profile{Personality: models.Personalities[3]},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.Equal(t, PersonalityPartial, b.Personality)
			},
		},
		{
			name:    "education substring match",
			profile: models.Profile{EducationLevel: "Undergraduate (3rd/4th Year)"},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.Equal(t, AcademicWeight, b.Academic)
			},
		},
		{
			name:    "education baseline",
			profile: models.Profile{EducationLevel: "10th Grade"},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.Equal(t, AcademicBaseline, b.Academic)
			},
		},
		{
			name: "full match is capped at 100",
			profile: models.Profile{
				EducationLevel:  "Undergraduate (1st/2nd Year)",
				Interests:       models.Interests,
				TechnicalSkills: models.TechnicalSkills,
				SoftSkills:      models.SoftSkills,
				Personality:     models.Personalities[1],
			},
			validateOutput: func(t *testing.T, b models.ScoreBreakdown) {
				assert.Equal(t, 100, b.Total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateOutput(t, Score(tt.profile, career))
		})
	}
}

func TestScore_CareerWithEmptySets(t *testing.T) {
	career := models.CareerRecord{Name: "Blank"}
	p := scienceStudent()

	b := Score(p, career)
	assert.Zero(t, b.Interest)
	assert.Zero(t, b.Skill)
	assert.Zero(t, b.Personality)
	assert.Equal(t, AcademicBaseline, b.Academic)
	assert.Equal(t, 10, b.Total)
}

func TestScoreAll_Bounded(t *testing.T) {
	profiles := []models.Profile{
		{},
		scienceStudent(),
		{Interests: models.Interests, TechnicalSkills: models.TechnicalSkills, SoftSkills: models.SoftSkills,
			Personality: models.Personalities[4], EducationLevel: "Postgraduate"},
		{Personality: "Something else entirely", EducationLevel: "unknown"},
	}
	engine := NewEngine(catalog.Default(), 0)

	for _, p := range profiles {
		scores := engine.ScoreAll(p)
		assert.Len(t, scores, len(catalog.Default().Careers))
		for name, score := range scores {
			assert.GreaterOrEqual(t, score, 0, name)
			assert.LessOrEqual(t, score, 100, name)
		}
	}
}

func TestScoreAll_ZeroInputBaseline(t *testing.T) {
	for name, score := range NewEngine(nil, 0).ScoreAll(models.Profile{}) {
		assert.Zero(t, score, name)
	}
}

func TestScoreAll_SupersetEarnsSixty(t *testing.T) {
	p := models.Profile{
		Interests:       models.Interests,
		TechnicalSkills: models.TechnicalSkills,
		SoftSkills:      models.SoftSkills,
	}
	for _, b := range NewEngine(nil, 0).Breakdown(p) {
		assert.InDelta(t, 60.0, b.Interest+b.Skill, 1e-9, b.Career)
	}
}

// ==========================
// Ranking Tests
// ==========================

func TestRank_SortedAndLimited(t *testing.T) {
	ranked := NewEngine(nil, 0).Rank(scienceStudent())

	require.Len(t, ranked, DefaultTopN)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.Contains(t, []string{"Software Engineer", "Data Scientist"}, ranked[0].Name)
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	ranked := NewEngine(nil, 0).Rank(models.Profile{})

	names := catalog.Default().CareerNames()[:DefaultTopN]
	for i, r := range ranked {
		assert.Equal(t, names[i], r.Name)
		assert.Zero(t, r.Score)
		assert.Equal(t, FallbackReason, r.Reason)
	}
}

func TestRank_CopiesCareerDetails(t *testing.T) {
	c := customCatalog(t,
		models.CareerRecord{Name: "A", SalaryRange: "s", GrowthPotential: "g", RequiredSkills: []string{models.SkillEmpathy}},
		models.CareerRecord{Name: "B", RelatedInterests: []string{models.InterestSports}},
	)
	ranked := NewEngine(c, 5).Rank(models.Profile{Interests: []string{models.InterestSports}})

	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Name)
	assert.Equal(t, 40, ranked[0].Score)
	assert.Equal(t, "A", ranked[1].Name)
	assert.Equal(t, "s", ranked[1].Salary)
	assert.Equal(t, "g", ranked[1].Growth)
	assert.Equal(t, []string{models.SkillEmpathy}, ranked[1].Skills)
}

func TestRank_EmptyCatalog(t *testing.T) {
	engine := NewEngine(customCatalog(t), 0)
	assert.Empty(t, engine.Rank(scienceStudent()))
	assert.Empty(t, engine.ScoreAll(scienceStudent()))
}

func TestRankN(t *testing.T) {
	engine := NewEngine(nil, 0)
	assert.Len(t, engine.RankN(scienceStudent(), 3), 3)
	assert.Len(t, engine.RankN(scienceStudent(), 0), DefaultTopN)
	assert.Len(t, engine.RankN(scienceStudent(), 50), DefaultTopN)
	assert.Len(t, NewEngine(nil, 50).Rank(scienceStudent()), DefaultTopN)
}

func TestRank_SkillsDoNotAliasCatalog(t *testing.T) {
	c := customCatalog(t,
		models.CareerRecord{Name: "A", RequiredSkills: []string{models.SkillEmpathy, models.SkillProgramming}},
	)
	engine := NewEngine(c, 0)

	ranked := engine.Rank(models.Profile{})
	ranked[0].Skills[0] = "changed"

	assert.Equal(t, models.SkillEmpathy, c.Careers[0].RequiredSkills[0])
	assert.Equal(t, models.SkillEmpathy, engine.Rank(models.Profile{})[0].Skills[0])
}

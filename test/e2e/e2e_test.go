// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/advisor"
	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/common/config"
	"skillpath-workers/internal/common/database"
	"skillpath-workers/internal/common/logger"
	"skillpath-workers/internal/courses"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/report"
	"skillpath-workers/internal/roadmap"
	"skillpath-workers/internal/scoring"
	"skillpath-workers/internal/store"

	validateprofile "skillpath-workers/internal/workers/assessment/validate-profile"
	rankcareers "skillpath-workers/internal/workers/career/rank-careers"
	scorecareers "skillpath-workers/internal/workers/career/score-careers"
	generateroadmap "skillpath-workers/internal/workers/learning/generate-roadmap"
	selectcourses "skillpath-workers/internal/workers/learning/select-courses"
	buildreport "skillpath-workers/internal/workers/report/build-report"
	deliverreport "skillpath-workers/internal/workers/report/deliver-report"
	saveassessment "skillpath-workers/internal/workers/report/save-assessment"
)

// ==========================
// Process Variable Helpers
// ==========================

// step runs one worker the way Zeebe would: the process variables are
// encoded as the job payload and the output is merged back into them.
func step[I any, O any](t *testing.T, vars map[string]interface{}, exec func(context.Context, *I) (*O, error)) *O {
	t.Helper()

	payload, err := json.Marshal(vars)
	require.NoError(t, err)
	var input I
	require.NoError(t, json.Unmarshal(payload, &input))

	output, err := exec(context.Background(), &input)
	require.NoError(t, err)

	encoded, err := json.Marshal(output)
	require.NoError(t, err)
	merged := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(encoded, &merged))
	for k, v := range merged {
		vars[k] = v
	}
	return output
}

type recordingEmail struct {
	to      string
	subject string
	body    string
}

func (r *recordingEmail) SendText(_ context.Context, to, subject, body string) (string, error) {
	r.to, r.subject, r.body = to, subject, body
	return "ses-message-1", nil
}

func submittedProfile() map[string]interface{} {
	return map[string]interface{}{
		"education_level":      "12th Grade - Science",
		"academic_performance": 88,
		"interests":            []interface{}{models.InterestTechnology, models.InterestScience},
		"technical_skills":     []interface{}{models.SkillProgramming, models.SkillDataAnalysis},
		"soft_skills":          []interface{}{models.SkillProblemSolving},
		"personality":          models.Personalities[0],
		"learning_style":       models.LearningStyles[0],
		"career_priority":      models.CareerPriorities[0],
		"budget":               3000,
		"time_available":       10,
	}
}

// ==========================
// Assessment Process Tests
// ==========================

func TestAssessmentProcess(t *testing.T) {
	log := logger.NewTestLogger(t)
	cat := catalog.Default()
	wc := config.WorkerConfig{Timeout: 5000}
	ac := config.AssessmentConfig{TopN: 5, CacheTTL: 60}

	mr := miniredis.RunT(t)
	cache := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.Close() })

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	engine := scoring.NewEngine(cat, ac.TopN)
	renderer, err := report.NewRenderer()
	require.NoError(t, err)
	email := &recordingEmail{}

	validate := validateprofile.NewHandler(validateprofile.LoadConfig(wc), log)
	score := scorecareers.NewHandler(scorecareers.LoadConfig(wc, ac), engine, cache, log)
	rank := rankcareers.NewHandler(rankcareers.LoadConfig(wc, ac), engine, log)
	courseSel := selectcourses.NewHandler(selectcourses.LoadConfig(wc), courses.NewSelector(cat), log)
	plan := generateroadmap.NewHandler(generateroadmap.LoadConfig(wc), roadmap.NewGenerator(cat), log)
	build := buildreport.NewHandler(buildreport.LoadConfig(wc), advisor.New(cat, advisor.Config{TopN: ac.TopN}), renderer, log)
	save := saveassessment.NewHandler(saveassessment.LoadConfig(wc), store.New(db), log)
	deliver := deliverreport.NewHandler(deliverreport.LoadConfig(wc), email, nil, log)

	vars := map[string]interface{}{
		"profile": submittedProfile(),
		"email":   "student@example.com",
	}

	validated := step(t, vars, validate.Execute)
	require.True(t, validated.ProfileValid, validated.ValidationErrors)

	scored := step(t, vars, score.Execute)
	assert.False(t, scored.CacheHit)
	assert.Len(t, scored.CareerScores, len(cat.Careers))

	ranked := step(t, vars, rank.Execute)
	require.Len(t, ranked.RankedCareers, ac.TopN)
	assert.Equal(t, ranked.RankedCareers[0].Name, ranked.TargetCareer)
	assert.Equal(t, scored.CareerScores[ranked.TargetCareer], ranked.RankedCareers[0].Score)

	selected := step(t, vars, courseSel.Execute)
	assert.Equal(t, "after-12th-science", selected.EducationStage)
	assert.NotEmpty(t, selected.Courses)

	roadmapOut := step(t, vars, plan.Execute)
	require.Len(t, roadmapOut.Roadmap, catalog.RoadmapMonths)
	assert.Equal(t, "10 hours/week", roadmapOut.Roadmap[0].Time)

	built := step(t, vars, build.Execute)
	assert.Equal(t, ranked.TargetCareer, built.TargetCareer)
	assert.Contains(t, built.Report, "CAREER RECOMMENDATION REPORT")

	mock.ExpectExec(`INSERT INTO assessments`).
		WithArgs(built.AssessmentID, sqlmock.AnyArg(), sqlmock.AnyArg(), built.TargetCareer, built.Report, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	saved := step(t, vars, save.Execute)
	assert.True(t, saved.Saved)
	assert.NoError(t, mock.ExpectationsWereMet())

	delivered := step(t, vars, deliver.Execute)
	assert.Equal(t, deliverreport.StatusSent, delivered.Status)
	assert.Equal(t, "ses-message-1", delivered.EmailMessageID)
	assert.Equal(t, "student@example.com", email.to)
	assert.Contains(t, email.subject, built.TargetCareer)
	assert.Equal(t, built.Report, email.body)

	// a second instance of the same profile is served from the cache
	rescored := step(t, vars, score.Execute)
	assert.True(t, rescored.CacheHit)
	assert.Equal(t, scored.CareerScores, rescored.CareerScores)
}

func TestAssessmentProcess_InvalidProfileStopsEarly(t *testing.T) {
	h := validateprofile.NewHandler(validateprofile.LoadConfig(config.WorkerConfig{}), logger.NewTestLogger(t))

	profile := submittedProfile()
	profile["interests"] = []interface{}{"Astrology"}
	vars := map[string]interface{}{"profile": profile}

	out := step(t, vars, h.Execute)

	assert.False(t, out.ProfileValid)
	assert.NotEmpty(t, out.ValidationErrors)
	assert.Equal(t, false, vars["profileValid"])
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkHandler_ScoreCareers(b *testing.B) {
	h := scorecareers.NewHandler(
		&scorecareers.Config{Timeout: 5 * time.Second},
		scoring.NewEngine(nil, 10), nil, logger.NewNoOpLogger(),
	)
	input := &scorecareers.Input{Profile: &models.Profile{
		EducationLevel:  "Postgraduate",
		Interests:       []string{models.InterestTechnology},
		TechnicalSkills: []string{models.SkillProgramming},
	}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Execute(context.Background(), input)
	}
}

func BenchmarkHandler_BuildReport(b *testing.B) {
	renderer, err := report.NewRenderer()
	if err != nil {
		b.Fatal(err)
	}
	h := buildreport.NewHandler(
		&buildreport.Config{Timeout: 5 * time.Second},
		advisor.New(nil, advisor.Config{TopN: 10}), renderer, logger.NewStructured("error", "json"),
	)
	input := &buildreport.Input{Profile: &models.Profile{EducationLevel: "12th Grade - Science"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Execute(context.Background(), input)
	}
}

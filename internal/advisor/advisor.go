// Package advisor runs the full assessment pipeline for one submitted profile.
package advisor

import (
	"time"

	"github.com/google/uuid"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/courses"
	"skillpath-workers/internal/models"
	"skillpath-workers/internal/report"
	"skillpath-workers/internal/roadmap"
	"skillpath-workers/internal/scoring"
)

// Assessment is the complete result shown for one profile.
type Assessment struct {
	ID                   uuid.UUID             `json:"id"`
	CreatedAt            time.Time             `json:"created_at"`
	Profile              models.Profile        `json:"profile"`
	Scores               map[string]int        `json:"scores"`
	Careers              []models.RankedCareer `json:"careers"`
	Courses              []models.Course       `json:"courses"`
	EducationStage       string                `json:"education_stage"`
	AffordabilityApplied bool                  `json:"affordability_applied"`
	TargetCareer         string                `json:"target_career"`
	RoadmapTemplate      string                `json:"roadmap_template"`
	Roadmap              []models.MonthPlan    `json:"roadmap"`
	SkillGap             report.SkillGap       `json:"skill_gap"`
}

type Config struct {
	TopN          int
	SkillGapLimit int
}

// Advisor wires the scoring engine, course selector and roadmap generator
// over one catalog.
type Advisor struct {
	engine    *scoring.Engine
	selector  *courses.Selector
	generator *roadmap.Generator
	config    Config
	now       func() time.Time
}

func New(c *catalog.Catalog, cfg Config) *Advisor {
	if c == nil {
		c = catalog.Default()
	}
	return &Advisor{
		engine:    scoring.NewEngine(c, cfg.TopN),
		selector:  courses.NewSelector(c),
		generator: roadmap.NewGenerator(c),
		config:    cfg,
		now:       time.Now,
	}
}

func (a *Advisor) Engine() *scoring.Engine       { return a.engine }
func (a *Advisor) Selector() *courses.Selector   { return a.selector }
func (a *Advisor) Generator() *roadmap.Generator { return a.generator }

// Assess computes every result for p. The target career is the top ranked
// one; with no careers it is empty and the default roadmap is used.
func (a *Advisor) Assess(p models.Profile) *Assessment {
	ranked := a.engine.Rank(p)
	selection := a.selector.Select(p)

	target := ""
	if len(ranked) > 0 {
		target = ranked[0].Name
	}
	plan := a.generator.Plan(p, target)

	return &Assessment{
		ID:                   uuid.New(),
		CreatedAt:            a.now().UTC(),
		Profile:              p,
		Scores:               a.engine.ScoreAll(p),
		Careers:              ranked,
		Courses:              selection.Courses,
		EducationStage:       selection.Stage.String(),
		AffordabilityApplied: selection.AffordabilityApplied,
		TargetCareer:         target,
		RoadmapTemplate:      plan.Template,
		Roadmap:              plan.Months,
		SkillGap:             report.AnalyzeSkillGap(p, ranked, a.config.SkillGapLimit),
	}
}

// ReportInput adapts an assessment for the report renderer.
func (a *Assessment) ReportInput() report.Input {
	return report.Input{
		Profile:      a.Profile,
		Careers:      a.Careers,
		Courses:      a.Courses,
		TargetCareer: a.TargetCareer,
		Roadmap:      a.Roadmap,
		SkillGap:     a.SkillGap,
	}
}

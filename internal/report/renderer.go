// Package report renders the plain-text career report and the skill gap
// analysis that goes into it.
package report

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

//go:embed report.tmpl
var reportTemplate string

const (
	DefaultTopCareers = 5
	DefaultTopCourses = 5

	careerSkillsShown = 5
	collegesShown     = 3
	dateLayout        = "January 02, 2006"
)

// Action items printed at the end of every report.
var (
	ThisWeek = []string{
		"Research top 3 recommended careers",
		"Connect with professionals on LinkedIn",
		"Start with one free online course",
		"Set up learning schedule",
	}
	ThisMonth = []string{
		"Complete at least 2 beginner courses",
		"Build your first mini-project",
		"Join relevant communities/forums",
		"Create LinkedIn profile if not done",
	}
)

// Input is everything one report is built from.
type Input struct {
	Profile      models.Profile
	Careers      []models.RankedCareer
	Courses      []models.Course
	TargetCareer string
	Roadmap      []models.MonthPlan
	SkillGap     SkillGap
}

type Renderer struct {
	tmpl       *template.Template
	topCareers int
	topCourses int
	now        func() time.Time
}

type Option func(*Renderer)

// WithClock replaces time.Now for the generation date.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

func WithTopCareers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.topCareers = n
		}
	}
}

func WithTopCourses(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.topCourses = n
		}
	}
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	rule := strings.Repeat("━", 63)
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"section": func(title string) string { return rule + "\n" + title + "\n" + rule },
		"rule":    func() string { return rule },
		"divider": func() string { return strings.Repeat("─", 60) },
		"join":    func(items []string) string { return strings.Join(items, ", ") },
	}).Parse(reportTemplate)
	if err != nil {
		return nil, errors.NewReportRenderFailedError(err)
	}

	r := &Renderer{
		tmpl:       tmpl,
		topCareers: DefaultTopCareers,
		topCourses: DefaultTopCourses,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render produces the full text report.
func (r *Renderer) Render(in Input) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, r.view(in)); err != nil {
		return "", errors.NewReportRenderFailedError(err)
	}
	return b.String(), nil
}

type careerView struct {
	Rank   int
	Name   string
	Score  int
	Reason string
	Salary string
	Growth string
	Skills string
}

type courseView struct {
	Rank        int
	Name        string
	Duration    string
	Cost        string
	Description string
	Colleges    string
}

type reportView struct {
	Generated           string
	EducationLevel      string
	AcademicPerformance string
	Interests           string
	TechnicalSkills     string
	SoftSkills          string
	Personality         string
	CareerPriority      string
	Careers             []careerView
	Courses             []courseView
	CurrentSkills       string
	SkillsToDevelop     []string
	Target              string
	Months              []models.MonthPlan
	ThisWeek            []string
	ThisMonth           []string
}

func (r *Renderer) view(in Input) reportView {
	p := in.Profile
	v := reportView{
		Generated:           r.now().Format(dateLayout),
		EducationLevel:      orNA(p.EducationLevel),
		AcademicPerformance: "N/A",
		Interests:           joinOrNone(p.Interests),
		TechnicalSkills:     joinOrNone(p.TechnicalSkills),
		SoftSkills:          joinOrNone(p.SoftSkills),
		Personality:         orNA(p.Personality),
		CareerPriority:      orNA(p.CareerPriority),
		CurrentSkills:       joinOrNone(in.SkillGap.Current),
		SkillsToDevelop:     in.SkillGap.ToDevelop,
		Target:              orNA(in.TargetCareer),
		Months:              in.Roadmap,
		ThisWeek:            ThisWeek,
		ThisMonth:           ThisMonth,
	}
	if p.AcademicPerformance > 0 {
		v.AcademicPerformance = fmt.Sprintf("%d%%", p.AcademicPerformance)
	}

	for i, c := range head(in.Careers, r.topCareers) {
		v.Careers = append(v.Careers, careerView{
			Rank:   i + 1,
			Name:   c.Name,
			Score:  c.Score,
			Reason: c.Reason,
			Salary: c.Salary,
			Growth: c.Growth,
			Skills: strings.Join(head(c.Skills, careerSkillsShown), ", "),
		})
	}
	for i, c := range head(in.Courses, r.topCourses) {
		v.Courses = append(v.Courses, courseView{
			Rank:        i + 1,
			Name:        c.Name,
			Duration:    c.Duration,
			Cost:        c.Cost,
			Description: c.Description,
			Colleges:    strings.Join(head(c.Colleges, collegesShown), ", "),
		})
	}
	return v
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

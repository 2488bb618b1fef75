// Package courses suggests courses or streams for a profile's education stage
// and filters them by monthly budget.
package courses

import (
	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

// Selection is the outcome of one Select call.
type Selection struct {
	Stage   Stage
	Courses []models.Course
	// AffordabilityApplied is false when nothing was affordable and the full
	// candidate list was returned instead.
	AffordabilityApplied bool
}

// selectFunc builds the candidate list for one stage.
type selectFunc func(rules []catalog.CourseRule, p models.Profile) []models.Course

// Selector dispatches on Stage to a selection function over the catalog rules.
type Selector struct {
	catalog  *catalog.Catalog
	dispatch map[Stage]selectFunc
}

func NewSelector(c *catalog.Catalog) *Selector {
	if c == nil {
		c = catalog.Default()
	}
	return &Selector{
		catalog: c,
		dispatch: map[Stage]selectFunc{
			StageAfter10th:         byRules,
			StageAfter12thScience:  byRules,
			StageAfter12thCommerce: fixedList,
			StageAfter12thArts:     byRules,
			StageDiploma:           fixedList,
			StageUndergraduate:     byRules,
			StagePostgraduate:      fixedList,
		},
	}
}

// SelectCourses returns the course list for the profile.
func (s *Selector) SelectCourses(p models.Profile) []models.Course {
	return s.Select(p).Courses
}

// Select classifies the profile, builds candidates and applies the
// affordability filter.
func (s *Selector) Select(p models.Profile) Selection {
	stage := StageOf(p.EducationLevel)
	fn, ok := s.dispatch[stage]
	if !ok {
		return Selection{Stage: stage, Courses: []models.Course{}}
	}

	candidates := fn(s.catalog.CourseRules(stage.String()), p)
	if len(candidates) == 0 {
		return Selection{Stage: stage, Courses: []models.Course{}}
	}

	filtered, applied := FilterAffordable(candidates, p.MonthlyBudget())
	return Selection{Stage: stage, Courses: filtered, AffordabilityApplied: applied}
}

// byRules appends the courses of every matching rule in declaration order.
func byRules(rules []catalog.CourseRule, p models.Profile) []models.Course {
	var out []models.Course
	for _, rule := range rules {
		if matches(rule, p) {
			out = append(out, rule.Courses...)
		}
	}
	return out
}

// fixedList ignores interests and skills.
func fixedList(rules []catalog.CourseRule, _ models.Profile) []models.Course {
	var out []models.Course
	for _, rule := range rules {
		out = append(out, rule.Courses...)
	}
	return out
}

func matches(rule catalog.CourseRule, p models.Profile) bool {
	if rule.Unconditional() {
		return true
	}
	return anyOf(p.Interests, rule.AnyInterests) || anyOf(p.TechnicalSkills, rule.AnySkills)
}

func anyOf(have, triggers []string) bool {
	for _, t := range triggers {
		for _, h := range have {
			if h == t {
				return true
			}
		}
	}
	return false
}

// Package roadmap turns a roadmap template into a personalised six-month plan.
package roadmap

import (
	"fmt"
	"strings"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

const (
	// LowBudgetThreshold is the monthly budget below which paid platforms
	// get a cost-saving hint.
	LowBudgetThreshold = 5000

	MaxResources = 5
)

type budgetHint struct {
	platform string
	hint     string
}

// Checked in order; a resource gets at most one hint.
var budgetHints = []budgetHint{
	{"Coursera", "(Audit for free)"},
	{"Udemy", "(Wait for sales)"},
}

type styleResource struct {
	keyword  string
	resource string
}

// Checked in order against the learning style answer; the first hit wins.
var styleResources = []styleResource{
	{"Visual", "YouTube video tutorials"},
	{"Reading", "eBooks and documentation"},
	{"Hands-on", "Interactive coding platforms"},
}

// Plan is a generated roadmap plus the template that produced it.
type Plan struct {
	Months []models.MonthPlan
	// Template is the career whose template was used, or "default".
	Template string
}

const DefaultTemplate = "default"

type Generator struct {
	catalog *catalog.Catalog
}

func NewGenerator(c *catalog.Catalog) *Generator {
	if c == nil {
		c = catalog.Default()
	}
	return &Generator{catalog: c}
}

// Generate returns exactly six months for targetCareer.
func (g *Generator) Generate(p models.Profile, targetCareer string) []models.MonthPlan {
	return g.Plan(p, targetCareer).Months
}

// Plan is Generate plus the name of the template used. Unknown careers get
// the default template unchanged apart from resource customisation.
func (g *Generator) Plan(p models.Profile, targetCareer string) Plan {
	templates, found := g.catalog.Roadmap(targetCareer)
	used := targetCareer
	if !found {
		used = DefaultTemplate
	}

	weekly := fmt.Sprintf("%d hours/week", p.WeeklyHours())
	budget := p.MonthlyBudget()

	months := make([]models.MonthPlan, len(templates))
	for i, tpl := range templates {
		months[i] = models.MonthPlan{
			Month:     fmt.Sprintf("Month %d: %s", i+1, tpl.Phase),
			Focus:     tpl.Focus,
			Goals:     append([]string(nil), tpl.Goals...),
			Resources: CustomizeResources(tpl.Resources, budget, p.LearningStyle),
			Time:      weekly,
		}
	}
	return Plan{Months: months, Template: used}
}

// CustomizeResources adds budget hints, appends one learning-style resource
// and keeps the first MaxResources entries.
func CustomizeResources(resources []string, budget int, learningStyle string) []string {
	out := make([]string, 0, len(resources)+1)
	for _, r := range resources {
		out = append(out, withBudgetHint(r, budget))
	}

	for _, s := range styleResources {
		if strings.Contains(learningStyle, s.keyword) {
			out = append(out, s.resource)
			break
		}
	}

	if len(out) > MaxResources {
		out = out[:MaxResources]
	}
	return out
}

func withBudgetHint(resource string, budget int) string {
	if budget >= LowBudgetThreshold {
		return resource
	}
	for _, h := range budgetHints {
		if strings.Contains(resource, h.platform) {
			return resource + " " + h.hint
		}
	}
	return resource
}

// internal/roadmap/generator_test.go
package roadmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

func TestGenerate_AlwaysSixMonths(t *testing.T) {
	g := NewGenerator(nil)
	careers := append(catalog.Default().CareerNames(), "", "Unknown Career XYZ")
	styles := append([]string{""}, models.LearningStyles...)

	for _, career := range careers {
		for _, style := range styles {
			for _, budget := range []int{0, 4999, 5000, 50000} {
				p := models.Profile{LearningStyle: style, Budget: models.IntPtr(budget)}
				months := g.Generate(p, career)
				require.Len(t, months, catalog.RoadmapMonths, career)
				for _, m := range months {
					assert.LessOrEqual(t, len(m.Resources), MaxResources)
				}
			}
		}
	}
}

func TestGenerate_SoftwareEngineerHandsOn(t *testing.T) {
	p := models.Profile{
		Budget:        models.IntPtr(10000),
		LearningStyle: "Hands-on (Projects, experiments, practice)",
		TimeAvailable: models.IntPtr(12),
	}

	plan := NewGenerator(nil).Plan(p, "Software Engineer")

	assert.Equal(t, "Software Engineer", plan.Template)
	first := plan.Months[0]
	assert.Equal(t, "Month 1: Foundation", first.Month)
	assert.Equal(t, "12 hours/week", first.Time)
	assert.Equal(t, []string{
		"Coursera Python for Everybody",
		"LeetCode Easy Problems",
		"YouTube CS Dojo",
		"Interactive coding platforms",
	}, first.Resources)

	for _, m := range plan.Months {
		for _, r := range m.Resources {
			assert.NotContains(t, r, "(Wait for sales)")
			assert.NotContains(t, r, "(Audit for free)")
		}
	}
}

func TestGenerate_UnknownCareerUsesDefaultVerbatim(t *testing.T) {
	p := models.Profile{LearningStyle: "Visual (Videos, diagrams, infographics)"}

	plan := NewGenerator(nil).Plan(p, "Unknown Career XYZ")

	assert.Equal(t, DefaultTemplate, plan.Template)
	for i, tpl := range catalog.Default().DefaultRoadmap {
		m := plan.Months[i]
		assert.True(t, strings.HasSuffix(m.Month, ": "+tpl.Phase))
		assert.Equal(t, tpl.Focus, m.Focus)
		assert.Equal(t, tpl.Goals, m.Goals)
	}
	assert.Equal(t, "15 hours/week", plan.Months[0].Time)
}

func TestGenerate_GoalsAreCopies(t *testing.T) {
	months := NewGenerator(nil).Generate(models.Profile{}, "Data Scientist")
	months[0].Goals[0] = "changed"

	tpl, _ := catalog.Default().Roadmap("Data Scientist")
	assert.Equal(t, "Learn Python programming", tpl[0].Goals[0])
}

func TestCustomizeResources(t *testing.T) {
	tests := []struct {
		name      string
		resources []string
		budget    int
		style     string
		expected  []string
	}{
		{
			name:      "low budget hints",
			resources: []string{"Coursera", "edX", "Udemy Java Masterclass"},
			budget:    4999,
			expected:  []string{"Coursera (Audit for free)", "edX", "Udemy Java Masterclass (Wait for sales)"},
		},
		{
			name:      "threshold budget leaves strings alone",
			resources: []string{"Coursera", "Udemy"},
			budget:    5000,
			expected:  []string{"Coursera", "Udemy"},
		},
		{
			name:      "reading style",
			resources: []string{"A"},
			budget:    5000,
			style:     "Reading/Writing (Books, articles, notes)",
			expected:  []string{"A", "eBooks and documentation"},
		},
		{
			name:      "auditory style adds nothing",
			resources: []string{"A"},
			budget:    5000,
			style:     "Auditory (Lectures, podcasts, discussions)",
			expected:  []string{"A"},
		},
		{
			name:      "style resource dropped by truncation",
			resources: []string{"Coursera", "edX", "LinkedIn Learning", "YouTube", "Extra"},
			budget:    0,
			style:     "Visual (Videos, diagrams, infographics)",
			expected:  []string{"Coursera (Audit for free)", "edX", "LinkedIn Learning", "YouTube", "Extra"},
		},
		{
			name:      "four template resources keep the style resource",
			resources: []string{"ADPList", "Behance", "LinkedIn", "Cofolios"},
			budget:    5000,
			style:     "Visual (Videos, diagrams, infographics)",
			expected:  []string{"ADPList", "Behance", "LinkedIn", "Cofolios", "YouTube video tutorials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CustomizeResources(tt.resources, tt.budget, tt.style))
		})
	}
}

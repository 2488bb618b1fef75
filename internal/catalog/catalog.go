// Package catalog holds the career, course and roadmap tables that the
// assessment engine reads. The built-in catalog is returned by Default; a
// JSON file with the same shape can replace it through LoadFile.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

// RoadmapMonths is the number of phases every roadmap template must have.
const RoadmapMonths = 6

// Catalog is read-only once built. Callers must not mutate the slices it returns.
type Catalog struct {
	Careers        []models.CareerRecord    `json:"careers"`
	Courses        map[string][]CourseRule  `json:"courses"`
	Roadmaps       []models.RoadmapTemplate `json:"roadmaps"`
	DefaultRoadmap []models.MonthTemplate   `json:"default_roadmap"`

	careerIndex  map[string]int
	roadmapIndex map[string]int
}

var builtin = mustBuild(&Catalog{
	Careers:        builtinCareers(),
	Courses:        builtinCourses(),
	Roadmaps:       builtinRoadmaps(),
	DefaultRoadmap: builtinDefaultRoadmap(),
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

func mustBuild(c *Catalog) *Catalog {
	if err := c.index(); err != nil {
		panic(err)
	}
	return c
}

// index validates the catalog and builds the name lookups.
func (c *Catalog) index() error {
	c.careerIndex = make(map[string]int, len(c.Careers))
	for i, career := range c.Careers {
		name := strings.TrimSpace(career.Name)
		if name == "" {
			return errors.NewCatalogInvalidError(fmt.Sprintf("career #%d has no name", i+1))
		}
		if _, dup := c.careerIndex[name]; dup {
			return errors.NewCatalogInvalidError(fmt.Sprintf("duplicate career name %q", name))
		}
		c.careerIndex[name] = i
	}

	c.roadmapIndex = make(map[string]int, len(c.Roadmaps))
	for i, tpl := range c.Roadmaps {
		if _, dup := c.roadmapIndex[tpl.Career]; dup {
			return errors.NewCatalogInvalidError(fmt.Sprintf("duplicate roadmap for %q", tpl.Career))
		}
		if len(tpl.Months) != RoadmapMonths {
			return errors.NewCatalogInvalidError(
				fmt.Sprintf("roadmap %q has %d months, want %d", tpl.Career, len(tpl.Months), RoadmapMonths))
		}
		c.roadmapIndex[tpl.Career] = i
	}
	if len(c.DefaultRoadmap) != RoadmapMonths {
		return errors.NewCatalogInvalidError(
			fmt.Sprintf("default roadmap has %d months, want %d", len(c.DefaultRoadmap), RoadmapMonths))
	}

	for branch, rules := range c.Courses {
		for i, rule := range rules {
			for j, course := range rule.Courses {
				if course.Name == "" {
					return errors.NewCatalogInvalidError(
						fmt.Sprintf("course %d of rule %d in branch %q has no name", j+1, i+1, branch))
				}
			}
		}
	}
	return nil
}

// Career looks up a career record by exact name.
func (c *Catalog) Career(name string) (models.CareerRecord, bool) {
	i, ok := c.careerIndex[name]
	if !ok {
		return models.CareerRecord{}, false
	}
	return c.Careers[i], true
}

// CareerNames lists career names in catalog order.
func (c *Catalog) CareerNames() []string {
	names := make([]string, len(c.Careers))
	for i, career := range c.Careers {
		names[i] = career.Name
	}
	return names
}

// Roadmap returns the template for career, or the default template with
// found=false when the career has none.
func (c *Catalog) Roadmap(career string) (months []models.MonthTemplate, found bool) {
	if i, ok := c.roadmapIndex[career]; ok {
		return c.Roadmaps[i].Months, true
	}
	return c.DefaultRoadmap, false
}

// CourseRules returns the rule table for a branch key.
func (c *Catalog) CourseRules(branch string) []CourseRule {
	return c.Courses[branch]
}

// Branches lists the branch keys present, sorted.
func (c *Catalog) Branches() []string {
	out := make([]string, 0, len(c.Courses))
	for k := range c.Courses {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

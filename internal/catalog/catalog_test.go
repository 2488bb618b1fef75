// internal/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

// ==========================
// Built-in Catalog Tests
// ==========================

func TestDefault_Contents(t *testing.T) {
	c := Default()

	assert.Len(t, c.Careers, 15)
	assert.Equal(t, "Software Engineer", c.Careers[0].Name)
	assert.Equal(t, "Architect", c.Careers[len(c.Careers)-1].Name)
	assert.Len(t, c.Roadmaps, 4)
	assert.Len(t, c.DefaultRoadmap, RoadmapMonths)
	assert.Equal(t, []string{
		BranchAfter10th, BranchAfter12thArts, BranchAfter12thCommerce, BranchAfter12thScience,
		BranchDiploma, BranchPostgraduate, BranchUndergraduate,
	}, c.Branches())
}

func TestDefault_CareerNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Default().CareerNames() {
		assert.False(t, seen[name], "duplicate career %s", name)
		seen[name] = true
	}
}

func TestDefault_CareersUseVocabulary(t *testing.T) {
	allSkills := append(append([]string{}, models.TechnicalSkills...), models.SoftSkills...)
	for _, career := range Default().Careers {
		for _, interest := range career.RelatedInterests {
			assert.True(t, models.Contains(models.Interests, interest), "%s: interest %q", career.Name, interest)
		}
		for _, skill := range career.RequiredSkills {
			assert.True(t, models.Contains(allSkills, skill), "%s: skill %q", career.Name, skill)
		}
		assert.Empty(t, career.Benefits, "%s: built-in careers carry no benefits text", career.Name)
	}
}

func TestDefault_CourseCostsAreDisplayable(t *testing.T) {
	for _, branch := range Default().Branches() {
		for _, rule := range Default().CourseRules(branch) {
			for _, course := range rule.Courses {
				assert.True(t, course.CostRange.Priced(), course.Name)
				assert.Equal(t, course.CostRange.String(), course.Cost, course.Name)
			}
		}
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := Default()

	tests := []struct {
		name          string
		career        string
		expectCareer  bool
		expectRoadmap bool
		firstPhase    string
	}{
		{"dedicated template", "Data Scientist", true, true, "Foundation"},
		{"career without template", "Architect", true, false, "Foundation"},
		{"unknown career", "Unknown Career XYZ", false, false, "Foundation"},
		{"template match is exact", "software engineer", false, false, "Foundation"},
		{"ux designer", "UX/UI Designer", true, true, "Design Fundamentals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Career(tt.career)
			assert.Equal(t, tt.expectCareer, ok)

			months, found := c.Roadmap(tt.career)
			assert.Equal(t, tt.expectRoadmap, found)
			require.Len(t, months, RoadmapMonths)
			assert.Equal(t, tt.firstPhase, months[0].Phase)
		})
	}
}

// ==========================
// Loader Tests
// ==========================

func TestParse_ExportRoundTripKeepsTables(t *testing.T) {
	data, err := Default().Export()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Default().CareerNames(), parsed.CareerNames())
	assert.Equal(t, Default().Branches(), parsed.Branches())
	assert.Equal(t, Default().CourseRules(BranchAfter12thCommerce), parsed.CourseRules(BranchAfter12thCommerce))
}

func TestCatalog_Version(t *testing.T) {
	data, err := Default().Export()
	require.NoError(t, err)
	first, err := Parse(data)
	require.NoError(t, err)
	second, err := Parse(data)
	require.NoError(t, err)

	other, err := New([]models.CareerRecord{{Name: "Only Career"}}, nil, nil, nil)
	require.NoError(t, err)

	assert.Len(t, Default().Version(), 16)
	assert.Equal(t, Default().Version(), Default().Version())
	assert.Equal(t, first.Version(), second.Version())
	assert.NotEqual(t, Default().Version(), other.Version())
}

func TestParse_LegacyCostStringIsNormalised(t *testing.T) {
	doc := `{
	  "careers": [{"name": "Nurse", "related_interests": ["Healthcare & Medicine"]}],
	  "courses": {
	    "diploma": [{"courses": [
	      {"name": "GNM Nursing", "cost": "₹1,50,000 - 4,00,000"},
	      {"name": "Community Workshop", "cost": "Free"}
	    ]}]
	  }
	}`

	c, err := Parse([]byte(doc))
	require.NoError(t, err)

	courses := c.CourseRules(BranchDiploma)[0].Courses
	assert.Equal(t, models.INR(150000, 400000), courses[0].CostRange)
	assert.Equal(t, "₹1,50,000 - 4,00,000", courses[0].Cost)
	assert.False(t, courses[1].CostRange.Priced())

	months, found := c.Roadmap("Nurse")
	assert.False(t, found)
	assert.Equal(t, Default().DefaultRoadmap, months)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"careers": [`},
		{"missing careers", `{"courses": {}}`},
		{"career without name", `{"careers": [{"related_interests": []}]}`},
		{"unknown branch", `{"careers": [], "courses": {"phd": []}}`},
		{"short roadmap", `{"careers": [], "roadmaps": [{"career": "X", "months": [{"phase": "a", "focus": "b"}]}]}`},
		{"duplicate career", `{"careers": [{"name": "A"}, {"name": "A"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogInvalid), err.Error())
		})
	}
}

func TestLoad_EmptyPathIsBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"careers": [{"name": "Pilot"}]}`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilot"}, c.CareerNames())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCatalogLoadFailed))
}

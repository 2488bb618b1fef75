// internal/catalog/loader.go
package catalog

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"skillpath-workers/internal/common/errors"
	"skillpath-workers/internal/models"
)

//go:embed schema.json
var schemaJSON []byte

// New builds a catalog from explicit tables. A nil defaultRoadmap falls back
// to the built-in default template.
func New(careers []models.CareerRecord, courses map[string][]CourseRule, roadmaps []models.RoadmapTemplate, defaultRoadmap []models.MonthTemplate) (*Catalog, error) {
	if defaultRoadmap == nil {
		defaultRoadmap = builtinDefaultRoadmap()
	}
	if courses == nil {
		courses = map[string][]CourseRule{}
	}
	c := &Catalog{
		Careers:        careers,
		Courses:        normalizeCourses(courses),
		Roadmaps:       roadmaps,
		DefaultRoadmap: defaultRoadmap,
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load returns the built-in catalog when path is empty, otherwise the file.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a JSON catalog file and validates it against the embedded schema.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError(path, err)
	}
	return Parse(data)
}

// Parse validates and decodes a JSON catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var raw Catalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewCatalogInvalidError(err.Error())
	}
	return New(raw.Careers, raw.Courses, raw.Roadmaps, raw.DefaultRoadmap)
}

// Validate checks a JSON catalog document against the catalog schema only.
func Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.NewCatalogInvalidError(fmt.Sprintf("malformed JSON: %v", err))
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return errors.NewCatalogInvalidError(fmt.Sprintf("schema validation error: %v", err))
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewCatalogInvalidError(strings.Join(errs, "; "))
	}
	return nil
}

// Export renders the catalog as indented JSON accepted by Parse.
func (c *Catalog) Export() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Version is a short content hash of the exported catalog. Two catalogs with
// the same tables share a version.
func (c *Catalog) Version() string {
	data, err := json.Marshal(c)
	if err != nil {
		return "unversioned"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// normalizeCourses fills CostRange from legacy display strings and then
// regenerates the display string from the structured range.
func normalizeCourses(in map[string][]CourseRule) map[string][]CourseRule {
	out := make(map[string][]CourseRule, len(in))
	for branch, rules := range in {
		copied := make([]CourseRule, len(rules))
		for i, rule := range rules {
			copied[i] = rule
			copied[i].Courses = make([]models.Course, len(rule.Courses))
			for j, course := range rule.Courses {
				if !course.CostRange.Priced() {
					if parsed, ok := models.ParseCostRange(course.Cost); ok {
						course.CostRange = parsed
					}
				}
				if course.CostRange.Currency == "" {
					course.CostRange.Currency = models.CurrencyINR
				}
				course.Cost = course.CostRange.String()
				copied[i].Courses[j] = course
			}
		}
		out[branch] = copied
	}
	return out
}

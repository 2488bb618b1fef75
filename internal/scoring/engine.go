// Package scoring computes weighted career scores for a profile and ranks
// the catalog. Every function is total: partial profiles only lower scores.
package scoring

import (
	"sort"
	"strings"

	"skillpath-workers/internal/catalog"
	"skillpath-workers/internal/models"
)

// Component weights. They sum to MaxScore.
const (
	InterestWeight    = 40.0
	SkillWeight       = 20.0
	PersonalityWeight = 20.0
	AcademicWeight    = 20.0

	// Partial credit for a declared but non-matching personality fit, and
	// for an education level that misses every requirement.
	PersonalityPartial = 10.0
	AcademicBaseline   = 10.0

	MaxScore = 100

	DefaultTopN = 10
)

// Engine scores profiles against one catalog.
type Engine struct {
	catalog *catalog.Catalog
	topN    int
}

// NewEngine returns an engine that ranks the top topN careers. topN outside
// 1..DefaultTopN means DefaultTopN.
func NewEngine(c *catalog.Catalog, topN int) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c, topN: clampTopN(topN)}
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ScoreAll maps every career name to its score in [0, 100].
func (e *Engine) ScoreAll(p models.Profile) map[string]int {
	scores := make(map[string]int, len(e.catalog.Careers))
	for _, career := range e.catalog.Careers {
		scores[career.Name] = Score(p, career).Total
	}
	return scores
}

// Breakdown returns the per-component scores for every career, in catalog order.
func (e *Engine) Breakdown(p models.Profile) []models.ScoreBreakdown {
	out := make([]models.ScoreBreakdown, len(e.catalog.Careers))
	for i, career := range e.catalog.Careers {
		out[i] = Score(p, career)
	}
	return out
}

// Rank returns at most topN careers sorted by descending score. Equal
// scores keep catalog order.
func (e *Engine) Rank(p models.Profile) []models.RankedCareer {
	return e.RankN(p, e.topN)
}

// RankN is Rank with an explicit limit, clamped to 1..DefaultTopN.
func (e *Engine) RankN(p models.Profile, n int) []models.RankedCareer {
	n = clampTopN(n)
	careers := e.catalog.Careers
	scored := make([]models.RankedCareer, len(careers))
	for i, career := range careers {
		scored[i] = models.RankedCareer{
			Name:   career.Name,
			Score:  Score(p, career).Total,
			Reason: Reason(p, career),
			Salary: career.SalaryRange,
			Growth: career.GrowthPotential,
			Skills: append([]string(nil), career.RequiredSkills...),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func clampTopN(n int) int {
	if n <= 0 || n > DefaultTopN {
		return DefaultTopN
	}
	return n
}

// Score computes the four weighted components for one career.
func Score(p models.Profile, career models.CareerRecord) models.ScoreBreakdown {
	b := models.ScoreBreakdown{
		Career:      career.Name,
		Interest:    interestScore(p, career),
		Skill:       skillScore(p, career),
		Personality: personalityScore(p, career),
		Academic:    academicScore(p, career),
	}

	total := int(b.Interest + b.Skill + b.Personality + b.Academic)
	if total > MaxScore {
		total = MaxScore
	}
	b.Total = total
	return b
}

func interestScore(p models.Profile, career models.CareerRecord) float64 {
	if len(career.RelatedInterests) == 0 {
		return 0
	}
	matched := len(intersect(p.Interests, career.RelatedInterests))
	return float64(matched) / float64(len(uniq(career.RelatedInterests))) * InterestWeight
}

func skillScore(p models.Profile, career models.CareerRecord) float64 {
	if len(career.RequiredSkills) == 0 {
		return 0
	}
	matched := len(intersect(p.AllSkills(), career.RequiredSkills))
	return float64(matched) / float64(len(uniq(career.RequiredSkills))) * SkillWeight
}

func personalityScore(p models.Profile, career models.CareerRecord) float64 {
	if p.Personality == "" {
		return 0
	}
	personalityType := p.PersonalityType()
	for _, fit := range career.PersonalityFit {
		if fit == personalityType {
			return PersonalityWeight
		}
	}
	if len(career.PersonalityFit) > 0 {
		return PersonalityPartial
	}
	return 0
}

func academicScore(p models.Profile, career models.CareerRecord) float64 {
	if p.EducationLevel == "" {
		return 0
	}
	for _, requirement := range career.EducationRequirements {
		if strings.Contains(p.EducationLevel, requirement) {
			return AcademicWeight
		}
	}
	return AcademicBaseline
}

// intersect returns the distinct members of ref that also appear in have,
// in ref order.
func intersect(have, ref []string) []string {
	held := make(map[string]bool, len(have))
	for _, v := range have {
		held[v] = true
	}
	var out []string
	seen := make(map[string]bool, len(ref))
	for _, v := range ref {
		if held[v] && !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

func uniq(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// internal/models/career.go
package models

// CareerRecord is one entry of the career catalog. Set-valued fields keep
// their declared order, which is also the order used in generated text.
type CareerRecord struct {
	Name                  string   `json:"name"`
	RelatedInterests      []string `json:"related_interests"`
	RequiredSkills        []string `json:"required_skills"`
	PersonalityFit        []string `json:"personality_fit"`
	EducationRequirements []string `json:"education_requirements"`
	SalaryRange           string   `json:"salary_range"`
	GrowthPotential       string   `json:"growth_potential"`
	// Benefits is not populated by the built-in catalog; custom catalogs may
	// set it to enable the social impact reason clause.
	Benefits string `json:"benefits,omitempty"`
}

// RankedCareer is one row of the ranked recommendation list.
type RankedCareer struct {
	Name   string   `json:"name"`
	Score  int      `json:"score"`
	Reason string   `json:"reason"`
	Salary string   `json:"salary"`
	Growth string   `json:"growth"`
	Skills []string `json:"skills"`
}

// ScoreBreakdown holds the four weighted components of one career score.
type ScoreBreakdown struct {
	Career      string  `json:"career"`
	Interest    float64 `json:"interest"`
	Skill       float64 `json:"skill"`
	Personality float64 `json:"personality"`
	Academic    float64 `json:"academic"`
	Total       int     `json:"total"`
}

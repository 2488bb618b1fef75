// internal/report/skillgap.go
package report

import "skillpath-workers/internal/models"

// DefaultSkillGapLimit caps the number of skills to develop.
const DefaultSkillGapLimit = 8

// SkillGap compares the profile's skills with the top career's requirements.
type SkillGap struct {
	Current   []string `json:"current"`
	ToDevelop []string `json:"to_develop"`
}

// AnalyzeSkillGap lists the first career's required skills the profile does
// not already hold, in catalog order, keeping at most limit of them.
// limit <= 0 means DefaultSkillGapLimit.
func AnalyzeSkillGap(p models.Profile, ranked []models.RankedCareer, limit int) SkillGap {
	if limit <= 0 {
		limit = DefaultSkillGapLimit
	}

	gap := SkillGap{Current: p.AllSkills(), ToDevelop: []string{}}
	if len(ranked) == 0 {
		return gap
	}

	held := make(map[string]struct{}, len(gap.Current))
	for _, s := range gap.Current {
		held[s] = struct{}{}
	}
	for _, skill := range ranked[0].Skills {
		if len(gap.ToDevelop) == limit {
			break
		}
		if _, ok := held[skill]; !ok {
			gap.ToDevelop = append(gap.ToDevelop, skill)
		}
	}
	return gap
}

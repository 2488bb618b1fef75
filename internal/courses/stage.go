// internal/courses/stage.go
package courses

import (
	"strings"

	"skillpath-workers/internal/catalog"
)

// Stage is the education stage that decides which course branch applies.
type Stage int

const (
	StageUnknown Stage = iota
	StageAfter10th
	StageAfter12thScience
	StageAfter12thCommerce
	StageAfter12thArts
	StageDiploma
	StageUndergraduate
	StagePostgraduate
)

var stageBranches = map[Stage]string{
	StageAfter10th:         catalog.BranchAfter10th,
	StageAfter12thScience:  catalog.BranchAfter12thScience,
	StageAfter12thCommerce: catalog.BranchAfter12thCommerce,
	StageAfter12thArts:     catalog.BranchAfter12thArts,
	StageDiploma:           catalog.BranchDiploma,
	StageUndergraduate:     catalog.BranchUndergraduate,
	StagePostgraduate:      catalog.BranchPostgraduate,
}

// String returns the catalog branch key, or "unknown".
func (s Stage) String() string {
	if branch, ok := stageBranches[s]; ok {
		return branch
	}
	return "unknown"
}

// StageOf classifies a free-text education level. The checks run in a fixed
// order and the first hit wins, so "12th Grade - Science" never reaches the
// Arts or Diploma checks.
func StageOf(educationLevel string) Stage {
	has := func(s string) bool { return strings.Contains(educationLevel, s) }

	switch {
	case has("10th"):
		return StageAfter10th
	case has("12th") && has("Science"):
		return StageAfter12thScience
	case has("12th") && has("Commerce"):
		return StageAfter12thCommerce
	case has("12th") && has("Arts"):
		return StageAfter12thArts
	case has("Diploma"):
		return StageDiploma
	case has("Undergraduate"):
		return StageUndergraduate
	case has("Postgraduate"):
		return StagePostgraduate
	default:
		return StageUnknown
	}
}

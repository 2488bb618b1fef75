// internal/scoring/reason.go
package scoring

import (
	"fmt"
	"strings"

	"skillpath-workers/internal/models"
)

// FallbackReason is used when no clause applies.
const FallbackReason = "This career matches your overall profile well"

const maxReasonInterests = 2

// Reason explains why a career fits the profile. Matching interests are
// listed in the order the career declares them.
func Reason(p models.Profile, career models.CareerRecord) string {
	var parts []string

	if interests := intersect(p.Interests, career.RelatedInterests); len(interests) > 0 {
		if len(interests) > maxReasonInterests {
			interests = interests[:maxReasonInterests]
		}
		parts = append(parts, fmt.Sprintf("Your interests in %s align perfectly", strings.Join(interests, ", ")))
	}

	if skills := intersect(p.AllSkills(), career.RequiredSkills); len(skills) > 0 {
		parts = append(parts, fmt.Sprintf("you already have %d relevant skills", len(skills)))
	}

	if clause := priorityClause(p.CareerPriority, career); clause != "" {
		parts = append(parts, clause)
	}

	if len(parts) == 0 {
		return FallbackReason
	}
	return strings.Join(parts, ". ")
}

// priorityClause picks at most one clause; the checks run in a fixed order
// and the first whose priority keyword matches decides.
func priorityClause(priority string, career models.CareerRecord) string {
	switch {
	case priority == "":
		return ""
	case strings.Contains(priority, "High Salary") && strings.Contains(career.SalaryRange, "High"):
		return "offers excellent financial growth"
	case strings.Contains(priority, "Work-Life Balance"):
		return "provides good work-life balance"
	case strings.Contains(priority, "Social Impact") && strings.Contains(career.Benefits, "Impact"):
		return "creates meaningful social impact"
	}
	return ""
}

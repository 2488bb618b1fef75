// internal/courses/affordability.go
package courses

import "skillpath-workers/internal/models"

// PaymentMonths spreads the minimum course cost into a monthly figure.
// One-time tuition and subscription prices are treated alike.
const PaymentMonths = 12

// MonthlyCost approximates the monthly outlay for a course.
func MonthlyCost(c models.Course) float64 {
	return float64(c.CostRange.Min) / PaymentMonths
}

// IsAffordable reports whether the monthly cost fits the budget. Unpriced
// courses are always affordable.
func IsAffordable(c models.Course, budget int) bool {
	if !c.CostRange.Priced() {
		return true
	}
	return MonthlyCost(c) <= float64(budget)
}

// FilterAffordable keeps affordable courses in order. When none survive the
// unfiltered list is returned and applied is false.
func FilterAffordable(candidates []models.Course, budget int) (out []models.Course, applied bool) {
	for _, c := range candidates {
		if IsAffordable(c, budget) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return candidates, false
	}
	return out, true
}

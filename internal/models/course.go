// internal/models/course.go
package models

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const CurrencyINR = "INR"

var currencySymbols = map[string]string{
	CurrencyINR: "₹",
	"USD":       "$",
}

// Indian digit grouping: 2,00,000 rather than 200,000.
var costPrinter = message.NewPrinter(language.MustParse("en-IN"))

// CostRange is a course cost in whole currency units.
type CostRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Priced reports whether the range carries any amount. Unpriced courses
// are always considered affordable.
func (c CostRange) Priced() bool {
	return c.Min > 0 || c.Max > 0
}

// String renders the display form, e.g. "₹50,000 - 2,00,000".
func (c CostRange) String() string {
	if !c.Priced() {
		return "Free"
	}
	symbol, ok := currencySymbols[c.Currency]
	if !ok {
		symbol = c.Currency + " "
	}
	low := costPrinter.Sprint(number.Decimal(c.Min))
	if c.Max <= c.Min {
		return symbol + low
	}
	return symbol + low + " - " + costPrinter.Sprint(number.Decimal(c.Max))
}

var costToken = regexp.MustCompile(`\d+`)

// ParseCostRange reads a display string such as "₹5,00,000 - 1,00,00,000".
// Thousands separators are dropped first, then the first and second integer
// tokens become Min and Max. ok is false when no integer is present.
func ParseCostRange(display string) (CostRange, bool) {
	tokens := costToken.FindAllString(strings.ReplaceAll(display, ",", ""), 2)
	if len(tokens) == 0 {
		return CostRange{}, false
	}
	out := CostRange{Currency: CurrencyINR}
	if strings.Contains(display, "$") {
		out.Currency = "USD"
	}
	out.Min, _ = strconv.ParseInt(tokens[0], 10, 64)
	out.Max = out.Min
	if len(tokens) > 1 {
		out.Max, _ = strconv.ParseInt(tokens[1], 10, 64)
	}
	return out, true
}

// Course is a course or stream suggestion. Cost is the display string
// generated from CostRange.
type Course struct {
	Name        string    `json:"name"`
	Duration    string    `json:"duration"`
	Cost        string    `json:"cost"`
	CostRange   CostRange `json:"cost_range"`
	Description string    `json:"description"`
	Colleges    []string  `json:"colleges"`
}

// NewCourse builds a course whose display cost is derived from cost.
func NewCourse(name, duration string, cost CostRange, description string, colleges ...string) Course {
	return Course{
		Name:        name,
		Duration:    duration,
		Cost:        cost.String(),
		CostRange:   cost,
		Description: description,
		Colleges:    colleges,
	}
}

// INR is shorthand for a rupee cost range.
func INR(lo, hi int64) CostRange {
	return CostRange{Min: lo, Max: hi, Currency: CurrencyINR}
}

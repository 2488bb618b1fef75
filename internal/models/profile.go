// internal/models/profile.go
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Profile is a submitted set of assessment answers. Every field is optional:
// scoring treats missing answers as zero credit.
type Profile struct {
	EducationLevel      string   `json:"education_level"`
	StreamDetails       string   `json:"stream_details,omitempty"`
	AcademicPerformance int      `json:"academic_performance,omitempty"`
	Interests           []string `json:"interests"`
	TechnicalSkills     []string `json:"technical_skills"`
	SoftSkills          []string `json:"soft_skills"`
	Personality         string   `json:"personality"`
	LearningStyle       string   `json:"learning_style"`
	WorkEnvironment     string   `json:"work_environment,omitempty"`
	CareerPriority      string   `json:"career_priority"`
	Timeframe           string   `json:"timeframe,omitempty"`
	Budget              *int     `json:"budget,omitempty"`
	TimeAvailable       *int     `json:"time_available,omitempty"`
	LocationPreference  []string `json:"location_preference,omitempty"`
	IndustryInterests   []string `json:"industry_interests,omitempty"`
	Concerns            string   `json:"concerns,omitempty"`
}

// MonthlyBudget returns the learning budget, DefaultBudget when unanswered.
func (p Profile) MonthlyBudget() int {
	if p.Budget == nil {
		return DefaultBudget
	}
	return *p.Budget
}

// WeeklyHours returns the weekly study time, DefaultTimeAvailable when unanswered.
func (p Profile) WeeklyHours() int {
	if p.TimeAvailable == nil {
		return DefaultTimeAvailable
	}
	return *p.TimeAvailable
}

// AllSkills returns technical skills followed by soft skills.
func (p Profile) AllSkills() []string {
	out := make([]string, 0, len(p.TechnicalSkills)+len(p.SoftSkills))
	out = append(out, p.TechnicalSkills...)
	return append(out, p.SoftSkills...)
}

// PersonalityType strips the parenthetical description from the personality
// answer: "Analytical & Logical (I love ...)" becomes "Analytical & Logical".
func (p Profile) PersonalityType() string {
	personality := p.Personality
	if i := strings.Index(personality, "("); i >= 0 {
		personality = personality[:i]
	}
	return strings.TrimSpace(personality)
}

// Fingerprint is a stable hash of the answers, used as a cache key.
func (p Profile) Fingerprint() string {
	data, _ := json.Marshal(p)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Normalized returns a copy with set-valued answers de-duplicated, keeping
// the first occurrence.
func (p Profile) Normalized() Profile {
	out := p.clone()
	out.Interests = dedupe(out.Interests)
	out.TechnicalSkills = dedupe(out.TechnicalSkills)
	out.SoftSkills = dedupe(out.SoftSkills)
	out.LocationPreference = dedupe(out.LocationPreference)
	out.IndustryInterests = dedupe(out.IndustryInterests)
	return out
}

// IntPtr is a small helper for building profiles in code.
func IntPtr(v int) *int {
	return &v
}

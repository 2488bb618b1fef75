// internal/models/builder.go
package models

import (
	"fmt"

	"skillpath-workers/internal/common/errors"
)

// Wizard steps, in the order they must be answered.
const (
	StepEducation = iota + 1
	StepInterestsAndSkills
	StepPersonality
	StepGoals
	StepPreferences

	TotalSteps = StepPreferences
)

// ProfileBuilder accumulates answers across the five questionnaire steps.
// It is a value: every step returns a new builder and leaves the receiver
// untouched, so a caller can keep the previous state for "back" navigation.
type ProfileBuilder struct {
	profile Profile
	step    int
}

// NewProfileBuilder starts a fresh questionnaire at step 1.
func NewProfileBuilder() ProfileBuilder {
	return ProfileBuilder{step: StepEducation}
}

// Step is the step the builder is waiting for. It is TotalSteps+1 once all
// answers are in.
func (b ProfileBuilder) Step() int {
	return b.step
}

// Complete reports whether every step has been answered.
func (b ProfileBuilder) Complete() bool {
	return b.step > TotalSteps
}

// Back moves to the previous step, keeping answers already given.
func (b ProfileBuilder) Back() ProfileBuilder {
	if b.step > StepEducation {
		b.step--
	}
	b.profile = b.profile.clone()
	return b
}

// Education answers step 1.
func (b ProfileBuilder) Education(level, streamDetails string, academicPerformance int) (ProfileBuilder, error) {
	if err := b.expect(StepEducation); err != nil {
		return b, err
	}
	if !Contains(EducationLevels, level) {
		return b, invalid("education_level", level)
	}
	if academicPerformance < MinAcademicPerformance || academicPerformance > MaxAcademicPerformance {
		return b, outOfRange("academic_performance", academicPerformance, MinAcademicPerformance, MaxAcademicPerformance)
	}

	next := b.advance()
	next.profile.EducationLevel = level
	next.profile.StreamDetails = streamDetails
	next.profile.AcademicPerformance = academicPerformance
	return next, nil
}

// InterestsAndSkills answers step 2.
func (b ProfileBuilder) InterestsAndSkills(interests, technicalSkills, softSkills []string) (ProfileBuilder, error) {
	if err := b.expect(StepInterestsAndSkills); err != nil {
		return b, err
	}
	if err := allKnown("interests", Interests, interests); err != nil {
		return b, err
	}
	if err := allKnown("technical_skills", TechnicalSkills, technicalSkills); err != nil {
		return b, err
	}
	if err := allKnown("soft_skills", SoftSkills, softSkills); err != nil {
		return b, err
	}

	next := b.advance()
	next.profile.Interests = dedupe(interests)
	next.profile.TechnicalSkills = dedupe(technicalSkills)
	next.profile.SoftSkills = dedupe(softSkills)
	return next, nil
}

// Personality answers step 3.
func (b ProfileBuilder) Personality(personality, learningStyle, workEnvironment string) (ProfileBuilder, error) {
	if err := b.expect(StepPersonality); err != nil {
		return b, err
	}
	if !Contains(Personalities, personality) {
		return b, invalid("personality", personality)
	}
	if !Contains(LearningStyles, learningStyle) {
		return b, invalid("learning_style", learningStyle)
	}
	if !Contains(WorkEnvironments, workEnvironment) {
		return b, invalid("work_environment", workEnvironment)
	}

	next := b.advance()
	next.profile.Personality = personality
	next.profile.LearningStyle = learningStyle
	next.profile.WorkEnvironment = workEnvironment
	return next, nil
}

// Goals answers step 4.
func (b ProfileBuilder) Goals(careerPriority, timeframe string, budget, timeAvailable int) (ProfileBuilder, error) {
	if err := b.expect(StepGoals); err != nil {
		return b, err
	}
	if !Contains(CareerPriorities, careerPriority) {
		return b, invalid("career_priority", careerPriority)
	}
	if !Contains(Timeframes, timeframe) {
		return b, invalid("timeframe", timeframe)
	}
	if budget < MinBudget || budget > MaxBudget {
		return b, outOfRange("budget", budget, MinBudget, MaxBudget)
	}
	if timeAvailable < MinTimeAvailable || timeAvailable > MaxTimeAvailable {
		return b, outOfRange("time_available", timeAvailable, MinTimeAvailable, MaxTimeAvailable)
	}

	next := b.advance()
	next.profile.CareerPriority = careerPriority
	next.profile.Timeframe = timeframe
	next.profile.Budget = IntPtr(budget)
	next.profile.TimeAvailable = IntPtr(timeAvailable)
	return next, nil
}

// Preferences answers step 5.
func (b ProfileBuilder) Preferences(locations, industries []string, concerns string) (ProfileBuilder, error) {
	if err := b.expect(StepPreferences); err != nil {
		return b, err
	}
	if err := allKnown("location_preference", LocationPreferences, locations); err != nil {
		return b, err
	}
	if err := allKnown("industry_interests", Industries, industries); err != nil {
		return b, err
	}

	next := b.advance()
	next.profile.LocationPreference = dedupe(locations)
	next.profile.IndustryInterests = dedupe(industries)
	next.profile.Concerns = concerns
	return next, nil
}

// Submit returns the finished profile. The builder must have all five steps.
func (b ProfileBuilder) Submit() (Profile, error) {
	if !b.Complete() {
		return Profile{}, errors.NewProfileStepOutOfOrderError(
			fmt.Sprintf("questionnaire incomplete: waiting for step %d of %d", b.step, TotalSteps))
	}
	return b.profile.clone(), nil
}

func (b ProfileBuilder) expect(step int) error {
	if b.step != step {
		return errors.NewProfileStepOutOfOrderError(
			fmt.Sprintf("expected step %d, builder is at step %d", step, b.step))
	}
	return nil
}

func (b ProfileBuilder) advance() ProfileBuilder {
	return ProfileBuilder{profile: b.profile.clone(), step: b.step + 1}
}

func (p Profile) clone() Profile {
	out := p
	out.Interests = cloneStrings(p.Interests)
	out.TechnicalSkills = cloneStrings(p.TechnicalSkills)
	out.SoftSkills = cloneStrings(p.SoftSkills)
	out.LocationPreference = cloneStrings(p.LocationPreference)
	out.IndustryInterests = cloneStrings(p.IndustryInterests)
	if p.Budget != nil {
		out.Budget = IntPtr(*p.Budget)
	}
	if p.TimeAvailable != nil {
		out.TimeAvailable = IntPtr(*p.TimeAvailable)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func allKnown(field string, vocabulary, values []string) error {
	for _, v := range values {
		if !Contains(vocabulary, v) {
			return invalid(field, v)
		}
	}
	return nil
}

func invalid(field, value string) error {
	return errors.NewProfileValidationFailedError(field, fmt.Sprintf("%q is not an accepted answer", value))
}

func outOfRange(field string, value, lo, hi int) error {
	return errors.NewProfileValidationFailedError(field, fmt.Sprintf("%d is outside %d..%d", value, lo, hi))
}

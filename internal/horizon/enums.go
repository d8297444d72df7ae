package horizon

import "strings"

// Stage is the user's stage of life at onboarding time.
type Stage string

const (
	StageFirstYear  Stage = "first_year"
	StageSecondYear Stage = "second_year"
	StageThirdYear  Stage = "third_year"
	StageFinalYear  Stage = "final_year"
	StageGraduate   Stage = "graduate"
)

// ExposureLevel describes how much hands-on experience the user has.
type ExposureLevel string

const (
	ExposureCoursework      ExposureLevel = "coursework"
	ExposureSmallProjects   ExposureLevel = "small_projects"
	ExposureSeriousProjects ExposureLevel = "serious_projects"
	ExposureProfessional    ExposureLevel = "professional"
)

// TimeCommitment is the weekly learning time band declared by the user.
type TimeCommitment string

const (
	TimeUnder5    TimeCommitment = "<5"
	TimeFiveToTen TimeCommitment = "5-10"
	TimeTenTo15   TimeCommitment = "10-15"
	TimeOver15    TimeCommitment = "15+"
)

// SkillLevel is the self-reported proficiency for a single skill.
type SkillLevel string

const (
	SkillAware       SkillLevel = "aware"
	SkillUsedABit    SkillLevel = "used_a_bit"
	SkillComfortable SkillLevel = "comfortable"
)

// EventType identifies what triggered a pipeline run.
type EventType string

const (
	EventOnboardingCompleted EventType = "onboarding_completed"
	EventSkillUpdated        EventType = "skill_updated"
	EventDirectionChanged    EventType = "direction_changed"
	EventCheckIn             EventType = "check_in"
)

// Level is the inferred overall proficiency of the user.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Confidence qualifies how strongly a recommendation is supported.
type Confidence string

const (
	ConfidenceLow      Confidence = "low"
	ConfidenceModerate Confidence = "moderate"
	ConfidenceHigh     Confidence = "high"
)

// Impact ranks how severely a skill gap blocks progress.
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Severity returns a sortable rank with high first.
func (i Impact) Severity() int {
	switch i {
	case ImpactHigh:
		return 0
	case ImpactMedium:
		return 1
	default:
		return 2
	}
}

// Priority ranks how urgently a focus item should be tackled.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// PhaseStatus describes progress of a single roadmap phase.
type PhaseStatus string

const (
	PhaseNotStarted PhaseStatus = "not-started"
	PhaseInProgress PhaseStatus = "in-progress"
	PhaseCompleted  PhaseStatus = "completed"
)

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightOpportunity InsightType = "opportunity"
	InsightRisk        InsightType = "risk"
	InsightTrend       InsightType = "trend"
)

// DisplayName converts a skill identifier like "linear_algebra" into a
// human-readable label ("Linear Algebra").
func DisplayName(skill string) string {
	words := strings.Split(skill, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Capitalize upper-cases the first letter only, used for enum display values.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

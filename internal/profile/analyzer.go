// Package profile turns raw onboarding input into a normalized persona:
// level, aspirational role label, and display-formatted background and
// preferences.
package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/futurehub/horizon/internal/ai"
	"github.com/futurehub/horizon/internal/horizon"
)

// Analyzer is the profile stage strategy. Exactly one implementation is
// selected at construction time; callers never branch on capability presence.
type Analyzer interface {
	Analyze(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error)
}

// RuleBased is the deterministic analyzer.
type RuleBased struct{}

// NewRuleBased creates the deterministic profile analyzer.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Analyze classifies the user from the fixed rule tables below. It cannot
// fail on well-formed input.
func (a *RuleBased) Analyze(_ context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	level := determineLevel(profile.ExposureLevel, profile.Stage)

	learningStyle := "Self-paced"
	if len(profile.LearningPreferences) > 0 {
		learningStyle = profile.LearningPreferences[0]
	}

	currentFocus := "Building expertise"
	if level == horizon.LevelBeginner {
		currentFocus = "Learning fundamentals"
	}

	preferences := horizon.ProfilePreferences{
		LearningStyle: profile.LearningPreferences,
		TimeAvailable: formatTimeCommitment(profile.WeeklyTimeCommitment),
		Goals:         profile.Goals,
	}
	if len(preferences.LearningStyle) == 0 {
		preferences.LearningStyle = []string{"Self-paced"}
	}
	if len(preferences.Goals) == 0 {
		preferences.Goals = []string{"Build skills", "Get opportunities"}
	}

	return &horizon.ProfileAnalysis{
		Name:                profile.Name,
		Role:                inferRole(append(append([]string{}, profile.Interests...), profile.Goals...), profile.ExposureLevel),
		Level:               level,
		NextLevel:           nextLevel(level),
		ProgressToNextLevel: estimateProgress(profile.ExposureLevel, profile.Stage),
		ExposureLevel:       formatExposure(profile.ExposureLevel),
		LearningStyle:       learningStyle,
		Background: horizon.ProfileBackground{
			Education:    formatEducation(profile.Stage, profile.GraduationYear),
			Experience:   formatExposure(profile.ExposureLevel),
			CurrentFocus: currentFocus,
		},
		Preferences: preferences,
	}, nil
}

// Assisted routes the analysis through a text-generation advisor and falls
// back to the deterministic analyzer on any capability failure. The fallback
// is total: a failed advisor call never contributes partial results.
type Assisted struct {
	advisor  ai.ProfileAdvisor
	fallback *RuleBased
	logger   *zap.Logger
}

// NewAssisted wraps the advisor with the rule-based fallback.
func NewAssisted(advisor ai.ProfileAdvisor, logger *zap.Logger) *Assisted {
	return &Assisted{advisor: advisor, fallback: NewRuleBased(), logger: logger}
}

func (a *Assisted) Analyze(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	analysis, err := a.advisor.AnalyzeProfile(ctx, profile)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("profile advisor failed, using rule-based analysis",
				zap.String("user_id", profile.UserID),
				zap.Error(err),
			)
		}
		return a.fallback.Analyze(ctx, profile)
	}
	return analysis, nil
}

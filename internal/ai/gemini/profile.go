// Package gemini implements the optional text-generation advisors on top of
// the Google GenAI API. Responses are structured JSON; anything the parser
// cannot make sense of surfaces as an error so the caller's deterministic
// fallback takes over.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed profile_prompt.md
var profilePromptTemplate string

const defaultMaxLogLength = 200

// ProfileAdvisor infers a persona from onboarding input via Gemini.
type ProfileAdvisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewProfileAdvisor creates the Gemini-backed profile advisor.
func NewProfileAdvisor(generator contentGenerator, log *zap.Logger, maxLogLength int) *ProfileAdvisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &ProfileAdvisor{generator: generator, logger: log, maxLogLen: maxLogLength}
}

type profileResponse struct {
	Role                string                     `json:"role"`
	Level               string                     `json:"level"`
	NextLevel           string                     `json:"nextLevel"`
	ProgressToNextLevel int                        `json:"progressToNextLevel"`
	ExposureLevel       string                     `json:"exposureLevel"`
	LearningStyle       string                     `json:"learningStyle"`
	Background          horizon.ProfileBackground  `json:"background"`
	Preferences         horizon.ProfilePreferences `json:"preferences"`
}

// AnalyzeProfile asks the model for a persona and validates the reply into
// the ProfileAnalysis shape.
func (a *ProfileAdvisor) AnalyzeProfile(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	prompt := renderTemplate(profilePromptTemplate, map[string]string{
		"{{PROFILE_JSON}}": string(payload),
	})

	a.logger.Debug("gemini profile request",
		zap.String("user_id", profile.UserID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini profile response",
		zap.String("user_id", profile.UserID),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	var resp profileResponse
	if err := decodeResponse(raw, &resp); err != nil {
		return nil, err
	}

	level, ok := parseLevel(resp.Level)
	if !ok {
		return nil, fmt.Errorf("gemini returned unknown level %q", resp.Level)
	}
	if resp.Role == "" {
		return nil, fmt.Errorf("gemini response is missing the role")
	}

	analysis := &horizon.ProfileAnalysis{
		Name:                profile.Name,
		Role:                resp.Role,
		Level:               level,
		ProgressToNextLevel: clampScore(resp.ProgressToNextLevel),
		ExposureLevel:       resp.ExposureLevel,
		LearningStyle:       resp.LearningStyle,
		Background:          resp.Background,
		Preferences:         resp.Preferences,
	}
	if next, ok := parseLevel(resp.NextLevel); ok && next != level {
		analysis.NextLevel = next
	}
	return analysis, nil
}

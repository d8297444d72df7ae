package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	aipkg "github.com/futurehub/horizon/internal/ai"
	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/logger"
)

//go:embed career_prompt.md
var careerPromptTemplate string

// CareerAdvisor produces career recommendations via Gemini.
type CareerAdvisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewCareerAdvisor creates the Gemini-backed career advisor.
func NewCareerAdvisor(generator contentGenerator, log *zap.Logger, maxLogLength int) *CareerAdvisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &CareerAdvisor{generator: generator, logger: log, maxLogLen: maxLogLength}
}

type careerResponse struct {
	PrimaryRole  string `json:"primaryRole"`
	MatchScore   int    `json:"matchScore"`
	Reason       string `json:"reason"`
	TimeToReady  string `json:"timeToReady"`
	Alternatives []struct {
		Role       string `json:"role"`
		MatchScore int    `json:"matchScore"`
		Reason     string `json:"reason"`
	} `json:"alternatives"`
}

// RecommendCareer asks the model for a direction and validates the reply
// into the CareerAnalysis shape.
func (a *CareerAdvisor) RecommendCareer(ctx context.Context, req *aipkg.CareerRequest) (*horizon.CareerAnalysis, error) {
	if req == nil || req.Profile == nil || req.Skills == nil {
		return nil, fmt.Errorf("career request requires profile and skill analysis")
	}

	profileJSON, err := json.MarshalIndent(req.Profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}
	skillsJSON, err := json.MarshalIndent(req.Skills, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal skills payload: %w", err)
	}

	prompt := renderTemplate(careerPromptTemplate, map[string]string{
		"{{PROFILE_JSON}}": string(profileJSON),
		"{{SKILLS_JSON}}":  string(skillsJSON),
		"{{INTERESTS}}":    joinOrNone(req.Interests),
		"{{GOALS}}":        joinOrNone(req.Goals),
	})

	a.logger.Debug("gemini career request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini career response",
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	var resp careerResponse
	if err := decodeResponse(raw, &resp); err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.PrimaryRole) == "" {
		return nil, fmt.Errorf("gemini response is missing the primary role")
	}

	analysis := &horizon.CareerAnalysis{
		PrimaryDirection: horizon.CareerMatch{
			Role:        strings.TrimSpace(resp.PrimaryRole),
			MatchScore:  clampScore(resp.MatchScore),
			Reason:      resp.Reason,
			TimeToReady: resp.TimeToReady,
		},
	}

	for _, alt := range resp.Alternatives {
		if len(analysis.AlternativeDirections) == 3 {
			break
		}
		if strings.TrimSpace(alt.Role) == "" {
			continue
		}
		analysis.AlternativeDirections = append(analysis.AlternativeDirections, horizon.CareerMatch{
			Role:       strings.TrimSpace(alt.Role),
			MatchScore: clampScore(alt.MatchScore),
			Reason:     alt.Reason,
		})
	}

	return analysis, nil
}

func renderTemplate(template string, replacements map[string]string) string {
	for placeholder, value := range replacements {
		template = strings.ReplaceAll(template, placeholder, value)
	}
	return template
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	aipkg "github.com/futurehub/horizon/internal/ai"
	"github.com/futurehub/horizon/internal/horizon"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestProfileAdvisorParsesResponse(t *testing.T) {
	stub := &stubGenerator{response: `{
		"role": "Data Science Enthusiast",
		"level": "intermediate",
		"nextLevel": "advanced",
		"progressToNextLevel": 55,
		"exposureLevel": "Built small projects",
		"learningStyle": "Hands-on",
		"background": {"education": "3rd Year", "experience": "Projects", "currentFocus": "ML basics"},
		"preferences": {"learningStyle": ["Hands-on"], "timeAvailable": "5-10 hours/week", "goals": ["Land an ML internship"]}
	}`}
	advisor := NewProfileAdvisor(stub, zap.NewNop(), 0)

	analysis, err := advisor.AnalyzeProfile(context.Background(), horizon.UserProfile{
		UserID: "u1",
		Name:   "Asha",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Name != "Asha" {
		t.Fatalf("name must come from the input, got %s", analysis.Name)
	}
	if analysis.Level != horizon.LevelIntermediate || analysis.NextLevel != horizon.LevelAdvanced {
		t.Fatalf("unexpected levels: %s -> %s", analysis.Level, analysis.NextLevel)
	}
	if analysis.ProgressToNextLevel != 55 {
		t.Fatalf("unexpected progress: %d", analysis.ProgressToNextLevel)
	}
	if !strings.Contains(stub.lastPrompt, `"Asha"`) {
		t.Fatalf("prompt must carry the profile payload")
	}
}

func TestProfileAdvisorRejectsUnknownLevel(t *testing.T) {
	stub := &stubGenerator{response: `{"role": "Some Role", "level": "wizard"}`}
	advisor := NewProfileAdvisor(stub, zap.NewNop(), 0)

	if _, err := advisor.AnalyzeProfile(context.Background(), horizon.UserProfile{UserID: "u1"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestCareerAdvisorParsesCodeFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"primaryRole\": \"Backend Developer\", \"matchScore\": \"85\", \"reason\": \"Strong fundamentals\", \"timeToReady\": \"6 months\", \"alternatives\": [{\"role\": \"Full Stack Developer\", \"matchScore\": 60}]}\n```"}
	advisor := NewCareerAdvisor(stub, zap.NewNop(), 0)

	analysis, err := advisor.RecommendCareer(context.Background(), &aipkg.CareerRequest{
		Profile: &horizon.ProfileAnalysis{Name: "Asha", Level: horizon.LevelBeginner},
		Skills:  &horizon.SkillAnalysis{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.PrimaryDirection.Role != "Backend Developer" {
		t.Fatalf("unexpected primary: %s", analysis.PrimaryDirection.Role)
	}
	// Score arrived as a string and still decodes.
	if analysis.PrimaryDirection.MatchScore != 85 {
		t.Fatalf("unexpected score: %d", analysis.PrimaryDirection.MatchScore)
	}
	if len(analysis.AlternativeDirections) != 1 {
		t.Fatalf("unexpected alternatives: %v", analysis.AlternativeDirections)
	}
}

func TestCareerAdvisorClampsScores(t *testing.T) {
	stub := &stubGenerator{response: `{"primaryRole": "Backend Developer", "matchScore": 180}`}
	advisor := NewCareerAdvisor(stub, zap.NewNop(), 0)

	analysis, err := advisor.RecommendCareer(context.Background(), &aipkg.CareerRequest{
		Profile: &horizon.ProfileAnalysis{},
		Skills:  &horizon.SkillAnalysis{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.PrimaryDirection.MatchScore != 100 {
		t.Fatalf("expected score clamped to 100, got %d", analysis.PrimaryDirection.MatchScore)
	}
}

func TestCareerAdvisorPropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("deadline exceeded")}
	advisor := NewCareerAdvisor(stub, zap.NewNop(), 0)

	_, err := advisor.RecommendCareer(context.Background(), &aipkg.CareerRequest{
		Profile: &horizon.ProfileAnalysis{},
		Skills:  &horizon.SkillAnalysis{},
	})
	if err == nil {
		t.Fatalf("expected generator error to surface")
	}
}

func TestDecodeResponseRejectsGarbage(t *testing.T) {
	var out careerResponse
	if err := decodeResponse("the user should become a plumber", &out); err == nil {
		t.Fatalf("expected parse error for non-JSON output")
	}
}

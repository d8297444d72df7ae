package profile

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/futurehub/horizon/internal/horizon"
)

func TestAnalyzeProfessionalIsAdvanced(t *testing.T) {
	analyzer := NewRuleBased()

	analysis, err := analyzer.Analyze(context.Background(), horizon.UserProfile{
		UserID:               "u1",
		Name:                 "Asha",
		Stage:                horizon.StageGraduate,
		ExposureLevel:        horizon.ExposureProfessional,
		WeeklyTimeCommitment: horizon.TimeOver15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.Level != horizon.LevelAdvanced {
		t.Fatalf("expected advanced level, got %s", analysis.Level)
	}
	if analysis.NextLevel != "" {
		t.Fatalf("expected no next level for advanced, got %s", analysis.NextLevel)
	}
	if analysis.Role != "Software Engineer" {
		t.Fatalf("unexpected role: %s", analysis.Role)
	}
}

func TestDetermineLevelTable(t *testing.T) {
	cases := []struct {
		exposure horizon.ExposureLevel
		stage    horizon.Stage
		want     horizon.Level
	}{
		{horizon.ExposureCoursework, horizon.StageFirstYear, horizon.LevelBeginner},
		{horizon.ExposureSmallProjects, horizon.StageFirstYear, horizon.LevelBeginner},
		{horizon.ExposureSmallProjects, horizon.StageThirdYear, horizon.LevelIntermediate},
		{horizon.ExposureSmallProjects, horizon.StageGraduate, horizon.LevelIntermediate},
		{horizon.ExposureSeriousProjects, horizon.StageSecondYear, horizon.LevelIntermediate},
		{horizon.ExposureProfessional, horizon.StageFirstYear, horizon.LevelAdvanced},
	}

	for _, tc := range cases {
		if got := determineLevel(tc.exposure, tc.stage); got != tc.want {
			t.Fatalf("determineLevel(%s, %s) = %s, want %s", tc.exposure, tc.stage, got, tc.want)
		}
	}
}

func TestInferRolePrecedence(t *testing.T) {
	// The ml rule outranks the data rule even when both keywords appear.
	role := inferRole([]string{"data engineering", "machine learning"}, horizon.ExposureCoursework)
	if role != "Aspiring ML Engineer" {
		t.Fatalf("expected ml rule to win, got %s", role)
	}

	role = inferRole([]string{"gardening"}, horizon.ExposureCoursework)
	if role != "Aspiring Software Developer" {
		t.Fatalf("expected generic fallback, got %s", role)
	}
}

func TestEstimateProgressLateStageBoost(t *testing.T) {
	base := estimateProgress(horizon.ExposureSeriousProjects, horizon.StageFirstYear)
	boosted := estimateProgress(horizon.ExposureSeriousProjects, horizon.StageFinalYear)
	if boosted != base+15 {
		t.Fatalf("expected +15 boost for final year, got %d -> %d", base, boosted)
	}

	if got := estimateProgress(horizon.ExposureProfessional, horizon.StageThirdYear); got != 95 {
		t.Fatalf("expected progress capped at 95, got %d", got)
	}
}

type failingAdvisor struct{}

func (failingAdvisor) AnalyzeProfile(context.Context, horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	return nil, errors.New("capability unavailable")
}

func TestAssistedFallsBackOnAdvisorFailure(t *testing.T) {
	analyzer := NewAssisted(failingAdvisor{}, zap.NewNop())

	analysis, err := analyzer.Analyze(context.Background(), horizon.UserProfile{
		UserID:        "u1",
		Name:          "Ravi",
		Stage:         horizon.StageSecondYear,
		ExposureLevel: horizon.ExposureCoursework,
		Interests:     []string{"backend"},
	})
	if err != nil {
		t.Fatalf("fallback must absorb the capability failure, got %v", err)
	}
	if analysis.Level != horizon.LevelBeginner {
		t.Fatalf("expected rule-based result, got level %s", analysis.Level)
	}
	if analysis.Role != "Aspiring Backend Developer" {
		t.Fatalf("unexpected role: %s", analysis.Role)
	}
}

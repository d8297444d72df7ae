// Package ai defines the optional text-generation capability consumed by the
// profile and career stages. Implementations must return the structured
// output shapes of the deterministic analyzers; any error or malformed
// response is treated as a capability failure and recovered by the caller's
// rule-based fallback.
package ai

import (
	"context"

	"github.com/futurehub/horizon/internal/horizon"
)

// ProfileAdvisor infers a persona from raw onboarding input.
type ProfileAdvisor interface {
	AnalyzeProfile(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error)
}

// CareerRequest is the structured input for a career recommendation.
type CareerRequest struct {
	Profile   *horizon.ProfileAnalysis
	Skills    *horizon.SkillAnalysis
	Interests []string
	Goals     []string
}

// CareerAdvisor produces a full career analysis for the request.
type CareerAdvisor interface {
	RecommendCareer(ctx context.Context, req *CareerRequest) (*horizon.CareerAnalysis, error)
}

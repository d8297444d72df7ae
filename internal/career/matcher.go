// Package career scores catalog roles against the user's skills and
// interests and produces the primary and alternative career matches.
package career

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/futurehub/horizon/internal/ai"
	"github.com/futurehub/horizon/internal/horizon"
)

const (
	requiredWeight = 70.0
	helpfulWeight  = 30.0

	// Candidate roles matched from explicit interests get a flat bonus.
	interestBonus = 20

	// Non-candidate roles become alternatives only above this score.
	alternativeThreshold = 30

	maxAlternatives = 3
)

// Recommender is the career stage strategy.
type Recommender interface {
	Recommend(ctx context.Context, req *ai.CareerRequest) (*horizon.CareerAnalysis, error)
}

// Matcher is the deterministic recommender over the static catalog.
type Matcher struct {
	catalog *Catalog
}

// NewMatcher creates the rule-based career matcher.
func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// MatchScore scores one role for the given skill sets: required skills carry
// 70 points split evenly, helpful skills 30, with half credit for
// in-progress skills. The result is the integer floor of the sum, in [0,100].
func MatchScore(role *Role, completed, inProgress []string) int {
	completedSet := toSet(completed)
	inProgressSet := toSet(inProgress)

	score := skillCredit(role.Required, requiredWeight, completedSet, inProgressSet) +
		skillCredit(role.Helpful, helpfulWeight, completedSet, inProgressSet)

	return int(score)
}

func skillCredit(skills []string, weight float64, completed, inProgress map[string]bool) float64 {
	if len(skills) == 0 {
		return 0
	}
	perSkill := weight / float64(len(skills))

	total := 0.0
	for _, skill := range skills {
		switch {
		case completed[skill]:
			total += perSkill
		case inProgress[skill]:
			total += perSkill / 2
		}
	}
	return total
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	return set
}

// Recommend produces the career analysis: candidate roles from interest
// keywords (with the backend/fullstack default), full-catalog scoring, the
// +20 candidate bonus, score-descending ordering with stable catalog order
// on ties, and the primary's market insights and time-to-ready attached.
func (m *Matcher) Recommend(_ context.Context, req *ai.CareerRequest) (*horizon.CareerAnalysis, error) {
	if req == nil || req.Profile == nil || req.Skills == nil {
		return nil, fmt.Errorf("career recommendation requires profile and skill analysis")
	}

	interests := req.Interests
	if len(interests) == 0 {
		interests = req.Profile.Preferences.Goals
	}

	candidates := m.candidateRoles(interests, req.Goals)

	type scoredRole struct {
		role  *Role
		score int
	}

	var scored []scoredRole
	for i := range m.catalog.roles {
		role := &m.catalog.roles[i]
		score := MatchScore(role, req.Skills.SkillsCompleted, req.Skills.SkillsInProgress)
		if candidates[role.Key] {
			score = min(100, score+interestBonus)
		} else if score < alternativeThreshold {
			continue
		}
		scored = append(scored, scoredRole{role: role, score: score})
	}

	// Stable sort keeps catalog order inside equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) == 0 {
		fallback, ok := m.catalog.ByKey("backend_developer")
		if !ok {
			return nil, fmt.Errorf("catalog is missing the backend_developer fallback role")
		}
		scored = append(scored, scoredRole{role: fallback, score: 40})
	}

	primaryRole := scored[0].role
	reason := fmt.Sprintf("Based on your interest in %s", req.Profile.Role)
	if len(interests) > 0 {
		limit := min(2, len(interests))
		reason = fmt.Sprintf("Based on your interest in %s", strings.Join(interests[:limit], ", "))
	}

	analysis := &horizon.CareerAnalysis{
		PrimaryDirection: horizon.CareerMatch{
			Role:        primaryRole.Title,
			MatchScore:  scored[0].score,
			Reason:      reason,
			TimeToReady: primaryRole.ReadyIn(req.Profile.Level),
		},
		MarketInsights: &primaryRole.Market,
	}

	for _, entry := range scored[1:] {
		if len(analysis.AlternativeDirections) == maxAlternatives {
			break
		}
		analysis.AlternativeDirections = append(analysis.AlternativeDirections, horizon.CareerMatch{
			Role:       entry.role.Title,
			MatchScore: entry.score,
			Reason:     "Matches your interest in related areas",
		})
	}

	return analysis, nil
}

// candidateRoles resolves the interest/goal text to catalog keys by keyword
// containment, defaulting to the backend and fullstack roles.
func (m *Matcher) candidateRoles(interests, goals []string) map[string]bool {
	var words []string
	for _, w := range append(append([]string{}, interests...), goals...) {
		words = append(words, strings.ToLower(w))
	}
	text := strings.Join(words, " ")

	matched := map[string]bool{}
	for i := range m.catalog.roles {
		if m.catalog.roles[i].MatchesKeywords(text) {
			matched[m.catalog.roles[i].Key] = true
		}
	}

	if len(matched) == 0 {
		matched["backend_developer"] = true
		matched["fullstack_developer"] = true
	}
	return matched
}

// Assisted routes the recommendation through a text-generation advisor with
// a wholesale fallback: any capability failure reruns the deterministic
// matcher, never a partial merge.
type Assisted struct {
	advisor  ai.CareerAdvisor
	fallback *Matcher
	logger   *zap.Logger
}

// NewAssisted wraps the advisor with the deterministic fallback.
func NewAssisted(advisor ai.CareerAdvisor, catalog *Catalog, logger *zap.Logger) *Assisted {
	return &Assisted{advisor: advisor, fallback: NewMatcher(catalog), logger: logger}
}

func (a *Assisted) Recommend(ctx context.Context, req *ai.CareerRequest) (*horizon.CareerAnalysis, error) {
	analysis, err := a.advisor.RecommendCareer(ctx, req)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("career advisor failed, using rule-based matching", zap.Error(err))
		}
		return a.fallback.Recommend(ctx, req)
	}

	// Attach the static market entry when the advisor named a catalog role.
	if analysis.MarketInsights == nil {
		if role, ok := a.fallback.catalog.ByTitle(analysis.PrimaryDirection.Role); ok {
			analysis.MarketInsights = &role.Market
		}
	}
	return analysis, nil
}

// Package synthesis assembles the final HorizonOutput from the three
// upstream analyses. Every builder is a deterministic mapping; the only
// ambient input is the clock stamping generatedAt.
package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/skillgraph"
)

const outputVersion = "1.1"

const focusTimeWindow = "Next 30 days"

// Synthesizer builds the complete user-facing output record.
type Synthesizer struct {
	graph *skillgraph.Graph
	now   func() time.Time
}

// New creates a synthesizer reading roadmap material from the given graph.
func New(graph *skillgraph.Graph) *Synthesizer {
	return &Synthesizer{graph: graph, now: time.Now}
}

// Synthesize assembles the output for one user from the cached analyses.
func (s *Synthesizer) Synthesize(_ context.Context, userID string, profile *horizon.ProfileAnalysis, skills *horizon.SkillAnalysis, career *horizon.CareerAnalysis) (*horizon.HorizonOutput, error) {
	focus := buildImmediateFocus(skills)

	roles := career.CandidateRoles()
	roadmaps := make([]horizon.Roadmap, 0, len(roles))
	for _, role := range roles {
		roadmaps = append(roadmaps, buildRoadmap(s.graph, role.Role, skills))
	}
	primaryRoadmap := &roadmaps[0]

	interests := buildActiveInterests(career, primaryRoadmap)

	return &horizon.HorizonOutput{
		Version:         outputVersion,
		GeneratedAt:     s.now().UTC().Format(time.RFC3339),
		UserID:          userID,
		Profile:         buildProfileSection(profile),
		Stats:           buildStats(skills, interests, primaryRoadmap),
		DailyInsight:    dailyInsight(),
		CareerDirection: buildCareerDirection(career),
		ImmediateFocus:  focus,
		SkillsSnapshot:  buildSkillsSnapshot(skills),
		ActiveInterests: interests,
		NextAction:      actionForFocus(focus),
		RecentActivity:  buildRecentActivity(skills),
		Insights:        buildInsights(skills, career),
		Roadmaps:        roadmaps,
	}, nil
}

func buildProfileSection(profile *horizon.ProfileAnalysis) horizon.ProfileSection {
	return horizon.ProfileSection{
		Name:                profile.Name,
		Role:                profile.Role,
		Level:               horizon.Capitalize(string(profile.Level)),
		NextLevel:           horizon.Capitalize(string(profile.NextLevel)),
		ProgressToNextLevel: profile.ProgressToNextLevel,
		ExposureLevel:       profile.ExposureLevel,
		LearningStyle:       profile.LearningStyle,
	}
}

func buildCareerDirection(career *horizon.CareerAnalysis) horizon.CareerDirection {
	primary := career.PrimaryDirection

	confidence := horizon.ConfidenceLow
	switch {
	case primary.MatchScore >= 70:
		confidence = horizon.ConfidenceHigh
	case primary.MatchScore >= 50:
		confidence = horizon.ConfidenceModerate
	}

	var secondary []string
	for i, alt := range career.AlternativeDirections {
		if i == 2 {
			break
		}
		secondary = append(secondary, alt.Role)
	}

	reasoning := primary.Reason
	if reasoning == "" {
		reasoning = fmt.Sprintf("Based on your skills and interests, %s aligns with your trajectory.", primary.Role)
	}

	return horizon.CareerDirection{
		PrimaryRole:    primary.Role,
		SecondaryRoles: secondary,
		MatchScore:     primary.MatchScore,
		Confidence:     confidence,
		Reasoning:      reasoning,
	}
}

// buildImmediateFocus picks the single skill to work on now: the top gap,
// else the first in-progress skill, else a fundamentals default.
func buildImmediateFocus(skills *horizon.SkillAnalysis) horizon.ImmediateFocus {
	if len(skills.Gaps) > 0 {
		top := skills.Gaps[0]
		priority := horizon.PriorityMedium
		if top.Impact == horizon.ImpactHigh {
			priority = horizon.PriorityHigh
		}
		return horizon.ImmediateFocus{
			Skill:      horizon.DisplayName(top.Skill),
			Reason:     top.Reason,
			TimeWindow: focusTimeWindow,
			Priority:   priority,
		}
	}
	if len(skills.SkillsInProgress) > 0 {
		return horizon.ImmediateFocus{
			Skill:      horizon.DisplayName(skills.SkillsInProgress[0]),
			Reason:     "Continue building proficiency",
			TimeWindow: focusTimeWindow,
			Priority:   horizon.PriorityMedium,
		}
	}
	return horizon.ImmediateFocus{
		Skill:      "Programming Fundamentals",
		Reason:     "Foundation for all technical paths",
		TimeWindow: focusTimeWindow,
		Priority:   horizon.PriorityHigh,
	}
}

func buildSkillsSnapshot(skills *horizon.SkillAnalysis) horizon.SkillsSnapshotView {
	var gaps []horizon.SkillGapView
	for i, gap := range skills.Gaps {
		if i == 4 {
			break
		}
		gaps = append(gaps, horizon.SkillGapView{
			Skill:  horizon.DisplayName(gap.Skill),
			Impact: string(gap.Impact),
			Reason: gap.Reason,
		})
	}
	return horizon.SkillsSnapshotView{
		Completed:  displayNames(skills.SkillsCompleted),
		InProgress: displayNames(skills.SkillsInProgress),
		Planned:    displayNames(skills.SkillsPlanned),
		Gaps:       gaps,
	}
}

func displayNames(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = horizon.DisplayName(s)
	}
	return out
}

// buildActiveInterests emits one interest per candidate role. The primary
// entry carries its match score as progress and the count of roadmap skills
// still open; alternates are planned placeholders.
func buildActiveInterests(career *horizon.CareerAnalysis, primaryRoadmap *horizon.Roadmap) []horizon.ActiveInterest {
	primary := career.PrimaryDirection

	remaining := 0
	for _, phase := range primaryRoadmap.Phases {
		for _, skill := range phase.Skills {
			if skill.Status != string(horizon.PhaseCompleted) {
				remaining++
			}
		}
	}
	if remaining == 0 && primaryRoadmap.OverallProgress < 100 {
		remaining = 4
	}

	title, color := interestForRole(primary.Role)
	interests := []horizon.ActiveInterest{{
		ID:               interestID(primary.Role),
		Title:            title,
		Progress:         primary.MatchScore,
		Status:           "Active",
		Color:            color,
		ModulesRemaining: remaining,
		Icon:             interestIcon,
	}}

	for i, alt := range career.AlternativeDirections {
		if i == 2 {
			break
		}
		title, color := interestForRole(alt.Role)
		interests = append(interests, horizon.ActiveInterest{
			ID:               interestID(alt.Role),
			Title:            title,
			Progress:         0,
			Status:           "Planned",
			Color:            color,
			ModulesRemaining: 4,
			Icon:             interestIcon,
		})
	}
	return interests
}

func interestID(role string) string {
	return strings.ReplaceAll(strings.ToLower(role), " ", "-")
}

// buildInsights emits up to three observations in fixed order: opportunity,
// risk, trend. Each one only appears when its trigger holds.
func buildInsights(skills *horizon.SkillAnalysis, career *horizon.CareerAnalysis) []horizon.Insight {
	var insights []horizon.Insight

	if len(skills.SkillsCompleted) > 0 {
		strengths := displayNames(skills.SkillsCompleted)
		if len(strengths) > 2 {
			strengths = strengths[:2]
		}
		insights = append(insights, horizon.Insight{
			Type: horizon.InsightOpportunity,
			Message: fmt.Sprintf("Your %s skills position you well for %s. Focus on filling gaps next.",
				strings.Join(strengths, ", "), career.PrimaryDirection.Role),
			Confidence: horizon.ConfidenceHigh,
		})
	}

	if len(skills.Gaps) > 0 {
		top := skills.Gaps[0]
		blocked := "advanced topics"
		if len(top.BlockedSkills) > 0 {
			names := displayNames(top.BlockedSkills)
			if len(names) > 2 {
				names = names[:2]
			}
			blocked = strings.Join(names, ", ")
		}
		insights = append(insights, horizon.Insight{
			Type: horizon.InsightRisk,
			Message: fmt.Sprintf("Skipping %s will create gaps in %s.",
				horizon.DisplayName(top.Skill), blocked),
			Confidence: horizon.ConfidenceHigh,
		})
	}

	if len(skills.EmergingSkills) > 0 {
		emerging := skills.EmergingSkills[0]
		insights = append(insights, horizon.Insight{
			Type:       horizon.InsightTrend,
			Message:    fmt.Sprintf("%s is emerging fast. %s", emerging.Skill, emerging.Reason),
			Confidence: horizon.ConfidenceModerate,
		})
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

func buildStats(skills *horizon.SkillAnalysis, interests []horizon.ActiveInterest, primaryRoadmap *horizon.Roadmap) horizon.Stats {
	hours := len(skills.SkillsCompleted)*15 + len(skills.SkillsInProgress)*5
	if hours == 0 {
		hours = 2
	}
	return horizon.Stats{
		SkillsLearned:     len(skills.SkillsCompleted),
		LearningHours:     hours,
		RoadmapCompletion: primaryRoadmap.OverallProgress,
		DomainsExplored:   len(interests),
	}
}

func dailyInsight() horizon.DailyInsight {
	return horizon.DailyInsight{
		Message: "Consistency is the only algorithm that matters.",
		Type:    "motivation",
	}
}

// buildRecentActivity derives a small feed from the snapshot: the latest
// completion, the latest start, or a joined marker for brand-new users.
func buildRecentActivity(skills *horizon.SkillAnalysis) []horizon.ActivityItem {
	var activity []horizon.ActivityItem

	if len(skills.SkillsCompleted) > 0 {
		activity = append(activity, horizon.ActivityItem{
			ID:    uuid.NewString(),
			Title: "Completed " + horizon.DisplayName(skills.SkillsCompleted[0]),
			Time:  "2 hours ago",
			XP:    50,
		})
	}
	if len(skills.SkillsInProgress) > 0 {
		activity = append(activity, horizon.ActivityItem{
			ID:    uuid.NewString(),
			Title: "Started " + horizon.DisplayName(skills.SkillsInProgress[0]),
			Time:  "Yesterday",
			XP:    0,
		})
	}
	if len(activity) == 0 {
		activity = append(activity, horizon.ActivityItem{
			ID:    uuid.NewString(),
			Title: "Joined FutureHub",
			Time:  "Just now",
			XP:    10,
		})
	}
	return activity
}

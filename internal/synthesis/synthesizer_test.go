package synthesis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/skillgraph"
)

func testProfileAnalysis() *horizon.ProfileAnalysis {
	return &horizon.ProfileAnalysis{
		Name:                "Asha",
		Role:                "Aspiring Software Developer",
		Level:               horizon.LevelBeginner,
		NextLevel:           horizon.LevelIntermediate,
		ProgressToNextLevel: 40,
		ExposureLevel:       "Small Projects",
		LearningStyle:       "Self-paced",
	}
}

func testSkillAnalysis() *horizon.SkillAnalysis {
	return &horizon.SkillAnalysis{
		SkillsCompleted:  []string{"python", "git"},
		SkillsInProgress: []string{"statistics"},
		SkillsPlanned:    []string{"machine_learning"},
		Gaps: []horizon.SkillGap{
			{Skill: "linear_algebra", Impact: horizon.ImpactHigh, Reason: "Needed for machine_learning", BlockedSkills: []string{"machine_learning", "deep_learning"}},
			{Skill: "math_basics", Impact: horizon.ImpactMedium, Reason: "Needed for statistics"},
		},
		Strengths: []string{"Python", "Git"},
		EmergingSkills: []horizon.EmergingSkill{
			{Skill: "Prompt Engineering", Relevance: "high", Reason: "Core skill for AI-native workflows."},
		},
	}
}

func testCareerAnalysis() *horizon.CareerAnalysis {
	return &horizon.CareerAnalysis{
		PrimaryDirection: horizon.CareerMatch{Role: "ML Engineer", MatchScore: 75, Reason: "Based on your interest in machine learning", TimeToReady: "12-18 months"},
		AlternativeDirections: []horizon.CareerMatch{
			{Role: "Data Scientist", MatchScore: 60},
			{Role: "Backend Developer", MatchScore: 45},
			{Role: "DevOps Engineer", MatchScore: 32},
		},
	}
}

func newTestSynthesizer(t *testing.T) *Synthesizer {
	t.Helper()
	s := New(skillgraph.Default())
	s.now = func() time.Time { return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC) }
	return s
}

func TestSynthesizeOutputEnvelope(t *testing.T) {
	s := newTestSynthesizer(t)

	out, err := s.Synthesize(context.Background(), "u1", testProfileAnalysis(), testSkillAnalysis(), testCareerAnalysis())
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if out.Version != "1.1" {
		t.Errorf("version = %q", out.Version)
	}
	if out.GeneratedAt != "2026-03-14T09:30:00Z" {
		t.Errorf("generatedAt = %q", out.GeneratedAt)
	}
	if out.UserID != "u1" {
		t.Errorf("userId = %q", out.UserID)
	}
	if out.Profile.Level != "Beginner" || out.Profile.NextLevel != "Intermediate" {
		t.Errorf("profile levels = %q/%q", out.Profile.Level, out.Profile.NextLevel)
	}
	// One roadmap per candidate role: primary plus at most two alternatives.
	if len(out.Roadmaps) != 3 {
		t.Fatalf("roadmaps = %d, want 3", len(out.Roadmaps))
	}
	if out.Roadmaps[0].Title != "ML Engineer" {
		t.Errorf("primary roadmap title = %q", out.Roadmaps[0].Title)
	}
}

func TestCareerDirectionConfidence(t *testing.T) {
	cases := []struct {
		score int
		want  horizon.Confidence
	}{
		{95, horizon.ConfidenceHigh},
		{70, horizon.ConfidenceHigh},
		{69, horizon.ConfidenceModerate},
		{50, horizon.ConfidenceModerate},
		{49, horizon.ConfidenceLow},
		{0, horizon.ConfidenceLow},
	}
	for _, tc := range cases {
		career := &horizon.CareerAnalysis{PrimaryDirection: horizon.CareerMatch{Role: "Backend Developer", MatchScore: tc.score}}
		if got := buildCareerDirection(career).Confidence; got != tc.want {
			t.Errorf("score %d: confidence = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestCareerDirectionSecondaryRolesAndReasoning(t *testing.T) {
	direction := buildCareerDirection(testCareerAnalysis())
	if len(direction.SecondaryRoles) != 2 {
		t.Fatalf("secondary roles = %v, want first 2 alternatives", direction.SecondaryRoles)
	}
	if direction.SecondaryRoles[0] != "Data Scientist" || direction.SecondaryRoles[1] != "Backend Developer" {
		t.Errorf("secondary roles = %v", direction.SecondaryRoles)
	}

	noReason := &horizon.CareerAnalysis{PrimaryDirection: horizon.CareerMatch{Role: "Backend Developer", MatchScore: 55}}
	if got := buildCareerDirection(noReason).Reasoning; !strings.Contains(got, "Backend Developer") {
		t.Errorf("fallback reasoning = %q", got)
	}
}

func TestImmediateFocusFallbackChain(t *testing.T) {
	withGaps := testSkillAnalysis()
	focus := buildImmediateFocus(withGaps)
	if focus.Skill != "Linear Algebra" || focus.Priority != horizon.PriorityHigh {
		t.Errorf("gap focus = %+v", focus)
	}

	mediumGap := &horizon.SkillAnalysis{Gaps: []horizon.SkillGap{{Skill: "git", Impact: horizon.ImpactMedium, Reason: "r"}}}
	if got := buildImmediateFocus(mediumGap).Priority; got != horizon.PriorityMedium {
		t.Errorf("medium gap priority = %q", got)
	}

	inProgressOnly := &horizon.SkillAnalysis{SkillsInProgress: []string{"react"}}
	focus = buildImmediateFocus(inProgressOnly)
	if focus.Skill != "React" || focus.Priority != horizon.PriorityMedium {
		t.Errorf("in-progress focus = %+v", focus)
	}

	empty := &horizon.SkillAnalysis{}
	focus = buildImmediateFocus(empty)
	if focus.Skill != "Programming Fundamentals" || focus.Priority != horizon.PriorityHigh {
		t.Errorf("default focus = %+v", focus)
	}
}

func TestSkillsSnapshotCapsGaps(t *testing.T) {
	analysis := &horizon.SkillAnalysis{
		SkillsCompleted: []string{"html_css"},
		Gaps: []horizon.SkillGap{
			{Skill: "a", Impact: horizon.ImpactHigh}, {Skill: "b", Impact: horizon.ImpactHigh},
			{Skill: "c", Impact: horizon.ImpactMedium}, {Skill: "d", Impact: horizon.ImpactMedium},
			{Skill: "e", Impact: horizon.ImpactMedium},
		},
	}
	view := buildSkillsSnapshot(analysis)
	if len(view.Gaps) != 4 {
		t.Errorf("gaps = %d, want capped at 4", len(view.Gaps))
	}
	if view.Completed[0] != "Html Css" {
		t.Errorf("completed display = %q", view.Completed[0])
	}
}

func TestRoadmapInvariants(t *testing.T) {
	analysis := testSkillAnalysis()
	roles := []string{
		"ML Engineer", "Data Scientist", "Backend Developer", "Frontend Developer",
		"Fullstack Developer", "DevOps Engineer", "Product Manager",
		"Technical Marketer", "Growth Hacker", "UX Designer", "Technical Writer",
		"Quantum Researcher",
	}
	for _, role := range roles {
		roadmap := buildRoadmap(skillgraph.Default(), role, analysis)
		if roadmap.TotalPhases != len(roadmap.Phases) || len(roadmap.Phases) == 0 {
			t.Fatalf("%s: phases = %d/%d", role, roadmap.TotalPhases, len(roadmap.Phases))
		}
		total := 0
		for _, phase := range roadmap.Phases {
			if len(phase.Skills) == 0 {
				t.Errorf("%s: phase %s has no skills", role, phase.ID)
			}
			if phase.Progress < 0 || phase.Progress > 100 {
				t.Errorf("%s: phase %s progress = %d", role, phase.ID, phase.Progress)
			}
			total += phase.Progress
		}
		if want := total / len(roadmap.Phases); roadmap.OverallProgress != want {
			t.Errorf("%s: overallProgress = %d, want floor mean %d", role, roadmap.OverallProgress, want)
		}
		if roadmap.CurrentPhase < 1 || roadmap.CurrentPhase > roadmap.TotalPhases {
			t.Errorf("%s: currentPhase = %d of %d", role, roadmap.CurrentPhase, roadmap.TotalPhases)
		}
	}
}

func TestRoadmapPhaseStatusesAndTimeRanges(t *testing.T) {
	analysis := &horizon.SkillAnalysis{
		SkillsCompleted:  []string{"programming_basics", "git"},
		SkillsInProgress: []string{"databases"},
	}
	roadmap := buildRoadmap(skillgraph.Default(), "Backend Developer", analysis)

	first := roadmap.Phases[0]
	if first.Status != horizon.PhaseCompleted || first.Progress != 100 {
		t.Errorf("first phase = %q/%d, want completed/100", first.Status, first.Progress)
	}
	if first.TimeRange != "Weeks 1-4" {
		t.Errorf("first time range = %q", first.TimeRange)
	}

	second := roadmap.Phases[1]
	if second.Status != horizon.PhaseInProgress {
		t.Errorf("second phase = %q, want in-progress", second.Status)
	}
	if second.TimeRange != "Weeks 5-10" {
		t.Errorf("second time range = %q", second.TimeRange)
	}

	if roadmap.CurrentPhase != 2 {
		t.Errorf("currentPhase = %d, want first in-progress phase", roadmap.CurrentPhase)
	}
}

func TestRoadmapCurrentPhaseAllCompletedCapped(t *testing.T) {
	analysis := &horizon.SkillAnalysis{SkillsCompleted: []string{
		"programming_basics", "git", "databases", "sql", "backend_frameworks",
		"system_design", "docker", "cloud_services", "devops",
	}}
	roadmap := buildRoadmap(skillgraph.Default(), "Backend Developer", analysis)
	if roadmap.OverallProgress != 100 {
		t.Errorf("overallProgress = %d, want 100", roadmap.OverallProgress)
	}
	if roadmap.CurrentPhase != roadmap.TotalPhases {
		t.Errorf("currentPhase = %d, want capped at %d", roadmap.CurrentPhase, roadmap.TotalPhases)
	}
}

func TestRoadmapSkillAnnotations(t *testing.T) {
	roadmap := buildRoadmap(skillgraph.Default(), "ML Engineer", &horizon.SkillAnalysis{})
	var mathPhase *horizon.RoadmapPhase
	for i := range roadmap.Phases {
		if roadmap.Phases[i].Title == "Math for ML" {
			mathPhase = &roadmap.Phases[i]
		}
	}
	if mathPhase == nil {
		t.Fatal("ML roadmap must contain a math phase")
	}
	for _, skill := range mathPhase.Skills {
		if skill.Description == "" {
			t.Errorf("skill %s has no description", skill.ID)
		}
		if skill.Name != horizon.DisplayName(skill.ID) {
			t.Errorf("skill name = %q", skill.Name)
		}
	}
}

func TestActiveInterests(t *testing.T) {
	career := testCareerAnalysis()
	roadmap := buildRoadmap(skillgraph.Default(), career.PrimaryDirection.Role, testSkillAnalysis())

	interests := buildActiveInterests(career, &roadmap)
	if len(interests) != 3 {
		t.Fatalf("interests = %d, want primary + 2 alternates", len(interests))
	}

	primary := interests[0]
	if primary.Title != "AI & Machine Learning" || primary.Status != "Active" {
		t.Errorf("primary interest = %+v", primary)
	}
	if primary.Progress != 75 {
		t.Errorf("primary progress = %d, want match score", primary.Progress)
	}
	if primary.ID != "ml-engineer" {
		t.Errorf("primary id = %q", primary.ID)
	}
	if primary.ModulesRemaining == 0 {
		t.Error("primary modulesRemaining must count open roadmap skills")
	}

	for _, alt := range interests[1:] {
		if alt.Status != "Planned" || alt.Progress != 0 || alt.ModulesRemaining != 4 {
			t.Errorf("alternate interest = %+v", alt)
		}
	}
	if interests[1].Title != "Data Science" {
		t.Errorf("alternate title = %q", interests[1].Title)
	}
}

func TestNextActionResourceTable(t *testing.T) {
	focus := horizon.ImmediateFocus{Skill: "Linear Algebra"}
	action := actionForFocus(focus)
	if action.Title != "Complete Linear Algebra Basics" || action.Duration != "2 hours" {
		t.Errorf("action = %+v", action)
	}

	generic := actionForFocus(horizon.ImmediateFocus{Skill: "Kubernetes"})
	if generic.Title != "Learn Kubernetes" || generic.Subtitle != "Find a tutorial or course" {
		t.Errorf("generic action = %+v", generic)
	}
	if generic.Type != "learning" {
		t.Errorf("action type = %q", generic.Type)
	}
}

func TestInsightsFixedOrderAndTriggers(t *testing.T) {
	insights := buildInsights(testSkillAnalysis(), testCareerAnalysis())
	if len(insights) != 3 {
		t.Fatalf("insights = %d, want 3", len(insights))
	}
	if insights[0].Type != horizon.InsightOpportunity || insights[1].Type != horizon.InsightRisk || insights[2].Type != horizon.InsightTrend {
		t.Errorf("insight order = %q/%q/%q", insights[0].Type, insights[1].Type, insights[2].Type)
	}
	if !strings.Contains(insights[0].Message, "ML Engineer") {
		t.Errorf("opportunity message = %q", insights[0].Message)
	}
	if !strings.Contains(insights[1].Message, "Linear Algebra") || !strings.Contains(insights[1].Message, "Machine Learning") {
		t.Errorf("risk message = %q", insights[1].Message)
	}

	empty := buildInsights(&horizon.SkillAnalysis{}, testCareerAnalysis())
	if len(empty) != 0 {
		t.Errorf("insights without triggers = %d, want 0", len(empty))
	}

	gapNoBlocked := &horizon.SkillAnalysis{Gaps: []horizon.SkillGap{{Skill: "git", Impact: horizon.ImpactMedium}}}
	risk := buildInsights(gapNoBlocked, testCareerAnalysis())
	if len(risk) != 1 || !strings.Contains(risk[0].Message, "advanced topics") {
		t.Errorf("risk without blocked skills = %+v", risk)
	}
}

func TestStats(t *testing.T) {
	analysis := testSkillAnalysis()
	roadmap := buildRoadmap(skillgraph.Default(), "ML Engineer", analysis)
	interests := buildActiveInterests(testCareerAnalysis(), &roadmap)

	stats := buildStats(analysis, interests, &roadmap)
	if stats.SkillsLearned != 2 {
		t.Errorf("skillsLearned = %d", stats.SkillsLearned)
	}
	if stats.LearningHours != 2*15+1*5 {
		t.Errorf("learningHours = %d", stats.LearningHours)
	}
	if stats.RoadmapCompletion != roadmap.OverallProgress {
		t.Errorf("roadmapCompletion = %d", stats.RoadmapCompletion)
	}
	if stats.DomainsExplored != 3 {
		t.Errorf("domainsExplored = %d", stats.DomainsExplored)
	}

	baseline := buildStats(&horizon.SkillAnalysis{}, nil, &horizon.Roadmap{})
	if baseline.LearningHours != 2 {
		t.Errorf("baseline hours = %d, want floor of 2", baseline.LearningHours)
	}
}

func TestRecentActivity(t *testing.T) {
	activity := buildRecentActivity(testSkillAnalysis())
	if len(activity) != 2 {
		t.Fatalf("activity = %d items, want 2", len(activity))
	}
	if activity[0].Title != "Completed Python" || activity[0].XP != 50 {
		t.Errorf("first item = %+v", activity[0])
	}
	if activity[1].Title != "Started Statistics" {
		t.Errorf("second item = %+v", activity[1])
	}
	if activity[0].ID == activity[1].ID || activity[0].ID == "" {
		t.Error("activity ids must be unique")
	}

	joined := buildRecentActivity(&horizon.SkillAnalysis{})
	if len(joined) != 1 || joined[0].Title != "Joined FutureHub" {
		t.Errorf("empty snapshot activity = %+v", joined)
	}
}

package skills

import (
	"strings"

	"github.com/futurehub/horizon/internal/horizon"
)

// directionRule maps a free-text career direction to the skills it targets.
// Rules are evaluated top to bottom; the first substring hit wins, so the
// more specific "machine learning" entry must precede the bare "ml" family.
type directionRule struct {
	pattern string
	skills  []string
}

var directionRules = []directionRule{
	{"machine learning", []string{"machine_learning", "deep_learning", "python", "statistics"}},
	{"backend", []string{"backend_frameworks", "databases", "system_design"}},
	{"frontend", []string{"frontend_frameworks", "react", "typescript"}},
	{"fullstack", []string{"frontend_frameworks", "backend_frameworks", "databases"}},
	{"data", []string{"data_analysis", "machine_learning", "sql"}},
	{"ml", []string{"machine_learning", "deep_learning", "python"}},
	{"devops", []string{"devops", "docker", "kubernetes", "cloud_services"}},
	{"software", []string{"algorithms", "system_design", "databases"}},
}

// directionSkills resolves a direction label to its target skills, or nil
// when no rule matches.
func directionSkills(direction string) []string {
	if direction == "" {
		return nil
	}
	lower := strings.ToLower(direction)
	for _, rule := range directionRules {
		if strings.Contains(lower, rule.pattern) {
			return rule.skills
		}
	}
	return nil
}

// emergingSkills returns the static, direction-conditioned hint list. AI, ML
// and data directions surface the LLM-era skills; everything else gets the
// generic tooling hint.
func emergingSkills(direction string) []horizon.EmergingSkill {
	lower := strings.ToLower(direction)
	if direction != "" && (strings.Contains(lower, "ml") || strings.Contains(lower, "ai") || strings.Contains(lower, "data")) {
		return []horizon.EmergingSkill{
			{Skill: "Prompt Engineering", Relevance: "2-3 years", Reason: "LLM adoption increasing across industries"},
			{Skill: "MLOps", Relevance: "Now", Reason: "ML deployment becoming standardized"},
		}
	}
	return []horizon.EmergingSkill{
		{Skill: "AI-Assisted Development", Relevance: "Now", Reason: "AI coding tools becoming standard"},
	}
}

// Package skills analyzes a proficiency snapshot against the skill graph:
// categorization by proficiency, ranked prerequisite gaps for the user's
// target direction, strengths and emerging-skill hints.
package skills

import (
	"context"

	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/skillgraph"
)

const maxGaps = 5

// Analyzer performs the structural gap analysis. It is pure: every call
// traverses the injected graph without retained state.
type Analyzer struct {
	graph *skillgraph.Graph
}

// NewAnalyzer creates an analyzer over the given prerequisite graph.
func NewAnalyzer(graph *skillgraph.Graph) *Analyzer {
	return &Analyzer{graph: graph}
}

// Analyze categorizes the snapshot and ranks the prerequisite gaps toward
// targetDirection. An empty direction (or one matching no direction rule)
// targets everything the user is currently learning.
func (a *Analyzer) Analyze(_ context.Context, snapshot *horizon.SkillSnapshot, targetDirection string) (*horizon.SkillAnalysis, error) {
	if snapshot == nil {
		snapshot = &horizon.SkillSnapshot{}
	}

	completed := snapshot.ByLevel(horizon.SkillComfortable)
	inProgress := snapshot.ByLevel(horizon.SkillUsedABit)
	planned := snapshot.ByLevel(horizon.SkillAware)

	strengths := make([]string, 0, len(completed))
	for _, skill := range completed {
		strengths = append(strengths, horizon.DisplayName(skill))
	}

	return &horizon.SkillAnalysis{
		SkillsCompleted:  completed,
		SkillsInProgress: inProgress,
		SkillsPlanned:    planned,
		Gaps:             a.findGaps(snapshot, targetDirection),
		Strengths:        strengths,
		EmergingSkills:   emergingSkills(targetDirection),
	}, nil
}

// findGaps walks the transitive prerequisite closure of every target skill
// and reports prerequisites not yet comfortable. Impact is high when the
// prerequisite transitively blocks at least two targets; duplicates keep the
// first discovery; the result is sorted by severity, discovery order within a
// tier, and truncated to maxGaps.
func (a *Analyzer) findGaps(snapshot *horizon.SkillSnapshot, targetDirection string) []horizon.SkillGap {
	comfortable := map[string]bool{}
	var learning []string
	for _, e := range snapshot.Skills {
		if e.Level == horizon.SkillComfortable {
			comfortable[e.Skill] = true
		} else {
			learning = append(learning, e.Skill)
		}
	}

	targets := directionSkills(targetDirection)
	if targets == nil {
		targets = learning
	}

	seen := map[string]bool{}
	var gaps []horizon.SkillGap
	for _, target := range targets {
		for _, prereq := range a.graph.AllPrerequisites(target) {
			if comfortable[prereq] || seen[prereq] {
				continue
			}
			seen[prereq] = true

			var blocked []string
			for _, other := range targets {
				if a.graph.Blocks(prereq, other) {
					blocked = append(blocked, other)
				}
			}

			impact := horizon.ImpactMedium
			if len(blocked) >= 2 {
				impact = horizon.ImpactHigh
			}
			if len(blocked) > 3 {
				blocked = blocked[:3]
			}

			gaps = append(gaps, horizon.SkillGap{
				Skill:         prereq,
				Impact:        impact,
				Reason:        a.graph.Description(prereq),
				BlockedSkills: blocked,
			})
		}
	}

	gaps = sortBySeverity(gaps)
	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}

// sortBySeverity orders high before medium before low while keeping the
// discovery order inside each tier.
func sortBySeverity(gaps []horizon.SkillGap) []horizon.SkillGap {
	out := make([]horizon.SkillGap, 0, len(gaps))
	for severity := 0; severity <= 2; severity++ {
		for _, g := range gaps {
			if g.Impact.Severity() == severity {
				out = append(out, g)
			}
		}
	}
	return out
}

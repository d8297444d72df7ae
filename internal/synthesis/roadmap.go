package synthesis

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/futurehub/horizon/internal/horizon"
	"github.com/futurehub/horizon/internal/skillgraph"
)

//go:embed data/templates.yaml
var templatesYAML []byte

// weeksPerSkill is the planning estimate used for phase time ranges.
const weeksPerSkill = 2

type phaseTemplate struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

type roleTemplate struct {
	Keywords []string        `yaml:"keywords"`
	Phases   []phaseTemplate `yaml:"phases"`
}

type templatesFile struct {
	Templates []roleTemplate `yaml:"templates"`
	Fallback  struct {
		Phases []phaseTemplate `yaml:"phases"`
	} `yaml:"fallback"`
}

var (
	templates     templatesFile
	templatesOnce sync.Once
	templatesErr  error
)

// phasesForRole picks the template whose keyword appears in the lowercased
// role name. Rules are ordered; the first hit wins, the fallback applies
// otherwise.
func phasesForRole(role string) []phaseTemplate {
	templatesOnce.Do(func() {
		templatesErr = yaml.Unmarshal(templatesYAML, &templates)
		if templatesErr == nil && len(templates.Fallback.Phases) == 0 {
			templatesErr = fmt.Errorf("embedded roadmap templates have no fallback")
		}
	})
	if templatesErr != nil {
		panic(templatesErr)
	}

	lower := strings.ToLower(role)
	for _, tpl := range templates.Templates {
		for _, keyword := range tpl.Keywords {
			if strings.Contains(lower, keyword) {
				return tpl.Phases
			}
		}
	}
	return templates.Fallback.Phases
}

func roadmapID(role string) string {
	return strings.ReplaceAll(strings.ToLower(role), " ", "-") + "-path"
}

// buildRoadmap assembles the learning roadmap toward one role, annotating
// every template skill with its status from the analysis and with the static
// material from the skill graph.
func buildRoadmap(graph *skillgraph.Graph, role string, analysis *horizon.SkillAnalysis) horizon.Roadmap {
	completed := asSet(analysis.SkillsCompleted)
	inProgress := asSet(analysis.SkillsInProgress)

	var phases []horizon.RoadmapPhase
	weeksElapsed := 0

	for i, tpl := range phasesForRole(role) {
		weeksForPhase := len(tpl.Skills) * weeksPerSkill
		timeRange := fmt.Sprintf("Weeks %d-%d", weeksElapsed+1, weeksElapsed+weeksForPhase)
		weeksElapsed += weeksForPhase

		skills := make([]horizon.RoadmapSkill, 0, len(tpl.Skills))
		completedCount := 0
		anyInProgress := false
		for _, skill := range tpl.Skills {
			status := string(horizon.PhaseNotStarted)
			switch {
			case completed[skill]:
				status = string(horizon.PhaseCompleted)
				completedCount++
			case inProgress[skill]:
				status = string(horizon.PhaseInProgress)
				anyInProgress = true
			}
			skills = append(skills, horizon.RoadmapSkill{
				ID:          skill,
				Name:        horizon.DisplayName(skill),
				Status:      status,
				Description: graph.Description(skill),
				Resources:   graph.Resources(skill),
				Practice:    graph.Practice(skill),
			})
		}

		status := horizon.PhaseNotStarted
		progress := 0
		switch {
		case completedCount == len(tpl.Skills):
			status = horizon.PhaseCompleted
			progress = 100
		case completedCount > 0 || anyInProgress:
			status = horizon.PhaseInProgress
			progress = completedCount * 100 / len(tpl.Skills)
		}

		phases = append(phases, horizon.RoadmapPhase{
			ID:        fmt.Sprintf("phase-%d", i+1),
			Title:     tpl.Title,
			Status:    status,
			Progress:  progress,
			TimeRange: timeRange,
			Skills:    skills,
		})
	}

	currentPhase := 1
	for i, phase := range phases {
		if phase.Status == horizon.PhaseInProgress {
			currentPhase = i + 1
			break
		}
		if phase.Status == horizon.PhaseCompleted {
			currentPhase = i + 2
		}
	}
	if currentPhase > len(phases) {
		currentPhase = len(phases)
	}

	totalProgress := 0
	for _, phase := range phases {
		totalProgress += phase.Progress
	}
	overall := 0
	if len(phases) > 0 {
		overall = totalProgress / len(phases)
	}

	return horizon.Roadmap{
		ID:              roadmapID(role),
		Title:           role,
		TotalPhases:     len(phases),
		CurrentPhase:    currentPhase,
		OverallProgress: overall,
		Phases:          phases,
	}
}

func asSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[s] = true
	}
	return set
}

package profile

import (
	"fmt"
	"strings"

	"github.com/futurehub/horizon/internal/horizon"
)

func determineLevel(exposure horizon.ExposureLevel, stage horizon.Stage) horizon.Level {
	switch exposure {
	case horizon.ExposureProfessional:
		return horizon.LevelAdvanced
	case horizon.ExposureSeriousProjects:
		return horizon.LevelIntermediate
	case horizon.ExposureSmallProjects:
		if isLateStage(stage) || stage == horizon.StageGraduate {
			return horizon.LevelIntermediate
		}
		return horizon.LevelBeginner
	default:
		return horizon.LevelBeginner
	}
}

func isLateStage(stage horizon.Stage) bool {
	return stage == horizon.StageThirdYear || stage == horizon.StageFinalYear
}

func nextLevel(current horizon.Level) horizon.Level {
	switch current {
	case horizon.LevelBeginner:
		return horizon.LevelIntermediate
	case horizon.LevelIntermediate:
		return horizon.LevelAdvanced
	default:
		return ""
	}
}

func estimateProgress(exposure horizon.ExposureLevel, stage horizon.Stage) int {
	base := 0
	switch exposure {
	case horizon.ExposureCoursework:
		base = 20
	case horizon.ExposureSmallProjects:
		base = 40
	case horizon.ExposureSeriousProjects:
		base = 65
	case horizon.ExposureProfessional:
		base = 85
	}

	if isLateStage(stage) {
		base = min(base+15, 95)
	}

	return base
}

func formatExposure(exposure horizon.ExposureLevel) string {
	switch exposure {
	case horizon.ExposureCoursework:
		return "Mostly coursework"
	case horizon.ExposureSmallProjects:
		return "Built small projects"
	case horizon.ExposureSeriousProjects:
		return "Serious projects/internships"
	case horizon.ExposureProfessional:
		return "Working professionally"
	default:
		return "Learning"
	}
}

func formatTimeCommitment(commitment horizon.TimeCommitment) string {
	switch commitment {
	case horizon.TimeUnder5:
		return "<5 hours/week"
	case horizon.TimeFiveToTen:
		return "5-10 hours/week"
	case horizon.TimeTenTo15:
		return "10-15 hours/week"
	case horizon.TimeOver15:
		return "15+ hours/week"
	default:
		return "Unknown"
	}
}

func formatEducation(stage horizon.Stage, graduationYear int) string {
	labels := map[horizon.Stage]string{
		horizon.StageFirstYear:  "1st Year",
		horizon.StageSecondYear: "2nd Year",
		horizon.StageThirdYear:  "3rd Year",
		horizon.StageFinalYear:  "Final Year",
		horizon.StageGraduate:   "Graduate",
	}
	base, ok := labels[stage]
	if !ok {
		base = "Student"
	}
	if graduationYear > 0 {
		return fmt.Sprintf("%s (Graduating %d)", base, graduationYear)
	}
	return base
}

// roleRule maps interest keywords to an aspirational role label. Rules are
// evaluated top to bottom; the first keyword hit wins.
type roleRule struct {
	keywords []string
	role     string
}

var roleRules = []roleRule{
	{[]string{"ml", "machine learning", "ai"}, "Aspiring ML Engineer"},
	{[]string{"data"}, "Aspiring Data Scientist"},
	{[]string{"frontend", "react", "ui"}, "Aspiring Frontend Developer"},
	{[]string{"backend", "api", "server"}, "Aspiring Backend Developer"},
	{[]string{"full", "web"}, "Aspiring Full Stack Developer"},
	{[]string{"devops", "cloud", "infra"}, "Aspiring DevOps Engineer"},
}

func inferRole(interests []string, exposure horizon.ExposureLevel) string {
	for _, rule := range roleRules {
		for _, interest := range interests {
			lower := strings.ToLower(interest)
			for _, kw := range rule.keywords {
				if strings.Contains(lower, kw) {
					return rule.role
				}
			}
		}
	}

	if exposure == horizon.ExposureProfessional {
		return "Software Engineer"
	}
	return "Aspiring Software Developer"
}

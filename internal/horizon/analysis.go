package horizon

// ProfileBackground summarizes the user's context in display form.
type ProfileBackground struct {
	Education    string `json:"education"`
	Experience   string `json:"experience"`
	CurrentFocus string `json:"currentFocus"`
}

// ProfilePreferences carries display-formatted learning preferences.
type ProfilePreferences struct {
	LearningStyle []string `json:"learningStyle"`
	TimeAvailable string   `json:"timeAvailable"`
	Goals         []string `json:"goals"`
}

// ProfileAnalysis is the Profile Analyzer stage output.
type ProfileAnalysis struct {
	Name                string             `json:"name"`
	Role                string             `json:"role"`
	Level               Level              `json:"level"`
	NextLevel           Level              `json:"nextLevel,omitempty"`
	ProgressToNextLevel int                `json:"progressToNextLevel"`
	ExposureLevel       string             `json:"exposureLevel"`
	LearningStyle       string             `json:"learningStyle"`
	Background          ProfileBackground  `json:"background"`
	Preferences         ProfilePreferences `json:"preferences"`
}

// SkillGap is a prerequisite skill that blocks one or more target skills.
type SkillGap struct {
	Skill         string   `json:"skill"`
	Impact        Impact   `json:"impact"`
	Reason        string   `json:"reason"`
	BlockedSkills []string `json:"blockedSkills,omitempty"`
}

// EmergingSkill is a direction-conditioned hint about an upcoming skill.
type EmergingSkill struct {
	Skill     string `json:"skill"`
	Relevance string `json:"relevance"`
	Reason    string `json:"reason"`
}

// SkillAnalysis is the Skill Analyzer stage output.
type SkillAnalysis struct {
	SkillsCompleted  []string        `json:"skillsCompleted"`
	SkillsInProgress []string        `json:"skillsInProgress"`
	SkillsPlanned    []string        `json:"skillsPlanned"`
	Gaps             []SkillGap      `json:"gaps"`
	Strengths        []string        `json:"strengths"`
	EmergingSkills   []EmergingSkill `json:"emergingSkills"`
}

// CareerMatch scores one candidate role for the user.
type CareerMatch struct {
	Role        string `json:"role"`
	MatchScore  int    `json:"matchScore"`
	Reason      string `json:"reason,omitempty"`
	TimeToReady string `json:"timeToReady,omitempty"`
}

// MarketInsights is static market data attached to the primary role.
type MarketInsights struct {
	DemandTrend  string   `json:"demandTrend" yaml:"trend"`
	SalaryRange  string   `json:"salaryRange" yaml:"salary"`
	TopCompanies []string `json:"topCompanies" yaml:"companies"`
}

// CareerAnalysis is the Career Matcher stage output.
type CareerAnalysis struct {
	PrimaryDirection      CareerMatch     `json:"primaryDirection"`
	AlternativeDirections []CareerMatch   `json:"alternativeDirections"`
	MarketInsights        *MarketInsights `json:"marketInsights,omitempty"`
}

// CandidateRoles lists the primary role plus up to two alternatives, the set
// the synthesizer builds roadmaps and interests for.
func (c *CareerAnalysis) CandidateRoles() []CareerMatch {
	roles := []CareerMatch{c.PrimaryDirection}
	for i, alt := range c.AlternativeDirections {
		if i == 2 {
			break
		}
		roles = append(roles, alt)
	}
	return roles
}

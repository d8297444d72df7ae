package horizon

// ProfileSection is the display-formatted profile block of the output.
type ProfileSection struct {
	Name                string `json:"name"`
	Role                string `json:"role"`
	Level               string `json:"level"`
	NextLevel           string `json:"nextLevel,omitempty"`
	ProgressToNextLevel int    `json:"progressToNextLevel"`
	ExposureLevel       string `json:"exposureLevel"`
	LearningStyle       string `json:"learningStyle"`
}

// CareerDirection is the recommended direction with derived confidence.
type CareerDirection struct {
	PrimaryRole    string     `json:"primaryRole"`
	SecondaryRoles []string   `json:"secondaryRoles"`
	MatchScore     int        `json:"matchScore"`
	Confidence     Confidence `json:"confidence"`
	Reasoning      string     `json:"reasoning"`
}

// ImmediateFocus names the single most important skill to work on now.
type ImmediateFocus struct {
	Skill      string   `json:"skill"`
	Reason     string   `json:"reason"`
	TimeWindow string   `json:"timeWindow"`
	Priority   Priority `json:"priority"`
}

// SkillGapView is the display form of a gap inside the skills snapshot.
type SkillGapView struct {
	Skill  string `json:"skill"`
	Impact string `json:"impact"`
	Reason string `json:"reason"`
}

// SkillsSnapshotView groups display-formatted skills by status.
type SkillsSnapshotView struct {
	Completed  []string       `json:"completed"`
	InProgress []string       `json:"inProgress"`
	Planned    []string       `json:"planned"`
	Gaps       []SkillGapView `json:"gaps"`
}

// ActiveInterest is one pursued interest area derived from a candidate role.
type ActiveInterest struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Progress         int    `json:"progress"`
	Status           string `json:"status"`
	Color            string `json:"color"`
	ModulesRemaining int    `json:"modulesRemaining"`
	Icon             string `json:"icon"`
}

// NextAction is the single recommended next step.
type NextAction struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Duration  string `json:"duration"`
	Type      string `json:"type"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// Insight is one generated observation about the user's trajectory.
type Insight struct {
	Type       InsightType `json:"type"`
	Message    string      `json:"message"`
	Confidence Confidence  `json:"confidence"`
}

// SkillResource is a curated learning resource for a roadmap skill.
type SkillResource struct {
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title" yaml:"title"`
	Link  string `json:"link,omitempty" yaml:"link"`
	Level string `json:"level" yaml:"level"`
}

// RoadmapSkill is one skill inside a roadmap phase, annotated with status.
type RoadmapSkill struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
	Resources   []SkillResource `json:"resources"`
	Practice    []string        `json:"practice"`
}

// RoadmapPhase groups skills into one ordered learning phase.
type RoadmapPhase struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Status    PhaseStatus    `json:"status"`
	Progress  int            `json:"progress"`
	TimeRange string         `json:"timeRange,omitempty"`
	Skills    []RoadmapSkill `json:"skills"`
}

// Roadmap is an ordered sequence of phases toward one candidate role.
type Roadmap struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	TotalPhases     int            `json:"totalPhases"`
	CurrentPhase    int            `json:"currentPhase"`
	OverallProgress int            `json:"overallProgress"`
	Phases          []RoadmapPhase `json:"phases"`
}

// ActivityItem is one entry of the recent-activity feed.
type ActivityItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
	XP    int    `json:"xp"`
}

// Stats are the dashboard counters.
type Stats struct {
	SkillsLearned     int `json:"skillsLearned"`
	LearningHours     int `json:"learningHours"`
	RoadmapCompletion int `json:"roadmapCompletion"`
	DomainsExplored   int `json:"domainsExplored"`
}

// DailyInsight is the single motivational message of the day.
type DailyInsight struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Author  string `json:"author,omitempty"`
}

// HorizonOutput is the terminal aggregate of the pipeline, the only record
// external consumers see.
type HorizonOutput struct {
	Version     string `json:"version"`
	GeneratedAt string `json:"generatedAt"`
	UserID      string `json:"userId"`

	Profile         ProfileSection     `json:"profile"`
	Stats           Stats              `json:"stats"`
	DailyInsight    DailyInsight       `json:"dailyInsight"`
	CareerDirection CareerDirection    `json:"careerDirection"`
	ImmediateFocus  ImmediateFocus     `json:"immediateFocus"`
	SkillsSnapshot  SkillsSnapshotView `json:"skillsSnapshot"`
	ActiveInterests []ActiveInterest   `json:"activeInterests"`
	NextAction      NextAction         `json:"nextAction"`
	RecentActivity  []ActivityItem     `json:"recentActivity"`
	Insights        []Insight          `json:"insights"`
	Roadmaps        []Roadmap          `json:"roadmaps"`
}

package horizon

import "github.com/google/uuid"

// UserProfile is the raw onboarding input. It is immutable once submitted for
// a given onboarding event and replaced wholesale on re-onboarding.
type UserProfile struct {
	UserID               string         `json:"userId" yaml:"user_id"`
	Name                 string         `json:"name" yaml:"name"`
	Stage                Stage          `json:"stage" yaml:"stage"`
	GraduationYear       int            `json:"graduationYear,omitempty" yaml:"graduation_year"`
	ExposureLevel        ExposureLevel  `json:"exposureLevel" yaml:"exposure_level"`
	LearningPreferences  []string       `json:"learningPreferences,omitempty" yaml:"learning_preferences"`
	WeeklyTimeCommitment TimeCommitment `json:"weeklyTimeCommitment" yaml:"weekly_time_commitment"`
	Constraints          []string       `json:"constraints,omitempty" yaml:"constraints"`
	Goals                []string       `json:"goals,omitempty" yaml:"goals"`
	Interests            []string       `json:"interests,omitempty" yaml:"interests"`
}

// SkillEntry pairs a skill identifier with its proficiency.
type SkillEntry struct {
	Skill string     `json:"skill" yaml:"skill"`
	Level SkillLevel `json:"level" yaml:"level"`
}

// SkillSnapshot is the user's current skill state. One entry per skill
// identifier; last write wins on update.
type SkillSnapshot struct {
	Skills []SkillEntry `json:"skills" yaml:"skills"`
}

// ByLevel returns the skill identifiers held at the given proficiency.
func (s *SkillSnapshot) ByLevel(level SkillLevel) []string {
	if s == nil {
		return nil
	}
	var out []string
	for _, e := range s.Skills {
		if e.Level == level {
			out = append(out, e.Skill)
		}
	}
	return out
}

// Event is a normalized trigger for a pipeline run.
type Event struct {
	ID      string         `json:"id"`
	Type    EventType      `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// NewEvent creates an event with a fresh identifier.
func NewEvent(eventType EventType) Event {
	return Event{ID: uuid.NewString(), Type: eventType}
}

package pipeline

import "github.com/futurehub/horizon/internal/horizon"

// ExecutionPlan is the supervisor's verdict on which stages must run for an
// event. It is a pure value with no identity.
type ExecutionPlan struct {
	RunProfile   bool
	RunSkill     bool
	RunCareer    bool
	RunReasoning bool
}

// Empty reports whether the plan requests no stage at all.
func (p ExecutionPlan) Empty() bool {
	return !p.RunProfile && !p.RunSkill && !p.RunCareer && !p.RunReasoning
}

// Supervisor routes events to execution plans. Pure logic, no side effects:
// unknown events degrade to a no-op plan instead of failing.
type Supervisor struct{}

// PlanFor returns the fixed routing table entry for the event type.
func (Supervisor) PlanFor(eventType horizon.EventType) ExecutionPlan {
	switch eventType {
	case horizon.EventOnboardingCompleted:
		return ExecutionPlan{RunProfile: true, RunSkill: true, RunCareer: true, RunReasoning: true}
	case horizon.EventSkillUpdated:
		return ExecutionPlan{RunSkill: true, RunReasoning: true}
	case horizon.EventDirectionChanged:
		return ExecutionPlan{RunCareer: true, RunReasoning: true}
	case horizon.EventCheckIn:
		return ExecutionPlan{RunReasoning: true}
	default:
		return ExecutionPlan{}
	}
}

// ShouldAbort implements the all-or-nothing failure policy: any failed stage
// aborts the whole pipeline.
func (Supervisor) ShouldAbort(previousStageFailed bool) bool {
	return previousStageFailed
}

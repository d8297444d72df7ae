package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/futurehub/horizon/internal/ai"
	"github.com/futurehub/horizon/internal/horizon"
)

// ProfileStage produces a persona analysis from raw onboarding input.
type ProfileStage interface {
	Analyze(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error)
}

// SkillStage produces a gap analysis from a snapshot and an optional target
// direction (the cached primary career role, when one exists).
type SkillStage interface {
	Analyze(ctx context.Context, snapshot *horizon.SkillSnapshot, targetDirection string) (*horizon.SkillAnalysis, error)
}

// CareerStage produces a career recommendation from upstream analyses.
type CareerStage interface {
	Recommend(ctx context.Context, req *ai.CareerRequest) (*horizon.CareerAnalysis, error)
}

// ReasoningStage assembles the final user-facing output from the three
// upstream analyses.
type ReasoningStage interface {
	Synthesize(ctx context.Context, userID string, profile *horizon.ProfileAnalysis, skills *horizon.SkillAnalysis, career *horizon.CareerAnalysis) (*horizon.HorizonOutput, error)
}

// Job is one unit of batch work: an event plus the inputs it applies to.
type Job struct {
	Event    horizon.Event
	Profile  horizon.UserProfile
	Snapshot *horizon.SkillSnapshot
}

// Pipeline executes supervisor plans against per-user cached stage results.
// Runs for the same user are serialized; runs for different users proceed
// independently.
type Pipeline struct {
	supervisor Supervisor
	store      Store
	profiles   ProfileStage
	skills     SkillStage
	careers    CareerStage
	reasoning  ReasoningStage
	logger     *zap.Logger

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// New creates a pipeline over the given store and stages.
func New(store Store, profiles ProfileStage, skills SkillStage, careers CareerStage, reasoning ReasoningStage, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		store:     store,
		profiles:  profiles,
		skills:    skills,
		careers:   careers,
		reasoning: reasoning,
		logger:    logger,
		users:     make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing runs for one user. Locks are never
// evicted; the map grows with the distinct user population.
func (p *Pipeline) userLock(userID string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.users[userID]
	if !ok {
		lock = &sync.Mutex{}
		p.users[userID] = lock
	}
	return lock
}

// Process runs the stages the event demands and returns the synthesized
// output. An unrecognized event fails with ErrNoApplicableStage; any stage
// error aborts the whole run with a wrapped cause and no partial output.
func (p *Pipeline) Process(ctx context.Context, event horizon.Event, profile horizon.UserProfile, snapshot *horizon.SkillSnapshot) (*horizon.HorizonOutput, error) {
	lock := p.userLock(profile.UserID)
	lock.Lock()
	defer lock.Unlock()

	plan := p.supervisor.PlanFor(event.Type)
	if plan.Empty() {
		return nil, fmt.Errorf("event %q: %w", event.Type, ErrNoApplicableStage)
	}
	return p.execute(ctx, plan, event, profile, snapshot)
}

// execute runs the planned stages. The caller holds the user's lock.
func (p *Pipeline) execute(ctx context.Context, plan ExecutionPlan, event horizon.Event, profile horizon.UserProfile, snapshot *horizon.SkillSnapshot) (*horizon.HorizonOutput, error) {
	p.logger.Debug("execution plan resolved",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("user_id", profile.UserID),
		zap.Bool("profile", plan.RunProfile),
		zap.Bool("skill", plan.RunSkill),
		zap.Bool("career", plan.RunCareer),
		zap.Bool("reasoning", plan.RunReasoning),
	)

	// Re-onboarding replaces the user's cached state wholesale.
	if event.Type == horizon.EventOnboardingCompleted {
		if err := p.store.Reset(profile.UserID); err != nil {
			return nil, fmt.Errorf("resetting cached state: %w", err)
		}
	}

	if plan.RunProfile {
		if _, err := p.runProfile(ctx, profile); p.supervisor.ShouldAbort(err != nil) {
			return nil, fmt.Errorf("profile stage: %w", err)
		}
	}
	// An update event arriving without a snapshot leaves the cached skill
	// analysis in place instead of recomputing it from nothing.
	if plan.RunSkill && snapshot != nil {
		if _, err := p.runSkills(ctx, profile.UserID, snapshot); p.supervisor.ShouldAbort(err != nil) {
			return nil, fmt.Errorf("skill stage: %w", err)
		}
	}
	if plan.RunCareer {
		if _, err := p.runCareer(ctx, profile, snapshot); p.supervisor.ShouldAbort(err != nil) {
			return nil, fmt.Errorf("career stage: %w", err)
		}
	}
	if !plan.RunReasoning {
		return nil, fmt.Errorf("event %q: %w", event.Type, ErrNoReasoningStage)
	}

	profileResult, err := p.ensureProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("profile stage: %w", err)
	}
	skillResult, err := p.ensureSkills(ctx, profile.UserID, snapshot)
	if err != nil {
		return nil, fmt.Errorf("skill stage: %w", err)
	}
	careerResult, err := p.ensureCareer(ctx, profile, snapshot)
	if err != nil {
		return nil, fmt.Errorf("career stage: %w", err)
	}

	output, err := p.reasoning.Synthesize(ctx, profile.UserID, profileResult, skillResult, careerResult)
	if err != nil {
		return nil, fmt.Errorf("reasoning stage: %w", err)
	}
	p.logger.Info("pipeline run completed",
		zap.String("user_id", profile.UserID),
		zap.String("event_type", string(event.Type)),
	)
	return output, nil
}

// ProcessBatch runs independent jobs in parallel. Jobs for the same user are
// still serialized by the per-user lock. The result slice is positional; on
// error the whole batch fails.
func (p *Pipeline) ProcessBatch(ctx context.Context, jobs []Job) ([]*horizon.HorizonOutput, error) {
	outputs := make([]*horizon.HorizonOutput, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		group.Go(func() error {
			out, err := p.Process(ctx, job.Event, job.Profile, job.Snapshot)
			if err != nil {
				return fmt.Errorf("user %s: %w", job.Profile.UserID, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func (p *Pipeline) runProfile(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	result, err := p.profiles.Analyze(ctx, profile)
	if err != nil {
		return nil, err
	}
	if err := p.store.PutProfile(profile.UserID, result); err != nil {
		return nil, fmt.Errorf("caching result: %w", err)
	}
	return result, nil
}

func (p *Pipeline) runSkills(ctx context.Context, userID string, snapshot *horizon.SkillSnapshot) (*horizon.SkillAnalysis, error) {
	result, err := p.skills.Analyze(ctx, snapshot, p.cachedDirection(userID))
	if err != nil {
		return nil, err
	}
	if err := p.store.PutSkills(userID, result); err != nil {
		return nil, fmt.Errorf("caching result: %w", err)
	}
	return result, nil
}

func (p *Pipeline) runCareer(ctx context.Context, profile horizon.UserProfile, snapshot *horizon.SkillSnapshot) (*horizon.CareerAnalysis, error) {
	profileResult, err := p.ensureProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	skillResult, err := p.ensureSkills(ctx, profile.UserID, snapshot)
	if err != nil {
		return nil, err
	}
	result, err := p.careers.Recommend(ctx, &ai.CareerRequest{
		Profile:   profileResult,
		Skills:    skillResult,
		Interests: profile.Interests,
		Goals:     profile.Goals,
	})
	if err != nil {
		return nil, err
	}
	if err := p.store.PutCareer(profile.UserID, result); err != nil {
		return nil, fmt.Errorf("caching result: %w", err)
	}
	return result, nil
}

// cachedDirection is the primary role of the user's cached career analysis,
// used to focus the skill stage on direction-relevant gaps.
func (p *Pipeline) cachedDirection(userID string) string {
	cached, err := p.store.Career(userID)
	if err != nil || cached == nil {
		return ""
	}
	return cached.PrimaryDirection.Role
}

// ensureProfile returns the cached analysis, computing and caching it on
// demand when absent. The raw profile is always available, so there is no
// default fallback here.
func (p *Pipeline) ensureProfile(ctx context.Context, profile horizon.UserProfile) (*horizon.ProfileAnalysis, error) {
	cached, err := p.store.Profile(profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}
	return p.runProfile(ctx, profile)
}

// ensureSkills returns the cached analysis, computing it on demand from the
// snapshot when absent. Without a snapshot the missing prerequisite is
// resolved silently with an empty analysis, which is still cached.
func (p *Pipeline) ensureSkills(ctx context.Context, userID string, snapshot *horizon.SkillSnapshot) (*horizon.SkillAnalysis, error) {
	cached, err := p.store.Skills(userID)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}
	if snapshot == nil {
		p.logger.Debug("skill analysis requested without snapshot, using empty default",
			zap.String("user_id", userID))
		empty := &horizon.SkillAnalysis{}
		if err := p.store.PutSkills(userID, empty); err != nil {
			return nil, fmt.Errorf("caching result: %w", err)
		}
		return empty, nil
	}
	return p.runSkills(ctx, userID, snapshot)
}

func (p *Pipeline) ensureCareer(ctx context.Context, profile horizon.UserProfile, snapshot *horizon.SkillSnapshot) (*horizon.CareerAnalysis, error) {
	cached, err := p.store.Career(profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if cached != nil {
		return cached, nil
	}
	return p.runCareer(ctx, profile, snapshot)
}

package pipeline

import (
	"sync"

	"github.com/futurehub/horizon/internal/horizon"
)

// Store holds the per-user cached stage outputs. Results live until an
// explicit re-onboarding reset; there is no TTL or eviction. The orchestrator
// guarantees a single writer per user key, so implementations only need to be
// safe for concurrent access across different keys.
type Store interface {
	Profile(userID string) (*horizon.ProfileAnalysis, error)
	PutProfile(userID string, analysis *horizon.ProfileAnalysis) error

	Skills(userID string) (*horizon.SkillAnalysis, error)
	PutSkills(userID string, analysis *horizon.SkillAnalysis) error

	Career(userID string) (*horizon.CareerAnalysis, error)
	PutCareer(userID string, analysis *horizon.CareerAnalysis) error

	// Reset drops every cached result for the user. Called on re-onboarding.
	Reset(userID string) error
}

type memoryEntry struct {
	profile *horizon.ProfileAnalysis
	skills  *horizon.SkillAnalysis
	career  *horizon.CareerAnalysis
}

// MemoryStore is the in-process Store used by default and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) entry(userID string) *memoryEntry {
	if e, ok := s.entries[userID]; ok {
		return e
	}
	e := &memoryEntry{}
	s.entries[userID] = e
	return e
}

func (s *MemoryStore) Profile(userID string) (*horizon.ProfileAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[userID]; ok {
		return e.profile, nil
	}
	return nil, nil
}

func (s *MemoryStore) PutProfile(userID string, analysis *horizon.ProfileAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).profile = analysis
	return nil
}

func (s *MemoryStore) Skills(userID string) (*horizon.SkillAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[userID]; ok {
		return e.skills, nil
	}
	return nil, nil
}

func (s *MemoryStore) PutSkills(userID string, analysis *horizon.SkillAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).skills = analysis
	return nil
}

func (s *MemoryStore) Career(userID string) (*horizon.CareerAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.entries[userID]; ok {
		return e.career, nil
	}
	return nil, nil
}

func (s *MemoryStore) PutCareer(userID string, analysis *horizon.CareerAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(userID).career = analysis
	return nil
}

func (s *MemoryStore) Reset(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

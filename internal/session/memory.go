package session

import (
	"context"
	"sync"
	"time"

	"bmi-calculator/internal/health"
)

type memoryEntry struct {
	history  *health.History
	lastSeen time.Time
}

// MemoryStore holds one health.History per session in process memory.
// Sessions idle for longer than the TTL are dropped on the next access.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memoryEntry
}

// NewMemoryStore returns a store whose sessions expire after ttl of
// inactivity. A ttl <= 0 keeps sessions for the life of the process.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, rec health.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()

	e, ok := s.sessions[sessionID]
	if !ok {
		e = &memoryEntry{history: health.NewHistory()}
		s.sessions[sessionID] = e
		activeSessions.Set(float64(len(s.sessions)))
	}
	e.history.Append(rec)
	e.lastSeen = s.now()

	observeOp("memory", "append", nil)
	return nil
}

func (s *MemoryStore) List(_ context.Context, sessionID string) ([]health.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	observeOp("memory", "list", nil)

	e, ok := s.sessions[sessionID]
	if !ok {
		return []health.Record{}, nil
	}
	e.lastSeen = s.now()
	return e.history.Snapshot(), nil
}

func (s *MemoryStore) Reset(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[sessionID]; ok {
		e.history.Reset()
		e.lastSeen = s.now()
	}
	s.evictExpiredLocked()

	observeOp("memory", "reset", nil)
	return nil
}

// Len reports how many sessions are currently held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) evictExpiredLocked() {
	if s.ttl <= 0 {
		return
	}

	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	activeSessions.Set(float64(len(s.sessions)))
}

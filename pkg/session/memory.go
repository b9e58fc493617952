package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Joako199002/proyecto-alzarea/pkg/metrics"
)

const cleanupInterval = time.Hour

// Store maps opaque session identifiers to conversation state.
type Store interface {
	// GetOrCreate returns the session for id, creating and seeding it with
	// the system prompt when absent.
	GetOrCreate(id string) *Session
	// Reset removes all state for id. Resetting an absent id is a no-op.
	Reset(id string)
	// Count returns the number of live sessions.
	Count() int
	// Shutdown stops background maintenance.
	Shutdown()
}

// MemoryStore is the in-memory Store implementation. Capacity is bounded:
// when maxSessions is reached the least recently used session is evicted,
// and a background loop drops sessions idle beyond idleTTL.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	systemPrompt string
	maxSessions  int
	idleTTL      time.Duration
	reg          *metrics.Registry

	cancelCleanup context.CancelFunc
	cleanupDone   chan struct{}
}

// NewMemoryStore creates an empty store. New sessions are seeded with
// systemPrompt. maxSessions must be positive; idleTTL <= 0 disables the
// inactivity sweep.
func NewMemoryStore(systemPrompt string, maxSessions int, idleTTL time.Duration, reg *metrics.Registry) *MemoryStore {
	ctx, cancel := context.WithCancel(context.Background())
	s := &MemoryStore{
		sessions:      make(map[string]*Session),
		systemPrompt:  systemPrompt,
		maxSessions:   maxSessions,
		idleTTL:       idleTTL,
		reg:           reg,
		cancelCleanup: cancel,
		cleanupDone:   make(chan struct{}),
	}
	go s.cleanupLoop(ctx)
	return s
}

// GetOrCreate returns the session for id, creating it when absent.
func (s *MemoryStore) GetOrCreate(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check: another goroutine may have created the session while
	// we waited for the write lock.
	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	if len(s.sessions) >= s.maxSessions {
		s.evictLRU()
	}

	sess = newSession(s.systemPrompt)
	s.sessions[id] = sess
	log.Debug().Str("session_id", id).Msg("session created")
	if s.reg != nil {
		s.reg.Inc(context.Background(), "sessions_created_total", nil, 1)
	}
	return sess
}

// Reset removes the session for id, if any.
func (s *MemoryStore) Reset(id string) {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		log.Debug().Str("session_id", id).Msg("session reset")
	}
}

// Count returns the number of live sessions.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown stops the cleanup goroutine and waits for it to finish.
func (s *MemoryStore) Shutdown() {
	s.cancelCleanup()
	<-s.cleanupDone
}

// evictLRU removes the least recently used session.
// Must be called with mu held for writing.
func (s *MemoryStore) evictLRU() {
	var oldestID string
	var oldestTime time.Time
	for id, sess := range s.sessions {
		if t := sess.touchedAt(); oldestID == "" || t.Before(oldestTime) {
			oldestID = id
			oldestTime = t
		}
	}
	if oldestID == "" {
		return
	}
	delete(s.sessions, oldestID)
	log.Warn().Str("session_id", oldestID).Msg("session evicted, store at capacity")
	if s.reg != nil {
		s.reg.Inc(context.Background(), "sessions_evicted_total", nil, 1)
	}
}

func (s *MemoryStore) cleanupLoop(ctx context.Context) {
	defer close(s.cleanupDone)
	if s.idleTTL <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.dropIdleSessions()
		}
	}
}

func (s *MemoryStore) dropIdleSessions() {
	now := time.Now()
	s.mu.Lock()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.touchedAt()) > s.idleTTL {
			delete(s.sessions, id)
			removed++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()
	if removed > 0 {
		log.Info().Int("removed", removed).Int("remaining", remaining).Msg("idle sessions cleaned up")
	}
}

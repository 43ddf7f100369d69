package game

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store is the in-memory registry of active verification sessions. Scored
// and abandoned sessions are swept after their TTL; nothing is persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *zap.Logger
}

// NewStore creates a session store with the given retention TTL.
func NewStore(ttl time.Duration, log *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
	}
}

// Create registers a new session for the given game type and prompt.
func (s *Store) Create(gameType, prompt string) *Session {
	session := NewSession(gameType, prompt)
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a session by ID if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes sessions older than the TTL and returns how many were
// dropped.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if now.Sub(session.CreatedAt) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs the TTL sweep on a ticker until stop is closed.
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	s.log.Info("Starting session sweeper", zap.Duration("interval", interval), zap.Duration("ttl", s.ttl))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if removed := s.Sweep(time.Now().UTC()); removed > 0 {
					s.log.Debug("Swept expired sessions", zap.Int("removed", removed))
				}
			}
		}
	}()
}

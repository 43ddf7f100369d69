package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SpeedyGonzale5/game-captcha/internal/models"
)

// Game types offered for verification.
const (
	TypeShooter = "shooter"
	TypeDrawing = "drawing"
)

// NewSessionID returns an opaque unique session identifier. Uniqueness is
// the only contract; the format is for log readability.
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Session is one verification attempt, from game start to scoring.
type Session struct {
	mu sync.Mutex

	ID        string
	GameType  string
	Prompt    string
	CreatedAt time.Time

	verified bool
	result   *models.HumanVerificationResult
}

// NewSession creates an unverified session for the given game type.
func NewSession(gameType, prompt string) *Session {
	return &Session{
		ID:        NewSessionID(),
		GameType:  gameType,
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}
}

// RecordResult stores the scoring outcome. The first result wins; a session
// cannot be re-verified with a fresh snapshot.
func (s *Session) RecordResult(result models.HumanVerificationResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verified {
		return false
	}
	s.verified = true
	s.result = &result
	return true
}

// Result returns the stored verification result, if any.
func (s *Session) Result() (models.HumanVerificationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return models.HumanVerificationResult{}, false
	}
	return *s.result, true
}

// Verified reports whether the session has been scored.
func (s *Session) Verified() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verified
}

package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// GenerationSession is the ephemeral conversational context of one generate call.
// It is created per request, owned by that request alone and never reused.
type GenerationSession struct {
	ID           string    // Correlates log lines of one generation
	CreatedAt    time.Time // When the request created the session
	Instructions string    // System instructions handed to the model
	consumed     atomic.Bool
}

// NewGenerationSession creates a fresh single-use session
func NewGenerationSession(instructions string) *GenerationSession {
	return &GenerationSession{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now(),
		Instructions: instructions,
	}
}

// Claim marks the session as used for its one prompt.
// A second claim fails with ErrSessionConsumed.
func (s *GenerationSession) Claim() error {
	if !s.consumed.CompareAndSwap(false, true) {
		return ErrSessionConsumed
	}
	return nil
}

// Age returns how long ago the session was created
func (s *GenerationSession) Age() time.Duration {
	return time.Since(s.CreatedAt)
}

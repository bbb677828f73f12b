package input

import (
	"context"

	"native-ai-bridge/internal/domain"
)

// CapabilityGate interface - Input port (use case)
// Answers whether text generation can run right now, without side effects.
type CapabilityGate interface {
	// CheckAvailability returns a fresh status on every call and never fails.
	CheckAvailability(ctx context.Context) domain.AvailabilityStatus
	// IsAvailable is CheckAvailability reduced to a boolean.
	IsAvailable(ctx context.Context) bool
}

package input

import (
	"context"

	"native-ai-bridge/internal/domain"
)

// GenerationBridge interface - Input port (use case)
// Turns one prompt into one generated text outcome.
type GenerationBridge interface {
	// Generate starts one generation and returns immediately.
	// onComplete is invoked exactly once with the outcome.
	// The request must already be validated by the caller.
	Generate(ctx context.Context, request domain.GenerationRequest, onComplete domain.CompletionFunc)
}

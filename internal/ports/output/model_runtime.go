package output

import (
	"context"

	"native-ai-bridge/internal/domain"
)

// ModelRuntime interface - Output port
// Defines what the application needs from the on-device text-generation model.
// The runtime is treated as an opaque capability; implementations wrap a
// platform framework or a local model server.
type ModelRuntime interface {
	// Name returns the runtime identifier (e.g. "foundation", "lmstudio", "echo").
	Name() string

	// Availability reports whether the model can be used right now.
	// It must not fail: an unreachable or unrecognized runtime is reported as
	// ModelUnavailable or ModelAvailabilityUnknown with a best-effort reason.
	// Implementations must not cache the answer.
	Availability(ctx context.Context) domain.ModelAvailability

	// NewSession creates a fresh single-use session for one prompt.
	// Returns an error if the runtime cannot provide a session.
	NewSession(ctx context.Context, opts domain.SessionOptions) (ModelSession, error)
}

// ModelSession interface - Output port
// One conversational context owned by a single generate call.
type ModelSession interface {
	// Respond submits the prompt and waits for the model's full answer.
	// The returned text is the model content, unmodified.
	Respond(ctx context.Context, prompt string) (string, error)

	// Close releases the session. It is safe to call more than once.
	Close() error
}

package echo

import (
	"context"
	"sync/atomic"

	"native-ai-bridge/configs"
	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"
)

// RuntimeName identifies this runtime in logs and health output
const RuntimeName = "echo"

// Runtime is a model runtime that echoes prompts, for development and tests.
type Runtime struct {
	available bool
	reason    string
	prefix    string
}

// NewRuntime creates an echo runtime from configuration.
func NewRuntime(config configs.Echo) *Runtime {
	return &Runtime{
		available: config.Available,
		reason:    config.Reason,
		prefix:    config.Prefix,
	}
}

// Name returns the runtime identifier.
func (r *Runtime) Name() string {
	return RuntimeName
}

// Availability reports the configured state.
func (r *Runtime) Availability(ctx context.Context) domain.ModelAvailability {
	if r.available {
		return domain.ModelAvailability{State: domain.ModelAvailable, Reason: domain.ReasonAvailable}
	}
	return domain.ModelAvailability{State: domain.ModelUnavailable, Reason: r.reason}
}

// NewSession opens an echo session.
func (r *Runtime) NewSession(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error) {
	if !r.available {
		return nil, domain.ErrCapabilityUnavailable
	}
	return &session{prefix: r.prefix}, nil
}

type session struct {
	prefix string
	closed atomic.Bool
}

// Respond echoes the prompt behind the configured prefix.
func (s *session) Respond(ctx context.Context, prompt string) (string, error) {
	if s.closed.Load() {
		return "", domain.ErrSessionConsumed
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.prefix + prompt, nil
}

// Close releases the session.
func (s *session) Close() error {
	s.closed.Store(true)
	return nil
}

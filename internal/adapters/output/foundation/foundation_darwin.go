//go:build darwin

package foundation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"

	fm "github.com/blacktop/go-foundationmodels"
	"github.com/sirupsen/logrus"
)

// errorPrefix marks a failed response from the framework shim
const errorPrefix = "Error:"

// Availability maps the framework's availability to the runtime port
func (a *RuntimeAdapter) Availability(ctx context.Context) domain.ModelAvailability {
	switch availability := fm.CheckModelAvailability(); availability {
	case fm.ModelAvailable:
		return domain.ModelAvailability{State: domain.ModelAvailable, Reason: domain.ReasonAvailable}
	case fm.ModelUnavailableAINotEnabled:
		return domain.ModelAvailability{State: domain.ModelUnavailable, Reason: domain.ReasonAppleIntelligenceNotEnabled}
	case fm.ModelUnavailableDeviceNotEligible:
		return domain.ModelAvailability{State: domain.ModelUnavailable, Reason: domain.ReasonDeviceNotEligible}
	default:
		logrus.Warnf("Foundation Models reported unrecognized availability: %v", availability)
		return domain.ModelAvailability{State: domain.ModelAvailabilityUnknown}
	}
}

// NewSession creates a language model session with the given instructions
func (a *RuntimeAdapter) NewSession(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error) {
	var sess *fm.Session
	if opts.Instructions != "" {
		sess = fm.NewSessionWithInstructions(opts.Instructions)
	} else {
		sess = fm.NewSession()
	}
	if sess == nil {
		return nil, errors.New("failed to create language model session")
	}

	s := &session{sess: sess}
	if opts.Temperature != nil {
		temperature := float32(*opts.Temperature)
		s.options = &fm.GenerationOptions{Temperature: &temperature}
	}
	return s, nil
}

// session wraps one framework session. The framework is not thread-safe,
// so calls are serialized.
type session struct {
	mu       sync.Mutex
	sess     *fm.Session
	options  *fm.GenerationOptions
	released bool
}

func (s *session) Respond(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.released {
		return "", domain.ErrSessionConsumed
	}

	response, err := s.sess.RespondWithContext(ctx, prompt, s.options)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(response, errorPrefix) {
		return "", errors.New(strings.TrimSpace(strings.TrimPrefix(response, errorPrefix)))
	}
	return response, nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.released {
		s.sess.Release()
		s.released = true
	}
	return nil
}

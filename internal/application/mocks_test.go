package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Mock implementations for testing

// MockModelRuntime implements output.ModelRuntime for testing
type MockModelRuntime struct {
	AvailabilityFunc func(ctx context.Context) domain.ModelAvailability
	NewSessionFunc   func(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error)

	mu sync.Mutex
	// Captured values for assertions
	AvailabilityCalls int
	SessionCalls      int
	LastOptions       *domain.SessionOptions
}

func (m *MockModelRuntime) Name() string {
	return "mock"
}

func (m *MockModelRuntime) Availability(ctx context.Context) domain.ModelAvailability {
	m.mu.Lock()
	m.AvailabilityCalls++
	m.mu.Unlock()
	if m.AvailabilityFunc != nil {
		return m.AvailabilityFunc(ctx)
	}
	return domain.ModelAvailability{State: domain.ModelAvailable}
}

func (m *MockModelRuntime) NewSession(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error) {
	m.mu.Lock()
	m.SessionCalls++
	m.LastOptions = &opts
	m.mu.Unlock()
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc(ctx, opts)
	}
	return &MockModelSession{}, nil
}

func (m *MockModelRuntime) sessionCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SessionCalls
}

// MockModelSession implements output.ModelSession for testing
type MockModelSession struct {
	RespondFunc func(ctx context.Context, prompt string) (string, error)
	CloseFunc   func() error

	mu sync.Mutex
	// Captured values for assertions
	Prompts []string
	Closed  bool
}

func (m *MockModelSession) Respond(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, prompt)
	}
	return "AI response", nil
}

func (m *MockModelSession) Close() error {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockModelSession) closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Closed
}

// MockPlatformProbe implements output.PlatformProbe for testing
type MockPlatformProbe struct {
	Version domain.PlatformVersion
	Err     error
	Calls   int
}

func (m *MockPlatformProbe) HostVersion() (domain.PlatformVersion, error) {
	m.Calls++
	if m.Err != nil {
		return domain.PlatformVersion{}, m.Err
	}
	return m.Version, nil
}

var errProbeFailed = errors.New("sysctl failed")

// Test helper returning a runtime that reports the given availability
func runtimeWithAvailability(state domain.ModelAvailabilityState, reason string) *MockModelRuntime {
	return &MockModelRuntime{
		AvailabilityFunc: func(ctx context.Context) domain.ModelAvailability {
			return domain.ModelAvailability{State: state, Reason: reason}
		},
	}
}

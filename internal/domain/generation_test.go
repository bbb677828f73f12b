package domain

import (
	"errors"
	"fmt"
	"testing"
)

// TestGenerationOutcomeSuccess tests the success variant
func TestGenerationOutcomeSuccess(t *testing.T) {
	outcome := Success("Hello")

	if !outcome.IsSuccess() {
		t.Error("expected success")
	}
	if outcome.Text != "Hello" {
		t.Errorf("expected text Hello, got %q", outcome.Text)
	}
	if outcome.Err() != nil {
		t.Errorf("expected nil error, got %v", outcome.Err())
	}
}

// TestGenerationFailureUnwrap tests that failures unwrap to the sentinel of their kind
func TestGenerationFailureUnwrap(t *testing.T) {
	tests := []struct {
		kind     FailureKind
		sentinel error
	}{
		{FailureBadArguments, ErrBadArguments},
		{FailureCapabilityUnavailable, ErrCapabilityUnavailable},
		{FailurePlatformUnsupported, ErrPlatformUnsupported},
		{FailureGenerationError, ErrGeneration},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			outcome := Failure(tt.kind, "something went wrong")

			if outcome.IsSuccess() {
				t.Fatal("expected failure")
			}
			if !errors.Is(outcome.Err(), tt.sentinel) {
				t.Errorf("expected error to match %v, got %v", tt.sentinel, outcome.Err())
			}
			expected := string(tt.kind) + ": something went wrong"
			if outcome.Err().Error() != expected {
				t.Errorf("expected %q, got %q", expected, outcome.Err().Error())
			}
		})
	}
}

// TestFailureFromError tests conversion of arbitrary errors into outcomes
func TestFailureFromError(t *testing.T) {
	plain := FailureFromError(errors.New("inference failed"))
	if plain.Failure == nil || plain.Failure.Kind != FailureGenerationError {
		t.Fatalf("expected generation_error failure, got %+v", plain.Failure)
	}
	if plain.Failure.Message != "inference failed" {
		t.Errorf("expected message to be kept verbatim, got %q", plain.Failure.Message)
	}

	wrapped := fmt.Errorf("bridge: %w", &GenerationFailure{Kind: FailurePlatformUnsupported, Message: MessagePlatformUnsupported})
	typed := FailureFromError(wrapped)
	if typed.Failure == nil || typed.Failure.Kind != FailurePlatformUnsupported {
		t.Errorf("expected platform_unsupported failure, got %+v", typed.Failure)
	}
}

package domain

import "errors"

// FailureKind classifies why a generation did not produce text
type FailureKind string

const (
	// FailureBadArguments - caller supplied malformed or missing input
	FailureBadArguments FailureKind = "bad_arguments"
	// FailureCapabilityUnavailable - model not usable on this device, OS or state
	FailureCapabilityUnavailable FailureKind = "capability_unavailable"
	// FailurePlatformUnsupported - host OS version too old for the API to exist
	FailurePlatformUnsupported FailureKind = "platform_unsupported"
	// FailureGenerationError - the model runtime failed during inference
	FailureGenerationError FailureKind = "generation_error"
)

// MessagePlatformUnsupported is the failure message for hosts below the minimum version
const MessagePlatformUnsupported = "requires minimum platform version"

// GenerationRequest is one prompt-to-text request. It lives for a single call.
type GenerationRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerationFailure describes a failed generation. It implements error and
// unwraps to the sentinel matching its kind.
type GenerationFailure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// Error implements error
func (f *GenerationFailure) Error() string {
	return string(f.Kind) + ": " + f.Message
}

// Unwrap returns the sentinel error for the failure kind
func (f *GenerationFailure) Unwrap() error {
	switch f.Kind {
	case FailureBadArguments:
		return ErrBadArguments
	case FailureCapabilityUnavailable:
		return ErrCapabilityUnavailable
	case FailurePlatformUnsupported:
		return ErrPlatformUnsupported
	default:
		return ErrGeneration
	}
}

// GenerationOutcome is the tagged result of one generation: exactly one of
// Text (success) or Failure is populated.
type GenerationOutcome struct {
	Text    string
	Failure *GenerationFailure
}

// Success builds a successful outcome
func Success(text string) GenerationOutcome {
	return GenerationOutcome{Text: text}
}

// Failure builds a failed outcome
func Failure(kind FailureKind, message string) GenerationOutcome {
	return GenerationOutcome{Failure: &GenerationFailure{Kind: kind, Message: message}}
}

// FailureFromError builds a generation_error outcome from err, or returns the
// failure itself when err already is one.
func FailureFromError(err error) GenerationOutcome {
	var failure *GenerationFailure
	if errors.As(err, &failure) {
		return GenerationOutcome{Failure: failure}
	}
	return Failure(FailureGenerationError, err.Error())
}

// IsSuccess reports whether the outcome carries generated text
func (o GenerationOutcome) IsSuccess() bool {
	return o.Failure == nil
}

// Err returns the failure as an error, or nil on success
func (o GenerationOutcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}

// CompletionFunc receives the outcome of one generation
type CompletionFunc func(outcome GenerationOutcome)

// SessionOptions configures a runtime session
type SessionOptions struct {
	Instructions string
	Temperature  *float64
}

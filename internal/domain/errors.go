package domain

import "errors"

// Bridge error taxonomy

var (
	// ErrBadArguments indicates the caller supplied malformed or missing input
	ErrBadArguments = errors.New("bad arguments")

	// ErrCapabilityUnavailable indicates the model cannot be used on this device right now
	ErrCapabilityUnavailable = errors.New("model capability unavailable")

	// ErrPlatformUnsupported indicates the host is below the minimum supporting platform version
	ErrPlatformUnsupported = errors.New("platform unsupported")

	// ErrGeneration indicates the model runtime failed during inference
	ErrGeneration = errors.New("generation failed")
)

// Runtime adapter error types

var (
	// ErrRuntimeUnavailable indicates the model runtime cannot be reached
	ErrRuntimeUnavailable = errors.New("model runtime unavailable")

	// ErrInvalidRequest indicates the runtime rejected the request (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the model answered with no content
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrSessionConsumed indicates a single-use generation session was used twice
	ErrSessionConsumed = errors.New("generation session already consumed")
)

//go:build !darwin

package foundation

import (
	"context"
	"fmt"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"
)

// Availability reports the device as not eligible: the framework only ships on Apple platforms
func (a *RuntimeAdapter) Availability(ctx context.Context) domain.ModelAvailability {
	return domain.ModelAvailability{State: domain.ModelUnavailable, Reason: domain.ReasonDeviceNotEligible}
}

// NewSession always fails on this host
func (a *RuntimeAdapter) NewSession(ctx context.Context, opts domain.SessionOptions) (output.ModelSession, error) {
	return nil, fmt.Errorf("%w: Foundation Models requires an Apple platform", domain.ErrCapabilityUnavailable)
}

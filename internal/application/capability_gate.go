package application

import (
	"context"

	"native-ai-bridge/internal/domain"
	"native-ai-bridge/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// CapabilityGate struct - Application service answering "can we generate text right now"
type CapabilityGate struct {
	runtime  output.ModelRuntime
	platform output.PlatformProbe
	minimum  domain.PlatformVersion
}

// NewCapabilityGate func - Creates new capability gate.
// A zero minimum version disables the platform version check.
func NewCapabilityGate(runtime output.ModelRuntime, platform output.PlatformProbe, minimum domain.PlatformVersion) *CapabilityGate {
	return &CapabilityGate{
		runtime:  runtime,
		platform: platform,
		minimum:  minimum,
	}
}

// CheckAvailability func - Use case: report model availability with its reason
func (g *CapabilityGate) CheckAvailability(ctx context.Context) domain.AvailabilityStatus {
	return g.Probe(ctx).Status()
}

// IsAvailable func - Use case: report model availability as a boolean
func (g *CapabilityGate) IsAvailable(ctx context.Context) bool {
	return g.CheckAvailability(ctx).Available
}

// Probe runs the runtime feature-probe. Hosts below the minimum platform
// version short-circuit without touching the runtime.
func (g *CapabilityGate) Probe(ctx context.Context) domain.Probe {
	if !g.meetsMinimumVersion() {
		return domain.Probe{
			Outcome: domain.ProbeAbsentBelowMinimumVersion,
			Reason:  domain.RequiresReason(g.minimum),
		}
	}

	availability := g.runtimeAvailability(ctx)
	switch availability.State {
	case domain.ModelAvailable:
		return domain.Probe{Outcome: domain.ProbePresent, Reason: domain.ReasonAvailable}
	case domain.ModelUnavailable:
		return domain.Probe{Outcome: domain.ProbeAbsentOtherReason, Reason: reasonOrUnknown(availability.Reason)}
	default:
		logrus.Warnf("Runtime %s reported unrecognized availability: state=%s, reason=%q",
			g.runtime.Name(), availability.State, availability.Reason)
		return domain.Probe{Outcome: domain.ProbeAbsentOtherReason, Reason: reasonOrUnknown(availability.Reason)}
	}
}

// meetsMinimumVersion checks the host against the configured minimum.
// An undeterminable host version counts as below the minimum.
func (g *CapabilityGate) meetsMinimumVersion() bool {
	if g.minimum.IsZero() {
		return true
	}
	if g.platform == nil {
		return false
	}

	host, err := g.platform.HostVersion()
	if err != nil {
		logrus.Warnf("Failed to determine host platform version: %v", err)
		return false
	}

	if !host.AtLeast(g.minimum) {
		logrus.Debugf("Host platform %s is below minimum %s", host, g.minimum)
		return false
	}
	return true
}

// runtimeAvailability asks the runtime, turning a panic into an unknown state
func (g *CapabilityGate) runtimeAvailability(ctx context.Context) (availability domain.ModelAvailability) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Runtime %s panicked during availability check: %v", g.runtime.Name(), r)
			availability = domain.ModelAvailability{State: domain.ModelAvailabilityUnknown, Reason: domain.ReasonUnknown}
		}
	}()
	return g.runtime.Availability(ctx)
}

func reasonOrUnknown(reason string) string {
	if reason == "" {
		return domain.ReasonUnknown
	}
	return reason
}

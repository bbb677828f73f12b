package domain

const (
	// ReasonAvailable is reported when the model is present and ready
	ReasonAvailable = "available"
	// ReasonUnknown is the fallback for states the platform did not explain
	ReasonUnknown = "unknown"
)

// Reasons commonly reported by runtimes. The set is open: runtimes may report
// any other string and it is passed through untouched.
const (
	ReasonDeviceNotEligible           = "deviceNotEligible"
	ReasonAppleIntelligenceNotEnabled = "appleIntelligenceNotEnabled"
	ReasonModelNotReady               = "modelNotReady"
)

// AvailabilityStatus answers whether text generation can run right now and why.
// It is produced fresh on every query and never cached.
type AvailabilityStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

// StatusAvailable returns the status of a ready model
func StatusAvailable() AvailabilityStatus {
	return AvailabilityStatus{Available: true, Reason: ReasonAvailable}
}

// StatusUnavailable returns an unavailable status, keeping reason verbatim.
// An empty reason becomes ReasonUnknown so Reason is always populated.
func StatusUnavailable(reason string) AvailabilityStatus {
	if reason == "" {
		reason = ReasonUnknown
	}
	return AvailabilityStatus{Available: false, Reason: reason}
}

// ToMap serializes the status as the key-value mapping used on the channel
func (s AvailabilityStatus) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"available": s.Available,
		"reason":    s.Reason,
	}
}

// ModelAvailabilityState is the raw state reported by a model runtime
type ModelAvailabilityState int

const (
	// ModelAvailabilityUnknown - the runtime reported something unrecognized
	ModelAvailabilityUnknown ModelAvailabilityState = iota
	// ModelAvailable - the model is present and ready
	ModelAvailable
	// ModelUnavailable - the model is absent, disabled or resource-constrained
	ModelUnavailable
)

// String returns the state name
func (s ModelAvailabilityState) String() string {
	switch s {
	case ModelAvailable:
		return "available"
	case ModelUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// ModelAvailability is what a runtime says about its model
type ModelAvailability struct {
	State  ModelAvailabilityState
	Reason string
}

// ProbeOutcome is the typed result of the runtime feature-probe
type ProbeOutcome int

const (
	// ProbePresent - the capability exists and the model is usable
	ProbePresent ProbeOutcome = iota
	// ProbeAbsentBelowMinimumVersion - the host platform is too old for the API to exist
	ProbeAbsentBelowMinimumVersion
	// ProbeAbsentOtherReason - the API exists but the model cannot be used
	ProbeAbsentOtherReason
)

// String returns the outcome name
func (o ProbeOutcome) String() string {
	switch o {
	case ProbePresent:
		return "present"
	case ProbeAbsentBelowMinimumVersion:
		return "absent_below_minimum_version"
	case ProbeAbsentOtherReason:
		return "absent_other_reason"
	default:
		return "invalid"
	}
}

// Probe pairs a probe outcome with the reason reported for it
type Probe struct {
	Outcome ProbeOutcome
	Reason  string
}

// Status converts the probe to the status reported to callers
func (p Probe) Status() AvailabilityStatus {
	if p.Outcome == ProbePresent {
		return StatusAvailable()
	}
	return StatusUnavailable(p.Reason)
}

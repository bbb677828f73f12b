package output

import "native-ai-bridge/internal/domain"

// PlatformProbe interface - Output port
// Reports the host operating system release used to gate the model API.
type PlatformProbe interface {
	// HostVersion returns the running OS version.
	// Returns an error when the version cannot be determined.
	HostVersion() (domain.PlatformVersion, error)
}

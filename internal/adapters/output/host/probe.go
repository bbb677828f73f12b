package host

import (
	"errors"
	"fmt"
	"strings"

	"native-ai-bridge/internal/domain"
)

// ErrUnsupportedHost is returned where the OS version cannot be read
var ErrUnsupportedHost = errors.New("host platform version unavailable")

// PlatformProbe struct - Output adapter reading the host OS version
type PlatformProbe struct {
	override string
	read     func() (domain.PlatformVersion, error)
}

// NewPlatformProbe creates a probe. A non-empty override such as "macos 26.0"
// is reported instead of the detected version.
func NewPlatformProbe(override string) *PlatformProbe {
	return &PlatformProbe{
		override: strings.TrimSpace(override),
		read:     readHostVersion,
	}
}

// HostVersion returns the host OS version
func (p *PlatformProbe) HostVersion() (domain.PlatformVersion, error) {
	if p.override != "" {
		return domain.ParsePlatformVersion(p.override)
	}
	return p.read()
}

// versionPrefix returns the leading dotted-numeric part of a release string,
// e.g. "6.8.0" for "6.8.0-45-generic"
func versionPrefix(release string) string {
	end := 0
	for end < len(release) {
		c := release[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return strings.Trim(release[:end], ".")
}

// parseRelease builds a platform version from an OS name and a raw release string
func parseRelease(osName, release string) (domain.PlatformVersion, error) {
	version := versionPrefix(strings.TrimSpace(release))
	if version == "" {
		return domain.PlatformVersion{}, fmt.Errorf("%w: unrecognized release %q", ErrUnsupportedHost, release)
	}
	// Keep at most major.minor.patch
	if parts := strings.Split(version, "."); len(parts) > 3 {
		version = strings.Join(parts[:3], ".")
	}
	return domain.ParsePlatformVersion(osName + " " + version)
}

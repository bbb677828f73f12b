package domain

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// PlatformVersion identifies a host operating system release, e.g. macos 26.0
type PlatformVersion struct {
	OS      string // lower-case OS name, may be empty when only a version is known
	Version string // dotted numeric version with one to three components
}

// ParsePlatformVersion parses strings such as "macos 26.0", "ios_26", "iOS-26.1" or "26.0.1"
func ParsePlatformVersion(s string) (PlatformVersion, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlatformVersion{}, fmt.Errorf("empty platform version")
	}

	idx := strings.IndexAny(s, "0123456789")
	if idx < 0 {
		return PlatformVersion{}, fmt.Errorf("platform version %q has no version number", s)
	}

	osName := strings.ToLower(strings.Trim(s[:idx], " _-"))
	version := strings.TrimSpace(s[idx:])
	if strings.Count(version, ".") > 2 || !semver.IsValid("v"+version) {
		return PlatformVersion{}, fmt.Errorf("invalid platform version %q", s)
	}

	return PlatformVersion{OS: osName, Version: version}, nil
}

// MustParsePlatformVersion is like ParsePlatformVersion but panics on error
func MustParsePlatformVersion(s string) PlatformVersion {
	v, err := ParsePlatformVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether no version is set
func (v PlatformVersion) IsZero() bool {
	return v.Version == ""
}

// String returns "<os> <version>" or just the version when the OS is unknown
func (v PlatformVersion) String() string {
	if v.OS == "" {
		return v.Version
	}
	return v.OS + " " + v.Version
}

// Compare orders two versions numerically, ignoring the OS name
func (v PlatformVersion) Compare(other PlatformVersion) int {
	return semver.Compare("v"+v.Version, "v"+other.Version)
}

// AtLeast reports whether v satisfies the minimum version.
// Both OS names must match when both are known.
func (v PlatformVersion) AtLeast(minimum PlatformVersion) bool {
	if minimum.IsZero() {
		return true
	}
	if v.IsZero() {
		return false
	}
	if v.OS != "" && minimum.OS != "" && v.OS != minimum.OS {
		return false
	}
	return v.Compare(minimum) >= 0
}

// RequiresReason is the availability reason reported below the minimum version,
// e.g. "requires_ios_26" or "requires_26.1"
func RequiresReason(minimum PlatformVersion) string {
	version := minimum.Version
	for strings.HasSuffix(version, ".0") {
		version = strings.TrimSuffix(version, ".0")
	}
	if minimum.OS == "" {
		return "requires_" + version
	}
	return "requires_" + minimum.OS + "_" + version
}

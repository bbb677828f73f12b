package domain

import (
	"testing"
)

// TestParsePlatformVersion tests the accepted version spellings
func TestParsePlatformVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected PlatformVersion
		wantErr  bool
	}{
		{input: "macos 26.0", expected: PlatformVersion{OS: "macos", Version: "26.0"}},
		{input: "iOS-26.1", expected: PlatformVersion{OS: "ios", Version: "26.1"}},
		{input: "ios_26", expected: PlatformVersion{OS: "ios", Version: "26"}},
		{input: "26.0.1", expected: PlatformVersion{Version: "26.0.1"}},
		{input: "", wantErr: true},
		{input: "tahoe", wantErr: true},
		{input: "macos 26.0.1.2", wantErr: true},
		{input: "macos 26.x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatformVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

// TestPlatformVersionAtLeast tests minimum version comparisons
func TestPlatformVersionAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		host     PlatformVersion
		minimum  PlatformVersion
		expected bool
	}{
		{name: "no minimum", host: PlatformVersion{}, minimum: PlatformVersion{}, expected: true},
		{name: "unknown host", host: PlatformVersion{}, minimum: MustParsePlatformVersion("macos 26"), expected: false},
		{name: "equal", host: MustParsePlatformVersion("macos 26.0"), minimum: MustParsePlatformVersion("macos 26"), expected: true},
		{name: "newer", host: MustParsePlatformVersion("macos 26.1"), minimum: MustParsePlatformVersion("macos 26.0"), expected: true},
		{name: "numeric not lexical", host: MustParsePlatformVersion("ios 100.0"), minimum: MustParsePlatformVersion("ios 26.0"), expected: true},
		{name: "older", host: MustParsePlatformVersion("macos 15.6.1"), minimum: MustParsePlatformVersion("macos 26.0"), expected: false},
		{name: "os mismatch", host: MustParsePlatformVersion("linux 6.8.0"), minimum: MustParsePlatformVersion("macos 26.0"), expected: false},
		{name: "os-less minimum", host: MustParsePlatformVersion("ios 26.2"), minimum: MustParsePlatformVersion("26.1"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.AtLeast(tt.minimum); got != tt.expected {
				t.Errorf("expected %s AtLeast %s to be %v", tt.host, tt.minimum, tt.expected)
			}
		})
	}
}

// TestRequiresReason tests the reason reported below the minimum version
func TestRequiresReason(t *testing.T) {
	tests := []struct {
		minimum  string
		expected string
	}{
		{minimum: "ios 26.0", expected: "requires_ios_26"},
		{minimum: "macos 26.0.0", expected: "requires_macos_26"},
		{minimum: "macos 26.1", expected: "requires_macos_26.1"},
		{minimum: "26.1", expected: "requires_26.1"},
	}

	for _, tt := range tests {
		t.Run(tt.minimum, func(t *testing.T) {
			if got := RequiresReason(MustParsePlatformVersion(tt.minimum)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

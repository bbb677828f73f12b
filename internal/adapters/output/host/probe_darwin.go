//go:build darwin

package host

import (
	"fmt"

	"native-ai-bridge/internal/domain"

	"golang.org/x/sys/unix"
)

func readHostVersion() (domain.PlatformVersion, error) {
	release, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return domain.PlatformVersion{}, fmt.Errorf("%w: %v", ErrUnsupportedHost, err)
	}
	return parseRelease("macos", release)
}

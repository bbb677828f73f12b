//go:build !darwin && !linux

package host

import (
	"fmt"
	"runtime"

	"native-ai-bridge/internal/domain"
)

func readHostVersion() (domain.PlatformVersion, error) {
	return domain.PlatformVersion{}, fmt.Errorf("%w: %s", ErrUnsupportedHost, runtime.GOOS)
}

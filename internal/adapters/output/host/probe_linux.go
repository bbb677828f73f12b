//go:build linux

package host

import (
	"fmt"

	"native-ai-bridge/internal/domain"

	"golang.org/x/sys/unix"
)

func readHostVersion() (domain.PlatformVersion, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return domain.PlatformVersion{}, fmt.Errorf("%w: %v", ErrUnsupportedHost, err)
	}
	return parseRelease("linux", unix.ByteSliceToString(uts.Release[:]))
}

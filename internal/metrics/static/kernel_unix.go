//go:build linux || darwin || freebsd || netbsd || openbsd

package static

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// UnameRelease returns the kernel release from uname(2)
func UnameRelease(_ context.Context) (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}

	release := unix.ByteSliceToString(uts.Release[:])
	if release == "" {
		return "", metrics.Unavailable("uname release")
	}
	return release, nil
}

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package static

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// UnameRelease is not available on this platform
func UnameRelease(_ context.Context) (string, error) {
	return "", metrics.Unavailable("uname")
}

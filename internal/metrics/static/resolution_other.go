//go:build !windows

package static

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// ScreenMetrics is only implemented on Windows
func ScreenMetrics(_ context.Context) ([]string, error) {
	return nil, metrics.Unavailable("GetSystemMetrics")
}

//go:build !linux

package static

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// SysinfoOSName is only implemented on linux
func SysinfoOSName(_ context.Context) (string, error) {
	return "", metrics.Unavailable("sysinfo")
}

// SysinfoModel is only implemented on linux
func SysinfoModel(_ context.Context) (string, error) {
	return "", metrics.Unavailable("sysinfo")
}

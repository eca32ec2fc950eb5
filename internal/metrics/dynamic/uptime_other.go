//go:build !linux

package dynamic

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// SysinfoUptime is only implemented on Linux
func SysinfoUptime(_ context.Context) (uint64, error) {
	return 0, metrics.Unavailable("sysinfo")
}

// SysinfoSwap is only implemented on Linux
func SysinfoSwap(_ context.Context) (models.Usage, error) {
	return models.Usage{}, metrics.Unavailable("sysinfo")
}

//go:build linux

package dynamic

import (
	"context"

	"golang.org/x/sys/unix"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// SysinfoUptime reads the uptime from sysinfo(2)
func SysinfoUptime(_ context.Context) (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	if info.Uptime < 0 {
		return 0, metrics.Unavailable("sysinfo uptime")
	}
	return uint64(info.Uptime), nil
}

// SysinfoSwap reads swap totals from sysinfo(2)
func SysinfoSwap(_ context.Context) (models.Usage, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return models.Usage{}, err
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	total := uint64(info.Totalswap) * unit
	free := uint64(info.Freeswap) * unit
	return models.Usage{Used: total - free, Total: total}, nil
}

package dynamic

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// HostUptime returns the uptime in seconds reported by gopsutil
func HostUptime(ctx context.Context) (uint64, error) {
	return host.UptimeWithContext(ctx)
}

// ProcUptime reads the uptime in seconds from /proc/uptime
func ProcUptime(_ context.Context) (uint64, error) {
	raw, err := metrics.ReadTrimmed("/proc/uptime")
	if err != nil {
		return 0, err
	}
	return parseProcUptime(raw)
}

func parseProcUptime(raw string) (uint64, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, metrics.Unavailable("empty /proc/uptime")
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return 0, metrics.Unavailable("/proc/uptime %q", fields[0])
	}
	return uint64(seconds), nil
}

// ProcessCount returns the number of running processes via gopsutil
func ProcessCount(ctx context.Context) (int, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if len(pids) == 0 {
		return 0, metrics.Unavailable("process list")
	}
	return len(pids), nil
}

// ProcDirCount counts the numeric entries of /proc
func ProcDirCount(_ context.Context) (int, error) {
	return countPidDirs("/proc")
}

func countPidDirs(root string) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if _, err := strconv.Atoi(e.Name()); err == nil && e.IsDir() {
			n++
		}
	}
	if n == 0 {
		return 0, metrics.Unavailable("%s has no processes", root)
	}
	return n, nil
}

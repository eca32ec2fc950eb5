package dynamic

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// VirtualMemory returns used/total RAM via gopsutil
func VirtualMemory(ctx context.Context) (models.Usage, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return models.Usage{}, err
	}
	if vmem.Total == 0 {
		return models.Usage{}, metrics.Unavailable("memory total")
	}
	return models.Usage{Used: vmem.Used, Total: vmem.Total}, nil
}

// ProcMeminfo computes used/total RAM from /proc/meminfo
func ProcMeminfo(_ context.Context) (models.Usage, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return models.Usage{}, err
	}
	defer f.Close()

	return meminfoUsage(metrics.ParseKeyValue(f, ":"))
}

// meminfoUsage uses MemAvailable when the kernel provides it (3.14+)
func meminfoUsage(values map[string]string) (models.Usage, error) {
	total, err := meminfoBytes(values["MemTotal"])
	if err != nil || total == 0 {
		return models.Usage{}, metrics.Unavailable("MemTotal")
	}

	avail, err := meminfoBytes(values["MemAvailable"])
	if err != nil {
		free, _ := meminfoBytes(values["MemFree"])
		buffers, _ := meminfoBytes(values["Buffers"])
		cached, _ := meminfoBytes(values["Cached"])
		avail = free + buffers + cached
	}
	if avail > total {
		avail = total
	}
	return models.Usage{Used: total - avail, Total: total}, nil
}

// meminfoBytes parses values like "16318412 kB"
func meminfoBytes(raw string) (uint64, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, metrics.Unavailable("meminfo value")
	}
	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, err
	}
	if len(fields) > 1 && strings.EqualFold(fields[1], "kB") {
		n *= 1024
	}
	return n, nil
}

package static

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// CPUIDBrand returns the brand string assembled from the CPUID instruction.
// Only meaningful on amd64 and 386.
func CPUIDBrand(_ context.Context) (string, error) {
	brand := strings.TrimSpace(cpuid.CPU.BrandName)
	if brand == "" {
		return "", metrics.Unavailable("cpuid brand")
	}
	return brand, nil
}

// CPUIDMHz returns the clock speed detected by cpuid, in MHz
func CPUIDMHz(_ context.Context) (float64, error) {
	if cpuid.CPU.Hz <= 0 {
		return 0, metrics.Unavailable("cpuid frequency")
	}
	return float64(cpuid.CPU.Hz) / 1e6, nil
}

// InfoModelName returns the model name of the first CPU (usually all are the same)
func InfoModelName(ctx context.Context) (string, error) {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(info) == 0 || strings.TrimSpace(info[0].ModelName) == "" {
		return "", metrics.Unavailable("cpu model")
	}
	return strings.TrimSpace(info[0].ModelName), nil
}

// InfoMHz returns the clock speed of the first CPU
func InfoMHz(ctx context.Context) (float64, error) {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	if len(info) == 0 || info[0].Mhz <= 0 {
		return 0, metrics.Unavailable("cpu frequency")
	}
	return info[0].Mhz, nil
}

// LogicalCount returns the number of logical processors
func LogicalCount(ctx context.Context) (int, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, metrics.Unavailable("cpu count")
	}
	return n, nil
}

// RuntimeCount returns the processor count seen by the Go runtime
func RuntimeCount(_ context.Context) (int, error) {
	return runtime.NumCPU(), nil
}

// ProcCPUInfoModel reads the model name from /proc/cpuinfo
func ProcCPUInfoModel(_ context.Context) (string, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if model := cpuInfoModel(f); model != "" {
		return model, nil
	}
	return "", metrics.Unavailable("cpuinfo model")
}

// cpuInfoModel prefers "model name" and falls back to the ARM "Hardware"/"Model" keys
func cpuInfoModel(r io.Reader) string {
	found := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if _, ok := found[key]; !ok {
			found[key] = strings.TrimSpace(parts[1])
		}
	}

	for _, key := range []string{"model name", "Hardware", "Model", "cpu model"} {
		if v := found[key]; v != "" {
			return v
		}
	}
	return ""
}

// CPUFreqMaxMHz reads the maximum frequency of cpu0 from cpufreq sysfs
func CPUFreqMaxMHz(_ context.Context) (float64, error) {
	return cpuFreqMHz("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")
}

func cpuFreqMHz(path string) (float64, error) {
	raw, err := metrics.ReadTrimmed(path)
	if err != nil {
		return 0, err
	}
	khz, err := strconv.ParseFloat(raw, 64)
	if err != nil || khz <= 0 {
		return 0, metrics.Unavailable("cpufreq %q", raw)
	}
	return khz / 1000, nil
}

// SysctlBrand returns machdep.cpu.brand_string through sysctl
func SysctlBrand(exec metrics.CommandExecutor) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := exec.Execute(ctx, "sysctl", "-n", "machdep.cpu.brand_string")
		if err != nil {
			return "", err
		}
		if out == "" {
			return "", metrics.Unavailable("machdep.cpu.brand_string")
		}
		return out, nil
	}
}

// SysctlMHz returns hw.cpufrequency through sysctl, in MHz
func SysctlMHz(exec metrics.CommandExecutor) func(context.Context) (float64, error) {
	return func(ctx context.Context) (float64, error) {
		out, err := exec.Execute(ctx, "sysctl", "-n", "hw.cpufrequency")
		if err != nil {
			return 0, err
		}
		hz, err := strconv.ParseFloat(out, 64)
		if err != nil || hz <= 0 {
			return 0, metrics.Unavailable("hw.cpufrequency %q", out)
		}
		return hz / 1e6, nil
	}
}

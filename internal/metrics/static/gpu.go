package static

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// LspciGPUs lists display controllers from `lspci -mm`
func LspciGPUs(exec metrics.CommandExecutor) func(context.Context) ([]models.GPU, error) {
	return func(ctx context.Context) ([]models.GPU, error) {
		out, err := exec.Execute(ctx, "lspci", "-mm")
		if err != nil {
			return nil, err
		}
		return parseLspci(out), nil
	}
}

// parseLspci reads machine-readable lspci lines:
// 00:02.0 "VGA compatible controller" "Intel Corporation" "UHD Graphics 620" -r07 "Lenovo" "Device 2258"
func parseLspci(out string) []models.GPU {
	var gpus []models.GPU
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := quotedFields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		class := fields[1]
		if !strings.Contains(class, "VGA") && !strings.Contains(class, "3D") && !strings.Contains(class, "Display") {
			continue
		}
		name := strings.TrimSpace(fields[2] + " " + fields[3])
		gpus = append(gpus, models.GPU{Name: name})
	}
	return gpus
}

// quotedFields splits on spaces, keeping double-quoted runs together
func quotedFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuote, started := false, false
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case r == ' ' && !inQuote:
			if started {
				fields = append(fields, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if started {
		fields = append(fields, cur.String())
	}
	return fields
}

// DRMGPUs lists graphics cards registered with the kernel DRM subsystem
func DRMGPUs(_ context.Context) ([]models.GPU, error) {
	return drmGPUs("/sys/class/drm")
}

func drmGPUs(root string) ([]models.GPU, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var gpus []models.GPU
	for _, entry := range entries {
		name := entry.Name()
		// Connectors are named card0-DP-1, skip them
		if !strings.HasPrefix(name, "card") || strings.Contains(name, "-") {
			continue
		}
		f, err := os.Open(filepath.Join(root, name, "device", "uevent"))
		if err != nil {
			continue
		}
		values := metrics.ParseKeyValue(f, "=")
		f.Close()

		driver := values["DRIVER"]
		if driver == "" {
			continue
		}
		if id := values["PCI_ID"]; id != "" {
			driver += " (" + id + ")"
		}
		gpus = append(gpus, models.GPU{Name: driver})
	}
	return gpus, nil
}

// SystemProfilerGPUs lists chipset models from macOS system_profiler
func SystemProfilerGPUs(exec metrics.CommandExecutor) func(context.Context) ([]models.GPU, error) {
	return func(ctx context.Context) ([]models.GPU, error) {
		out, err := exec.Execute(ctx, "system_profiler", "SPDisplaysDataType")
		if err != nil {
			return nil, err
		}
		var gpus []models.GPU
		for _, name := range profilerValues(out, "Chipset Model") {
			gpus = append(gpus, models.GPU{Name: name})
		}
		return gpus, nil
	}
}

// PowerShellGPUs lists video controllers through CIM
func PowerShellGPUs(exec metrics.CommandExecutor) func(context.Context) ([]models.GPU, error) {
	return func(ctx context.Context) ([]models.GPU, error) {
		out, err := exec.Execute(ctx, "powershell", "-NoProfile", "-Command",
			"Get-CimInstance Win32_VideoController | Select-Object -ExpandProperty Name")
		if err != nil {
			return nil, err
		}
		var gpus []models.GPU
		for _, line := range strings.Split(out, "\n") {
			if name := strings.TrimSpace(line); name != "" {
				gpus = append(gpus, models.GPU{Name: name})
			}
		}
		return gpus, nil
	}
}

// profilerValues collects every "Key: value" occurrence of key in system_profiler output
func profilerValues(out, key string) []string {
	var values []string
	prefix := key + ":"
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			if v := strings.TrimSpace(strings.TrimPrefix(line, prefix)); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
